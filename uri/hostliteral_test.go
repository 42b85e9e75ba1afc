package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalIPv6(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "::1", want: "::1"},
		{in: "1::", want: "1::"},
		{in: "::", want: "::"},
		{in: "fe80::1", want: "fe80::1"},
		{in: "2001:0db8:0000:0000:0000:0000:0000:0001", want: "2001:db8:0:0:0:0:0:1"},
		{in: "2001:0db8::0001", want: "2001:db8::1"},
		{in: "0000::0000", want: "0::0"},
		// the reference grammar accepts fewer than eight explicit groups
		{in: "1:2", want: "1:2"},
	}

	for _, tt := range tests {
		got, ok := canonicalIPv6(tt.in)
		assert.True(t, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestCanonicalIPv6Rejects(t *testing.T) {
	tests := []string{
		"",
		":1",          // leading colon without elision
		"1:",          // trailing colon without elision
		"1::2::3",     // two internal elisions
		"::1::2",      // edge plus internal elision
		"12345::1",    // group too long
		"g::1",        // non-hex group
		"1:2:3:4:5:6:7:8:9", // too many groups
		"192.0.2.1",   // dotted quad is not an IPv6 interior
	}

	for _, in := range tests {
		_, ok := canonicalIPv6(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestCanonicalIPvFuture(t *testing.T) {
	got, ok, err := canonicalIPvFuture("v6.fe80:1")
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, ok)
	assert.Equal(t, "v6.fe80:1", got)

	// shape mismatches fall through without an error
	for _, in := range []string{"", "x1.a", "v.a", "vg.a", "v1a"} {
		_, ok, err := canonicalIPvFuture(in)
		if err != nil {
			t.Fatalf("canonicalIPvFuture(%q) error = %v", in, err)
		}
		assert.False(t, ok, "input %q", in)
	}

	// confirmed prefix with a bad address is a hard failure
	for _, in := range []string{"v1.", "v1.^", "v1.a/b"} {
		_, _, err := canonicalIPvFuture(in)
		if err == nil {
			t.Fatalf("canonicalIPvFuture(%q) expected error", in)
		}
	}
}

func TestParseHostRegName(t *testing.T) {
	host, next, literal, err := parseHost("Example.COM:8080", 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "example.com", host)
	assert.Equal(t, len("Example.COM"), next)
	assert.False(t, literal)

	// escapes in a reg-name stay literal, only case is folded
	host, _, _, err = parseHost("ex%41mple.com", 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "ex%41mple.com", host)

	// empty authority means empty host
	host, next, literal, err = parseHost("", 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "", host)
	assert.Equal(t, 0, next)
	assert.False(t, literal)

	// out-of-range dotted quads are still reg-name shaped
	host, _, _, err = parseHost("999.1.1.1", 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "999.1.1.1", host)
}

func TestParseHostLiteral(t *testing.T) {
	host, next, literal, err := parseHost("[2001:0DB8::1]:443", 0)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "2001:db8::1", host)
	assert.Equal(t, len("[2001:0DB8::1]"), next)
	assert.True(t, literal)

	for _, in := range []string{"[::1", "[]", "[nope]", "[1::2::3]"} {
		_, _, _, err := parseHost(in, 0)
		if err == nil {
			t.Fatalf("parseHost(%q) expected error", in)
		}
	}
}
