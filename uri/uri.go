// Package uri parses, validates, normalizes and re-serializes URIs per
// RFC 3986. Parse is the only constructor; a Uri is immutable after it.
// Relative references, DNS lookups and scheme-specific payload grammars
// are out of scope, and non-ASCII input is rejected outright.
package uri

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidURI is the single error kind returned by Parse. Every failure
// wraps it; callers only ever need errors.Is.
var ErrInvalidURI = errors.New("invalid uri")

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidURI}, args...)...)
}

// QueryParam is one decoded query pair in input order. HasValue
// distinguishes "key" (no '=') from "key=" (empty value).
type QueryParam struct {
	Key      string
	Value    string
	HasValue bool
}

// Uri is a decomposed URI. Fields hold decoded canonical values, except
// the host, which keeps its percent escapes literal, and rawQuery, which
// is the undecoded query text.
type Uri struct {
	scheme        string
	hasAuthority  bool
	hasUserInfo   bool
	userInfo      string
	host          string
	hostIsLiteral bool
	port          int // -1 absent, 0 present-but-empty
	path          []string
	hasQuery      bool
	rawQuery      string
	query         []QueryParam
	hasFragment   bool
	fragment      string
}

func (u *Uri) HasScheme() bool { return u.scheme != "" }

// Scheme is always present and lowercase for a parsed Uri.
func (u *Uri) Scheme() string { return u.scheme }

func (u *Uri) HasAuthority() bool { return u.hasAuthority }

// Authority renders "[userinfo@]host[:port]" from the stored components,
// bracketing the host when it is an IP-literal.
func (u *Uri) Authority() string {
	if !u.hasAuthority {
		return ""
	}
	var b strings.Builder
	if u.hasUserInfo {
		b.WriteString(u.userInfo)
		b.WriteByte('@')
	}
	if u.hostIsLiteral {
		b.WriteByte('[')
		b.WriteString(u.host)
		b.WriteByte(']')
	} else {
		b.WriteString(u.host)
	}
	if u.port >= 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.port))
	}
	return b.String()
}

func (u *Uri) HasUserInformation() bool { return u.hasUserInfo }

func (u *Uri) UserInformation() string { return u.userInfo }

// HasHost is true whenever an authority is present; the host itself may
// still be the empty string.
func (u *Uri) HasHost() bool { return u.hasAuthority }

func (u *Uri) Host() string { return u.host }

// IsIPLiteral reports whether the host was bracketed in the input and will
// be bracketed again on serialization.
func (u *Uri) IsIPLiteral() bool { return u.hostIsLiteral }

func (u *Uri) HasPort() bool { return u.port >= 0 }

// Port is -1 when absent and 0 when the input had ':' with no digits.
func (u *Uri) Port() int { return u.port }

func (u *Uri) HasEmptyPath() bool { return len(u.path) == 0 }

// Path returns the decoded, dot-normalized segments in input order. A
// leading empty segment marks an absolute path.
func (u *Uri) Path() []string {
	if u.path == nil {
		return nil
	}
	out := make([]string, len(u.path))
	copy(out, u.path)
	return out
}

func (u *Uri) HasQuery() bool { return u.hasQuery }

// QueryString is the raw, undecoded query text without the leading '?'.
func (u *Uri) QueryString() string { return u.rawQuery }

// Query returns the decoded pairs in input order, duplicates included.
func (u *Uri) Query() []QueryParam {
	if u.query == nil {
		return nil
	}
	out := make([]QueryParam, len(u.query))
	copy(out, u.query)
	return out
}

func (u *Uri) HasFragment() bool { return u.hasFragment }

func (u *Uri) Fragment() string { return u.fragment }

// pathSegmentExtra widens the encoder's allowed set for path segments.
const pathSegmentExtra = ":@*+,;="

// String reassembles the canonical percent-encoded form. It cannot fail
// for a Uri built by Parse.
func (u *Uri) String() string {
	var b strings.Builder
	b.WriteString(u.scheme)
	b.WriteByte(':')

	if u.hasAuthority {
		b.WriteString("//")
		if u.hasUserInfo {
			b.WriteString(pctEncode(u.userInfo, "", ""))
			b.WriteByte('@')
		}
		if u.hostIsLiteral {
			b.WriteByte('[')
			b.WriteString(pctEncode(u.host, ":", ""))
			b.WriteByte(']')
		} else {
			b.WriteString(pctEncode(u.host, "", ""))
		}
		if u.port >= 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(u.port))
		}
	}

	if len(u.path) == 1 && u.path[0] == "" {
		b.WriteByte('/')
	} else if len(u.path) > 0 {
		segments := make([]string, len(u.path))
		for i, seg := range u.path {
			segments[i] = pctEncode(seg, pathSegmentExtra, "")
		}
		if strings.IndexByte(segments[0], ':') >= 0 {
			// a ':' in the first segment would read as a scheme delimiter
			b.WriteString("./")
		}
		b.WriteString(strings.Join(segments, "/"))
	}

	if u.hasQuery {
		b.WriteByte('?')
		pairs := make([]string, len(u.query))
		for i, p := range u.query {
			if p.HasValue {
				pairs[i] = pctEncode(p.Key+"="+p.Value, "=", "&")
			} else {
				pairs[i] = pctEncode(p.Key, "=", "&")
			}
		}
		b.WriteString(strings.Join(pairs, "&"))
	}

	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(pctEncode(u.fragment, "", ""))
	}
	return b.String()
}

// Equal reports whether two parsed URIs share the same canonical form.
func Equal(a, b *Uri) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}
