package uri

import (
	"strings"
)

// parseHost consumes the host portion of an authority span starting at
// offset. It returns the canonical host, the offset of the first byte after
// the host, and whether the host was a bracketed IP-literal. Reg-name hosts
// are lowercased but never percent-decoded; their escapes stay literal.
func parseHost(authority string, offset int) (string, int, bool, error) {
	if offset < len(authority) && authority[offset] == '[' {
		end := strings.IndexByte(authority[offset:], ']')
		if end < 0 {
			return "", 0, false, invalidf("unterminated IP-literal in %q", authority)
		}
		end += offset
		host, err := canonicalIPLiteral(strings.ToLower(authority[offset+1 : end]))
		if err != nil {
			return "", 0, false, err
		}
		return host, end + 1, true, nil
	}

	end := strings.IndexByte(authority[offset:], ':')
	if end < 0 {
		end = len(authority)
	} else {
		end += offset
	}
	span := authority[offset:end]
	if err := checkSpan(span, hostChars, "host"); err != nil {
		return "", 0, false, err
	}
	return strings.ToLower(span), end, false, nil
}

// canonicalIPLiteral classifies an already lowercased bracket interior as
// IPv6 or IPvFuture and returns its canonical text.
func canonicalIPLiteral(inner string) (string, error) {
	if host, ok := canonicalIPv6(inner); ok {
		return host, nil
	}
	host, ok, err := canonicalIPvFuture(inner)
	if err != nil {
		return "", err
	}
	if ok {
		return host, nil
	}
	return "", invalidf("unrecognized IP-literal %q", inner)
}

// canonicalIPv6 canonicalizes an IPv6 interior: groups of up to four hex
// digits, leading zeros stripped per group, an all-zero group kept as "0".
//
// The elision check is narrower than the full RFC 3986 grammar: a leading
// or trailing colon must be half of a "::", and empty groups beyond what
// the edges account for are limited to a single internal elision point.
// Some legal but unusual elisions are therefore rejected.
func canonicalIPv6(inner string) (string, bool) {
	if inner == "" {
		return "", false
	}
	if strings.HasPrefix(inner, ":") && !strings.HasPrefix(inner, "::") {
		return "", false
	}
	if strings.HasSuffix(inner, ":") && !strings.HasSuffix(inner, "::") {
		return "", false
	}

	groups := strings.Split(inner, ":")
	if len(groups) > 8 {
		return "", false
	}

	empties := 0
	for _, g := range groups {
		if g == "" {
			empties++
		}
	}
	budget := 1
	if strings.HasPrefix(inner, "::") {
		budget = 2
	}
	if strings.HasSuffix(inner, "::") {
		budget += 2
	}
	if empties > budget {
		return "", false
	}

	canon := make([]string, len(groups))
	for i, g := range groups {
		if g == "" {
			continue
		}
		if len(g) > 4 {
			return "", false
		}
		for j := 0; j < len(g); j++ {
			if !isHexDigit(g[j]) {
				return "", false
			}
		}
		stripped := strings.TrimLeft(g, "0")
		if stripped == "" {
			stripped = "0"
		}
		canon[i] = stripped
	}
	return strings.Join(canon, ":"), true
}

// canonicalIPvFuture matches "v" HEXDIG+ "." (unreserved / sub-delims / ":")+.
// A missing v<hex>. prefix is not a match and falls through; a bad character
// after a confirmed prefix fails the parse.
func canonicalIPvFuture(inner string) (string, bool, error) {
	if inner == "" || inner[0] != 'v' {
		return "", false, nil
	}
	dot := strings.IndexByte(inner, '.')
	if dot < 2 {
		return "", false, nil
	}
	for i := 1; i < dot; i++ {
		if !isHexDigit(inner[i]) {
			return "", false, nil
		}
	}

	tail := inner[dot+1:]
	if tail == "" {
		return "", false, invalidf("empty IPvFuture address in %q", inner)
	}
	for i := 0; i < len(tail); i++ {
		if !ipvFutureChars.contains(tail[i]) {
			return "", false, invalidf("disallowed character %q in IPvFuture address", tail[i])
		}
	}
	return inner, true, nil
}
