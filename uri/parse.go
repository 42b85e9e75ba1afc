package uri

import (
	"strconv"
	"strings"
)

// Parse decomposes raw into a Uri, normalizing scheme/host case, percent
// escapes and dot segments along the way. Any violation anywhere in the
// input aborts the whole parse with ErrInvalidURI; there is no partial
// result.
func Parse(raw string) (*Uri, error) {
	if raw == "" {
		return nil, invalidf("empty input")
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] >= 0x80 {
			return nil, invalidf("non-ASCII character at offset %d", i)
		}
	}

	u := &Uri{port: -1}

	offset, err := parseScheme(raw, u)
	if err != nil {
		return nil, err
	}
	offset, err = parseAuthority(raw, offset, u)
	if err != nil {
		return nil, err
	}
	offset, err = parsePath(raw, offset, u)
	if err != nil {
		return nil, err
	}
	offset, err = parseQuery(raw, offset, u)
	if err != nil {
		return nil, err
	}
	if err := parseFragment(raw, offset, u); err != nil {
		return nil, err
	}
	return u, nil
}

// MustParse is Parse that panics on malformed input. For fixtures.
func MustParse(raw string) *Uri {
	u, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

// parseScheme consumes everything before the first ':'. A scheme is
// mandatory; relative references are out of scope.
func parseScheme(s string, u *Uri) (int, error) {
	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return 0, invalidf("missing scheme delimiter")
	}
	if colon == 0 || !isAlpha(s[0]) {
		return 0, invalidf("scheme must start with a letter")
	}
	scheme := strings.ToLower(s[:colon])
	if err := checkSpan(scheme, schemeChars, "scheme"); err != nil {
		return 0, err
	}
	u.scheme = scheme
	return colon + 1, nil
}

// parseAuthority consumes "//..." after the scheme when present. The
// authority span runs to the next '/', '?', '#' or end of input; userinfo,
// host and port are carved out of that span.
func parseAuthority(s string, offset int, u *Uri) (int, error) {
	if !strings.HasPrefix(s[offset:], "//") {
		return offset, nil
	}
	offset += 2
	end := len(s)
	if i := strings.IndexAny(s[offset:], "/?#"); i >= 0 {
		end = offset + i
	}
	span := s[offset:end]
	u.hasAuthority = true

	cur := 0
	if at := strings.IndexByte(span, '@'); at >= 0 {
		rawInfo := span[:at]
		if err := checkSpan(rawInfo, userInfoChars, "userinfo"); err != nil {
			return 0, err
		}
		decoded, err := pctDecode(rawInfo)
		if err != nil {
			return 0, err
		}
		u.hasUserInfo = true
		u.userInfo = decoded
		cur = at + 1
	}

	host, cur, isLiteral, err := parseHost(span, cur)
	if err != nil {
		return 0, err
	}
	u.host = host
	u.hostIsLiteral = isLiteral

	rest := span[cur:]
	switch {
	case rest == "":
	case rest[0] != ':':
		return 0, invalidf("unexpected character %q after host", rest[0])
	default:
		port, err := parsePort(rest[1:])
		if err != nil {
			return 0, err
		}
		u.port = port
	}
	return end, nil
}

// parsePort maps ":" with nothing after it to the present-but-empty port 0.
// The absent state (-1) is handled by the caller.
func parsePort(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, invalidf("invalid port %q", s)
		}
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidf("invalid port %q", s)
	}
	return port, nil
}

// parsePath consumes up to the next '?' or '#'. Segments are validated
// raw, decoded independently, and dot-normalized when more than one
// segment came out of the split.
func parsePath(s string, offset int, u *Uri) (int, error) {
	end := len(s)
	if i := strings.IndexAny(s[offset:], "?#"); i >= 0 {
		end = offset + i
	}
	span := s[offset:end]

	if span == "" {
		return end, nil
	}
	if u.hasAuthority {
		if span[0] != '/' {
			return 0, invalidf("path after authority must be empty or absolute")
		}
		if span == "/" {
			u.path = []string{""}
			return end, nil
		}
	}
	if err := checkSpan(span, pathChars, "path"); err != nil {
		return 0, err
	}

	segments := strings.Split(span, "/")
	if u.hasAuthority {
		if len(segments) >= 2 && segments[0] == "" && segments[1] == "" {
			return 0, invalidf("path must not begin with //")
		}
	} else if strings.IndexByte(segments[0], ':') >= 0 {
		return 0, invalidf("first path segment must not contain ':'")
	}

	decoded := make([]string, len(segments))
	for i, seg := range segments {
		d, err := pctDecode(seg)
		if err != nil {
			return 0, err
		}
		decoded[i] = d
	}
	if len(decoded) > 1 {
		decoded = removeDotSegments(decoded)
	}
	u.path = decoded
	return end, nil
}

// parseQuery consumes "?..." up to the next '#'. The raw text is kept
// undecoded; pairs are split on '&' then on the first '=', a pair with no
// '=' carrying an absent value rather than an empty one.
func parseQuery(s string, offset int, u *Uri) (int, error) {
	if offset >= len(s) || s[offset] != '?' {
		return offset, nil
	}
	offset++
	end := len(s)
	if i := strings.IndexByte(s[offset:], '#'); i >= 0 {
		end = offset + i
	}
	span := s[offset:end]
	if err := checkSpan(span, queryChars, "query"); err != nil {
		return 0, err
	}

	u.hasQuery = true
	u.rawQuery = span
	if span == "" {
		return end, nil
	}

	for _, pair := range strings.Split(span, "&") {
		var p QueryParam
		if eq := strings.IndexByte(pair, '='); eq >= 0 {
			key, err := pctDecode(pair[:eq])
			if err != nil {
				return 0, err
			}
			value, err := pctDecode(pair[eq+1:])
			if err != nil {
				return 0, err
			}
			p = QueryParam{Key: key, Value: value, HasValue: true}
		} else {
			key, err := pctDecode(pair)
			if err != nil {
				return 0, err
			}
			p = QueryParam{Key: key}
		}
		u.query = append(u.query, p)
	}
	return end, nil
}

// parseFragment consumes "#..." to the end of input.
func parseFragment(s string, offset int, u *Uri) error {
	if offset >= len(s) {
		return nil
	}
	if s[offset] != '#' {
		return invalidf("unexpected character %q at offset %d", s[offset], offset)
	}
	span := s[offset+1:]
	if err := checkSpan(span, fragmentChars, "fragment"); err != nil {
		return err
	}
	decoded, err := pctDecode(span)
	if err != nil {
		return err
	}
	u.hasFragment = true
	u.fragment = decoded
	return nil
}
