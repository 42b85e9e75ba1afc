package uri

import (
	"fmt"
	"strconv"
	"strings"
)

// reservedChars is the base set pctEncode escapes. Callers widen or narrow
// it per component via the allowed/forced arguments.
const reservedChars = "% :/?#[]@!$&'()*+,;="

// pctEncode percent-escapes every byte of s that is in the base reserved
// set minus allowed plus forced. Unreserved characters are never escaped,
// whatever the options say. Hex digits are emitted uppercase.
func pctEncode(s, allowed, forced string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if encodeNeeded(c, allowed, forced) {
			b.WriteString(fmt.Sprintf("%%%02X", c))
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func encodeNeeded(c byte, allowed, forced string) bool {
	if isUnreserved(c) {
		return false
	}
	if strings.IndexByte(forced, c) >= 0 {
		return true
	}
	if strings.IndexByte(allowed, c) >= 0 {
		return false
	}
	return strings.IndexByte(reservedChars, c) >= 0
}

// pctDecode resolves %XX triplets in a single pass. A '%' not followed by
// exactly two hex digits fails the parse. "%2520" decodes to "%20", never
// further.
func pctDecode(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+2 >= len(s) {
			return "", invalidf("truncated percent escape at offset %d", i)
		}
		v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
		if err != nil {
			return "", invalidf("malformed percent escape %q", s[i:i+3])
		}
		b.WriteByte(byte(v))
		i += 2
	}
	return b.String(), nil
}
