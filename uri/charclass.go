package uri

const (
	subDelims       = "!$&'()*+,;="
	unreservedMarks = "-._~"
)

// asciiSet is a fixed membership table over the ASCII range. The component
// tables below are built once at package init and shared read-only across
// all parses, so no synchronization is needed.
type asciiSet [128]bool

func newAsciiSet(members string) *asciiSet {
	s := &asciiSet{}
	for c := 'a'; c <= 'z'; c++ {
		s[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		s[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		s[c] = true
	}
	for i := 0; i < len(members); i++ {
		s[members[i]] = true
	}
	return s
}

func (s *asciiSet) contains(c byte) bool {
	return c < 128 && s[c]
}

// Per-component allowed characters over the raw, still percent-encoded text.
// Every set includes ALPHA and DIGIT; the members string adds the rest.
var (
	schemeChars    = newAsciiSet("+-.")
	userInfoChars  = newAsciiSet(unreservedMarks + subDelims + "%:")
	hostChars      = newAsciiSet(unreservedMarks + subDelims + "%")
	pathChars      = newAsciiSet(unreservedMarks + subDelims + "%:@/")
	queryChars     = newAsciiSet(unreservedMarks + subDelims + "%:@/?")
	fragmentChars  = newAsciiSet(unreservedMarks + subDelims + "%:@/?")
	ipvFutureChars = newAsciiSet(unreservedMarks + subDelims + ":")
)

// checkSpan validates a raw span against a component table. A character
// outside the set fails the whole parse, there is no partial acceptance.
func checkSpan(span string, set *asciiSet, component string) error {
	for i := 0; i < len(span); i++ {
		if !set.contains(span[i]) {
			return invalidf("disallowed character %q in %s", span[i], component)
		}
	}
	return nil
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isUnreserved(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}
