package uri

// removeDotSegments applies RFC 3986 section 5.2.4 over already-split,
// already-decoded segments. A leading empty segment is the absolute-path
// root marker and is never popped; a ".." with nothing left to pop is kept
// literally.
func removeDotSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case ".":
		case "..":
			switch {
			case len(out) == 0:
				out = append(out, "..")
			case out[len(out)-1] == "..":
				out = append(out, "..")
			case out[len(out)-1] == "":
				// cannot climb above the root marker
			default:
				out = out[:len(out)-1]
			}
		default:
			out = append(out, seg)
		}
	}
	return out
}
