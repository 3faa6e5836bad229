package strutil

// Explode splits s into one single-byte string per byte of s.
//
// The split is byte-wise, not rune-wise, so it is safe on arbitrary content
// including invalid UTF-8 and NUL bytes; nothing is ever dropped or replaced.
// The result has exactly len(s) elements. An empty s explodes to an empty,
// non-nil slice.
func Explode(s string) []string {
	out := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i : i+1]
	}
	return out
}
