package scanner

import "github.com/hostbridge/rcon/internal/bytesig"

// StringLiteral returns the absolute address of the first occurrence of
// q.Needle within buf. The trailing NUL, if any, is not considered part of
// the needle and is not required to be present.
func StringLiteral(regionBase uintptr, buf []byte, q Query) (uintptr, bool) {
	off := bytesig.Index(buf, q.Needle)
	if off < 0 {
		return 0, false
	}
	return regionBase + uintptr(off), true
}
