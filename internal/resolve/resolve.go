package resolve

import "errors"

// ErrNoProfileMatched is returned when neither Profile ZDoom's nor Profile
// Russian-Doom's prerequisite signatures are all present in img. The
// caller (internal/bootstrap) treats this as a silent no-op: the RCON
// server is never started.
var ErrNoProfileMatched = errors.New("resolve: no target profile matched")

// Resolve tries Profile ZDoom first, then falls back to Profile
// Russian-Doom, against img — the host's own read-only and executable
// regions, either captured live (CaptureImage) or, in tests, synthesized.
func Resolve(img Image) (*ResolvedSymbols, error) {
	if sym, ok := tryZDoom(img); ok {
		return sym, nil
	}
	if sym, ok := tryRussianDoom(img); ok {
		return sym, nil
	}
	return nil, ErrNoProfileMatched
}
