//go:build !(windows && 386)

package trampoline

// noopTrampoline is used everywhere output interception isn't supported:
// every target except 32-bit Windows.
type noopTrampoline struct{}

// New returns the no-op Trampoline for this build.
func New() Trampoline { return noopTrampoline{} }

func (noopTrampoline) CanIntercept() bool { return false }

func (noopTrampoline) Install(uintptr, CaptureFunc) error { return ErrUnsupported }
