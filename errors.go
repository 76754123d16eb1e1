package motion

import "errors"

// Construction errors returned by NewDriver and Scene.Tween. They are wrapped
// with the offending value; test with errors.Is.
var (
	ErrNilAccessor      = errors.New("motion: binding has no accessor")
	ErrNegativeOffset   = errors.New("motion: negative start offset")
	ErrNegativeDuration = errors.New("motion: negative binding duration")
	ErrNonPositiveTotal = errors.New("motion: tween duration must be positive")
	ErrNilScene         = errors.New("motion: nil scene")
)

// ErrDisposed is the panic value (wrapped) raised when a tween writes to a
// node after it has been disposed.
var ErrDisposed = errors.New("motion: node is disposed")
