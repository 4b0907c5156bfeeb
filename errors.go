package overlay

import "errors"

var (
	// ErrInvalidArgument is returned when an argument is outside what the
	// engine supports, such as a non-rectangular clip or an unknown
	// composite rule. The receiving context is left unchanged.
	ErrInvalidArgument = errors.New("overlay: invalid argument")

	// ErrNotImplemented is matched by every *NotImplementedError.
	ErrNotImplemented = errors.New("overlay: not implemented")
)

// NotImplementedError reports a drawing operation the engine does not
// provide. No pixels are written when it is returned.
type NotImplementedError struct {
	Op string
}

func (e *NotImplementedError) Error() string {
	return "overlay: " + e.Op + " not implemented"
}

// Is reports whether target is ErrNotImplemented.
func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

// notImplemented logs and returns the error for op.
func notImplemented(op string) error {
	Logger().Warn("overlay: operation not implemented", "op", op)
	return &NotImplementedError{Op: op}
}
