package vecop

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package unwraps to one of them.
var (
	ErrInvalidType           = errors.New("invalid_type")
	ErrInvalidOperator       = errors.New("invalid_operator")
	ErrInvalidWidth          = errors.New("invalid_width")
	ErrUnavailableCapability = errors.New("unavailable_capability")
)

type dispatchError struct {
	kind error
	msg  string
}

func (e dispatchError) Error() string {
	return e.msg
}

func (e dispatchError) Unwrap() error {
	return e.kind
}

func newError(kind error, format string, args ...any) error {
	return dispatchError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Kind returns the sentinel err wraps, or nil when err did not come from
// this package.
func Kind(err error) error {
	for _, kind := range []error{ErrInvalidType, ErrInvalidOperator, ErrInvalidWidth, ErrUnavailableCapability} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
