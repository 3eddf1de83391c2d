package fraction

import (
	"errors"
)

// ErrInvalidArgument matches every InvalidArgumentError through errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrZeroDenominator = InvalidArgumentError{Msg: "Denominator cannot be zero."}
	ErrDivideByZero    = InvalidArgumentError{Msg: "Unable to divide by zero."}
)

// InvalidArgumentError is returned when an operand would produce a zero
// denominator. The message is reported verbatim.
type InvalidArgumentError struct {
	Msg string
}

var _ error = InvalidArgumentError{}

func (e InvalidArgumentError) Error() string {
	return e.Msg
}

func (e InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
