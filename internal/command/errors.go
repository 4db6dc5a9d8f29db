package command

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownCommand  = errors.New("I'm sorry, but I don't know what that means")
)

// InvalidArgumentError reports a malformed command line. Its message is shown
// to the user as is.
type InvalidArgumentError struct {
	Reason string
}

func invalidArgument(reason string) error {
	return &InvalidArgumentError{Reason: reason}
}

func (e *InvalidArgumentError) Error() string {
	return e.Reason
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
