package command

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidGroup   = errors.New("invalid group number")
	ErrInvalidCount   = errors.New("invalid message count")
	ErrNothingToEdit  = errors.New("no sent message to edit or delete")
	ErrNoHistory      = errors.New("no messages found")
)

// isCommandError reports errors caused by the operator's input rather than
// by the transport.
func isCommandError(err error) bool {
	return errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidGroup) ||
		errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrNothingToEdit) ||
		errors.Is(err, ErrNoHistory)
}
