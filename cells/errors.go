package cells

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is the misuse error raised, by panic, for positional
	// access outside a sequence.
	ErrIndexOutOfRange = errors.New("cells: index out of range")
	// ErrReleased is raised when an already released owner is released again.
	ErrReleased = errors.New("cells: owner already released")
	// ErrCannotExecute is returned by Command.Execute while CanExecute is false.
	ErrCannotExecute = errors.New("cells: command cannot execute")
)

// IndexError wraps ErrIndexOutOfRange with the offending position.
func IndexError(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}
