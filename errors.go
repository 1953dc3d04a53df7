package flu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is the panic cause for a non-positive Chunk or Window size.
	ErrInvalidSize = errors.New("size must be positive")

	// ErrConsumed is the panic cause when a Pipe is used after an operator or
	// a terminal has already consumed it.
	ErrConsumed = errors.New("pipe already consumed")

	errNilFunc = errors.New("function must not be nil")
)

// precondition panics with an error naming the operator, so a caller that
// recovers can still match the cause with errors.Is.
func precondition(op string, cause error, detail string) {
	if detail == "" {
		panic(fmt.Errorf("flu.%s: %w", op, cause))
	}
	panic(fmt.Errorf("flu.%s: %w (%s)", op, cause, detail))
}
