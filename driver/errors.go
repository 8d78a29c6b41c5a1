package driver

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrInvalidConfiguration is returned when a loop cannot start with the given inputs.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrSequenceConsumed is yielded when a log sequence is ranged over a second time.
	ErrSequenceConsumed = errors.New("sequence already consumed")
)

func invalidConfig(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

// UnlockError reports the account whose unlock failed. It unwraps to the node's error.
type UnlockError struct {
	Index   int
	Account common.Address
	Err     error
}

func (e *UnlockError) Error() string {
	return fmt.Sprintf("unlock account %d (%s): %v", e.Index, e.Account.Hex(), e.Err)
}

func (e *UnlockError) Unwrap() error { return e.Err }

// SubmissionError reports the iteration whose transfer the node rejected. It unwraps to the node's error.
type SubmissionError struct {
	Index int
	From  common.Address
	To    common.Address
	Err   error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submit tx %d (%s -> %s): %v", e.Index, e.From.Hex(), e.To.Hex(), e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
