package bookmark

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable covers every failure to reach or use the document store
	// (network, auth, malformed response). No finer cause is distinguished.
	ErrStoreUnavailable = errors.New("bookmark store unavailable")

	// ErrMalformedDocument marks a stored document that cannot be read as a bookmark.
	// Listings skip such documents instead of failing.
	ErrMalformedDocument = errors.New("malformed bookmark document")

	// ErrInvalidQuestion rejects a question whose identity cannot be stored
	// and read back unchanged (text, testId or subject not valid UTF-8).
	ErrInvalidQuestion = errors.New("invalid question")
)

// Unavailable wraps err as an ErrStoreUnavailable for operation op.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}
