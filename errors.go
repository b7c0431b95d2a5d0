package genogo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/genogo/intern"
	"github.com/hupe1980/genogo/table"
)

var (
	// ErrNotFound is returned when a locus has no entry in the store.
	ErrNotFound = errors.New("genogo: locus not found")

	// ErrDuplicateLocus is returned by inserts under the reject policy
	// when the locus already has an entry.
	ErrDuplicateLocus = table.ErrDuplicateLocus

	// ErrCapacityExceeded is returned when the interner's code space is
	// exhausted by a genuinely new string.
	ErrCapacityExceeded = intern.ErrCapacityExceeded

	// ErrUnknownCode is returned when resolving a code the interner
	// never assigned.
	ErrUnknownCode = intern.ErrUnknownCode
)

// translateError unifies package-level errors into facade sentinels so
// callers can errors.Is against the genogo package alone.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, table.ErrDuplicateLocus) ||
		errors.Is(err, intern.ErrCapacityExceeded) ||
		errors.Is(err, intern.ErrUnknownCode) {
		return err
	}
	return fmt.Errorf("genogo: %w", err)
}
