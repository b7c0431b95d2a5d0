package intern

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrCapacityExceeded is returned when a genuinely new string would
	// push the table past the maximum representable code count. Lookups
	// of already-known strings never fail, even at capacity.
	ErrCapacityExceeded = errors.New("intern: code space exhausted")

	// ErrUnknownCode is returned when resolving a code that was never
	// assigned (negative, or beyond the current table size).
	ErrUnknownCode = errors.New("intern: unknown code")
)

// MaxCodes is the capacity bound of an Interner. Codes are carried inline
// inside integer annotation values sized for the positive int32 range, so
// the table can never hold more distinct strings than that.
const MaxCodes = math.MaxInt32

// Interner deduplicates repeated string values into dense, stable int32
// codes. It follows the arena-plus-index pattern: a dense append-only
// slice for code→string plus a map for string→code.
//
// The table is strictly growth-only: once assigned, a code never changes
// meaning, and no removal or renumbering operation exists. A single
// Interner is meant to be shared across all records feeding one table so
// that deduplication spans the whole dataset.
//
// Interner provides no internal synchronization; callers that intern from
// multiple goroutines must serialize access (single-writer).
type Interner struct {
	codes   map[string]int32
	strings []string

	// capacity defaults to MaxCodes; tests override it via newBounded
	// because interning 2^31 strings is not a practical fixture.
	capacity int
}

// New creates an empty Interner.
func New() *Interner {
	return newBounded(MaxCodes)
}

func newBounded(capacity int) *Interner {
	return &Interner{
		codes:    make(map[string]int32),
		capacity: capacity,
	}
}

// Code returns the stable code for s, assigning the next sequential code
// on first sight. Codes are dense and start at 0.
//
// Re-interning a known string always succeeds; ErrCapacityExceeded fires
// only when a new string must be added to an already-full table. A failed
// call leaves the table exactly as it was.
func (in *Interner) Code(s string) (int32, error) {
	if code, ok := in.codes[s]; ok {
		return code, nil
	}
	if len(in.strings) >= in.capacity {
		return 0, fmt.Errorf("%w: %d codes assigned", ErrCapacityExceeded, len(in.strings))
	}
	code := int32(len(in.strings))
	in.codes[s] = code
	in.strings = append(in.strings, s)
	return code, nil
}

// Lookup resolves a previously assigned code back to its string.
func (in *Interner) Lookup(code int32) (string, error) {
	if code < 0 || int(code) >= len(in.strings) {
		return "", fmt.Errorf("%w: %d (size %d)", ErrUnknownCode, code, len(in.strings))
	}
	return in.strings[code], nil
}

// Contains reports whether s has already been assigned a code.
func (in *Interner) Contains(s string) bool {
	_, ok := in.codes[s]
	return ok
}

// Len returns the number of distinct strings interned so far.
func (in *Interner) Len() int {
	return len(in.strings)
}

// Strings returns the code-ordered view of every interned string: index i
// holds the string for code i.
//
// The slice is produced directly from internal storage, not a defensive
// copy. The table is growth-only, so the view cannot be used to
// invalidate codes; treat it as read-only.
func (in *Interner) Strings() []string {
	return in.strings
}
