package dock

import (
	"strconv"

	"github.com/google/uuid"
)

// ID identifies a window for the lifetime of an engine.
type ID uint64

func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// ParseID parses the decimal form produced by String.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(n), nil
}

// Handle is the opaque content handle of a window. The rendering side
// resolves it to the surface that shows the window's content.
type Handle string

// NewHandle returns a random handle.
func NewHandle() Handle { return Handle(uuid.NewString()) }

// allocator hands out ids from 0 upwards. A zero limit means unbounded.
type allocator struct {
	next  uint64
	limit uint64
}

func (a *allocator) allocate() (ID, error) {
	if a.limit != 0 && a.next >= a.limit {
		return 0, ErrOutOfIDs
	}
	id := ID(a.next)
	a.next++
	return id, nil
}
