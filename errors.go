package ring

import (
	"github.com/qntx/ring/internal/index"
	"github.com/qntx/ring/storage"
)

var (
	// ErrInvalidCapacity is returned by constructors when the requested
	// capacity is below 1.
	ErrInvalidCapacity = storage.ErrInvalidCapacity
	// ErrInsufficientStorage is returned by NewFromSlice when the supplied
	// block is shorter than the declared capacity.
	ErrInsufficientStorage = storage.ErrInsufficientStorage
	// ErrFull is returned by Push under the Reject policy when no slot is
	// free.
	ErrFull = index.ErrFull
	// ErrEmpty is returned by Pop and Front when no slot is occupied.
	ErrEmpty = index.ErrEmpty
	// ErrOutOfRange is returned by Peek, CommitWrite and DiscardRead when
	// the requested position or count exceeds the occupied or free region.
	ErrOutOfRange = index.ErrOutOfRange
)
