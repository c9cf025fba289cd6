package session

import (
	"context"
	"time"
)

// Record is the persisted unit of a session.
type Record struct {
	ID   string
	Data map[string]any
	// ExpireAt is the absolute expiry. The zero value means the record never expires.
	ExpireAt time.Time
}

// NeverExpires reports whether the record carries the "never" sentinel.
func (r Record) NeverExpires() bool {
	return r.ExpireAt.IsZero()
}

// Collection is the document store the engine persists records in.
// Implementations must return copies: mutating a returned record must not
// change stored state.
type Collection interface {
	// FindOne returns the record with the given id, expired or not.
	// It returns ErrRecordNotFound when there is none.
	FindOne(ctx context.Context, id string) (*Record, error)

	// Save writes rec, replacing any record with the same id.
	Save(ctx context.Context, rec Record) error

	// Insert writes rec only if no record with the same id exists.
	// It returns ErrDuplicateID otherwise.
	Insert(ctx context.Context, rec Record) error

	// Remove deletes the record with the given id. Removing a missing id is not an error.
	Remove(ctx context.Context, id string) error

	// RemoveExpired deletes every record whose expiry is earlier than before.
	// Records that never expire are kept. It returns the number removed.
	RemoveExpired(ctx context.Context, before time.Time) (int64, error)
}
