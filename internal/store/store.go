// Package store persists draft-return snapshots by return id. Updates go
// through pure mutator functions applied inside a transaction so a
// read-modify-write cycle never loses a concurrent writer's work.
package store

import (
	"context"
	"errors"

	"cgt-returns/internal/model"
)

// ErrNotFound is returned when no draft return exists for a key.
var ErrNotFound = errors.New("draft return not found")

// Store is the session-store contract controllers depend on. Mutators must
// be pure and total; the store applies them atomically to the current
// snapshot and returns the stored result.
type Store interface {
	Create(ctx context.Context, draft *model.DraftReturn) error
	Fetch(ctx context.Context, key string) (*model.DraftReturn, error)
	Update(ctx context.Context, key string, mutate func(model.DraftReturn) model.DraftReturn) (*model.DraftReturn, error)
	Close() error
}
