package usecase

import (
	"context"
)

// OwnedAttributes provides owner-scoped list/create over a user-owned
// attribute entity. One instance is constructed per entity type.
type OwnedAttributes[T any] struct {
	repo AttributeRepository[T]
}

func NewOwnedAttributes[T any](repo AttributeRepository[T]) *OwnedAttributes[T] {
	return &OwnedAttributes[T]{repo: repo}
}

// List returns the requester's records, name descending. A user with no
// records gets an empty slice, not an error.
func (u *OwnedAttributes[T]) List(ctx context.Context, ownerID int64) ([]T, error) {
	items, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Create persists a record with the owner forcibly set to the requester.
func (u *OwnedAttributes[T]) Create(ctx context.Context, ownerID int64, name string) (T, error) {
	return u.repo.Create(ctx, ownerID, name)
}
