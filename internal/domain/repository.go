package domain

import "context"

// Repository is the collection-like contract every aggregate repository
// satisfies.
type Repository[T any] interface {
	Create(ctx context.Context, entity T) error
	Find(ctx context.Context, id string) (T, error)
	FindAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, entity T) error
}
