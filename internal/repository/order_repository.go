package repository

import (
	"context"

	"clipworks-service/internal/domain"
)

// Store is the persistence contract shared by the in-memory and MySQL
// backends. Lookups return (nil, nil) when the record does not exist;
// backend failures surface as opaque errors so callers never depend on
// which backend is behind the interface.
type Store interface {
	CreateOrder(ctx context.Context, in domain.InsertOrder) (*domain.Order, error)
	GetOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id uint64) (*domain.Order, error)

	CreateUser(ctx context.Context, in domain.InsertUser) (*domain.User, error)
	GetUser(ctx context.Context, id uint64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
