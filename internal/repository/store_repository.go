package repository

import (
	"app/internal/domain/model"
	"context"
)

type StoreRepository interface {
	Create(ctx context.Context, s model.Store) (model.Store, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Store, error)
	FindByID(ctx context.Context, id int64) (model.Store, error)
}
