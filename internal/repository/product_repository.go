package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error

	// 物理削除。過去のイベントは消さない（参照はdanglingのまま）
	Delete(ctx context.Context, id int64) error
}
