package repository

import (
	"app/internal/domain/model"
	"context"
)

// 保存・取得を約束
type UserRepository interface {
	// email重複はErrDuplicate
	Create(ctx context.Context, user *model.User) error

	// 見つからなければ (nil, nil)
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	FindByID(ctx context.Context, id int64) (*model.User, error)

	Update(ctx context.Context, user *model.User) error
}
