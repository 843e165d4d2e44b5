package repository

import (
	"app/internal/domain/model"
	"context"
)

// リフレッシュトークンの保存・取得・失効
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)

	// used_atをセットして使用済みにする（ローテーション）
	MarkUsed(ctx context.Context, tokenID string) error

	// revoked_atをセットして指定ユーザーの有効トークンを全て無効にする
	// （使用済みトークンの再提示＝盗難疑い時）
	RevokeAllByUserID(ctx context.Context, userID int64) error

	DeleteAllByUserID(ctx context.Context, userID int64) error
}
