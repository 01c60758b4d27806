package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// email重複（大文字小文字は区別しない）
var ErrEmailTaken = errors.New("email taken")

// ユーザーの保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成。email重複は ErrEmailTaken
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。無ければ ErrNotFound
	FindByID(ctx context.Context, userID int64) (model.User, error)
	//メールからユーザーを1件取得する。無ければ ErrNotFound
	FindByEmail(ctx context.Context, email string) (model.User, error)
}
