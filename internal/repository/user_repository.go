package repository

import (
	"context"
	"errors"

	"keebshop/internal/domain/model"
)

// 見つかりませんを統一
var ErrNotFound = errors.New("not found")

// 一意制約違反（同時サインアップのバックストップ）
var ErrDuplicateKey = errors.New("duplicate key")

// ユーザーの保存・取得を約束
type UserRepository interface {
	// 新規ユーザー作成。username重複はErrDuplicateKey。
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	// usernameからユーザーを1件取得する（完全一致）。
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
