package repository

import (
	"context"

	"keebshop/internal/domain/model"
)

// セッションの外部ストア。トークンごとに1ドキュメント。
// Redis実装は infra/session。
type SessionStore interface {
	// トークンのセッションを取得。無ければ空のセッションを返す。
	Load(ctx context.Context, token string) (model.Session, error)
	// セッションを丸ごと保存（last writer wins）。
	Save(ctx context.Context, token string, sess model.Session) error
	// セッションを削除
	Delete(ctx context.Context, token string) error
}
