package model

// セッション本体。クライアントのcookieトークンごとに
// Redisへ1ドキュメントで保存する。
type Session struct {
	UserID *int64 `json:"user_id,omitempty"`
	Cart   Cart   `json:"cart,omitempty"`
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != nil
}
