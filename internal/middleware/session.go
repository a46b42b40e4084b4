package middleware

import (
	"net/http"
	"os"

	"keebshop/internal/domain/model"
	"keebshop/internal/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// セッショントークンを入れるcookie名。
const SessionCookieName = "session_id"

const (
	ctxSessionKey = "session"
	ctxTokenKey   = "session_token"
)

// SessionManager はcookieトークンとSessionStoreの橋渡しをする。
// リクエスト冒頭でロードし、保存はhandlerが明示的に呼ぶ。
type SessionManager struct {
	store        repository.SessionStore
	log          *zap.Logger
	cookieSecure bool
}

// DI
func NewSessionManager(store repository.SessionStore, log *zap.Logger) *SessionManager {
	return &SessionManager{
		store:        store,
		log:          log,
		cookieSecure: envBool("COOKIE_SECURE", true),
	}
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}

func (m *SessionManager) setCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware はセッションをロードしてechoのcontextに載せる。
// cookieが無ければトークンを発行する。
func (m *SessionManager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ""
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				token = cookie.Value
			}

			// 初回アクセスはトークン発行
			if token == "" {
				token = uuid.NewString()
				m.setCookie(c, token)
			}

			sess, err := m.store.Load(c.Request().Context(), token)
			if err != nil {
				// ストア障害はリトライしない。ログして一般エラー。
				m.log.Error("session load failed", zap.Error(err))
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
			}
			if sess.Cart == nil {
				sess.Cart = model.Cart{}
			}

			c.Set(ctxSessionKey, &sess)
			c.Set(ctxTokenKey, token)

			return next(c)
		}
	}
}

// Get は現在のリクエストのセッションを返す。
// Middlewareの後でしか呼ばない前提。
func (m *SessionManager) Get(c echo.Context) *model.Session {
	sess, _ := c.Get(ctxSessionKey).(*model.Session)
	return sess
}

// Save はcontext上のセッションをストアへ書き戻す。
func (m *SessionManager) Save(c echo.Context) error {
	sess := m.Get(c)
	token, _ := c.Get(ctxTokenKey).(string)
	if sess == nil || token == "" {
		return nil
	}

	if err := m.store.Save(c.Request().Context(), token, *sess); err != nil {
		m.log.Error("session save failed", zap.Error(err))
		return err
	}
	return nil
}

// Rotate はトークンを付け替えて保存する（ログイン成功時のセッション固定化対策）。
// 旧トークンのドキュメントは消し、現セッションを新トークンで保存し直す。
func (m *SessionManager) Rotate(c echo.Context) error {
	oldToken, _ := c.Get(ctxTokenKey).(string)

	if oldToken != "" {
		if err := m.store.Delete(c.Request().Context(), oldToken); err != nil {
			m.log.Error("session delete failed", zap.Error(err))
			return err
		}
	}

	newToken := uuid.NewString()
	c.Set(ctxTokenKey, newToken)
	m.setCookie(c, newToken)

	return m.Save(c)
}

// RequireLogin は認証済みセッションを要求するガード。
// 匿名なら401でログインページへ誘導する。
func (m *SessionManager) RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := m.Get(c)
			if !sess.IsAuthenticated() {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":    "You must be logged in.",
					"redirect": "/login",
				})
			}
			return next(c)
		}
	}
}
