package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"keebshop/internal/domain/model"
	"keebshop/internal/handler"
	"keebshop/internal/middleware"
	repo "keebshop/internal/repository"
	"keebshop/internal/server"
	"keebshop/internal/usecase"
	auth "keebshop/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// =====================
// メモリ実装（DB・Redisの代役）
// =====================

type memUserRepo struct {
	users  []model.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1}
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return repo.ErrDuplicateKey
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *user)
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == userID {
			found := u
			return &found, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, repo.ErrNotFound
}

type memProductRepo struct {
	products []model.Product
	nextID   int64
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{nextID: 1}
}

func (r *memProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memProductRepo) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	for _, p := range r.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r *memProductRepo) FindByName(ctx context.Context, name string) (model.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r *memProductRepo) Create(ctx context.Context, p model.Product) (model.Product, error) {
	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

type memSessionStore struct {
	sessions map[string]model.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]model.Session{}}
}

func (s *memSessionStore) Load(ctx context.Context, token string) (model.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return model.Session{Cart: model.Cart{}}, nil
	}
	if sess.Cart == nil {
		sess.Cart = model.Cart{}
	}
	return sess, nil
}

func (s *memSessionStore) Save(ctx context.Context, token string, sess model.Session) error {
	s.sessions[token] = sess
	return nil
}

func (s *memSessionStore) Delete(ctx context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

// 検証結果を差し替えられるTokenVerifier
type fakeTokenVerifier struct {
	claims auth.GoogleClaims
	err    error
}

func (v *fakeTokenVerifier) Verify(ctx context.Context, rawToken string) (auth.GoogleClaims, error) {
	if v.err != nil {
		return auth.GoogleClaims{}, v.err
	}
	return v.claims, nil
}

// =====================
// テスト用アプリ一式
// =====================

type testApp struct {
	e        *echo.Echo
	users    *memUserRepo
	products *memProductRepo
	store    *memSessionStore
	verifier *fakeTokenVerifier
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	users := newMemUserRepo()
	products := newMemProductRepo()
	store := newMemSessionStore()
	verifier := &fakeTokenVerifier{}

	zlog := zap.NewNop()
	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)
	pwVerifier := auth.NewBcryptPasswordVerifier()

	sessions := middleware.NewSessionManager(store, zlog)

	registerUC := auth.NewRegisterUserUsecase(users, hasher)
	loginUC := auth.NewLoginUsecase(users, pwVerifier)
	googleUC := auth.NewGoogleLoginUsecase(users, verifier, hasher)
	cartUC := usecase.NewCartUsecase(products)
	catalogUC := usecase.NewCatalogUsecase(products)
	builderUC := usecase.NewBuilderUsecase()

	authH := handler.NewAuthHandler(registerUC, loginUC, googleUC, sessions, zlog)
	shopH := handler.NewShopHandler(cartUC, catalogUC, users, sessions, zlog)
	builderH := handler.NewBuilderHandler(builderUC)

	e := server.New(zlog, sessions, authH, shopH, builderH)

	return &testApp{
		e:        e,
		users:    users,
		products: products,
		store:    store,
		verifier: verifier,
	}
}

// ログイン済みセッションを直接仕込んでトークンを返す
func (a *testApp) loginAs(t *testing.T, username string) string {
	t.Helper()

	user := &model.User{Username: username, PasswordHash: "x"}
	if err := a.users.Create(context.Background(), user); err != nil {
		// 既にいればそれを使う
		existing, ferr := a.users.FindByUsername(context.Background(), username)
		assert.NoError(t, ferr)
		user = existing
	}

	token := "tok-" + username
	a.store.sessions[token] = model.Session{UserID: &user.ID, Cart: model.Cart{}}
	return token
}

func (a *testApp) get(path string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) postForm(path string, form url.Values, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}
