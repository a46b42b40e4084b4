package handler

import (
	"errors"
	"fmt"
	"net/http"

	"keebshop/internal/middleware"
	auth "keebshop/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ログイン・サインアップ・GoogleサインインのHTTP
type AuthHandler struct {
	registerUC *auth.RegisterUserUsecase
	loginUC    *auth.LoginUsecase
	googleUC   *auth.GoogleLoginUsecase
	sessions   *middleware.SessionManager
	log        *zap.Logger
}

// DI
func NewAuthHandler(
	registerUC *auth.RegisterUserUsecase,
	loginUC *auth.LoginUsecase,
	googleUC *auth.GoogleLoginUsecase,
	sessions *middleware.SessionManager,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		googleUC:   googleUC,
		sessions:   sessions,
		log:        log,
	}
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type signupRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// 元サイトは2つのルートでトークンのフィールド名が違う
type googleLoginRequest struct {
	IDToken string `json:"id_token" form:"id_token"`
	Token   string `json:"token" form:"token"`
}

type googleLoginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/login", h.loginForm)
	e.POST("/login", h.login)
	e.GET("/signup", h.signupForm)
	e.POST("/signup", h.signup)
	e.GET("/logout", h.logout, h.sessions.RequireLogin())
	e.POST("/login-with-google", h.googleLogin)
	e.POST("/google-signin", h.googleLogin)
}

// フォーム描画は外部の仕事なのでフィールド名だけ返す
func (h *AuthHandler) loginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"form":   "login",
		"fields": []string{"username", "password"},
	})
}

func (h *AuthHandler) signupForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"form":   "signup",
		"fields": []string{"username", "password"},
	})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	user, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:    "Invalid username or password.",
				Redirect: "/login",
			})
		}
		h.log.Error("login failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	// セッションにユーザーを紐付け、トークンは付け替える
	sess := h.sessions.Get(c)
	sess.UserID = &user.ID
	if err := h.sessions.Rotate(c); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message:  fmt.Sprintf("Welcome back, %s!", user.Username),
		Redirect: "/",
	})
}

func (h *AuthHandler) signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	_, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username and password are required", Redirect: "/signup"})
		case errors.Is(err, auth.ErrUsernameTaken):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "Username already exists.", Redirect: "/signup"})
		default:
			h.log.Error("signup failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	// 登録後もセッションは匿名のまま。ログインしてもらう。
	return c.JSON(http.StatusOK, MessageResponse{
		Message:  "Account created! You can now log in.",
		Redirect: "/login",
	})
}

// logoutはユーザー紐付けとカートの両方を消す
func (h *AuthHandler) logout(c echo.Context) error {
	sess := h.sessions.Get(c)

	sess.UserID = nil
	for k := range sess.Cart {
		delete(sess.Cart, k)
	}

	if err := h.sessions.Save(c); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out.", Redirect: "/"})
}

func (h *AuthHandler) googleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, googleLoginResponse{Success: false, Message: "invalid body"})
	}

	rawToken := req.IDToken
	if rawToken == "" {
		rawToken = req.Token
	}

	user, claims, err := h.googleUC.Execute(c.Request().Context(), rawToken)
	if err != nil {
		if errors.Is(err, auth.ErrTokenInvalid) {
			// 検証失敗は構造化レスポンスで返す（落とさない）
			return c.JSON(http.StatusBadRequest, googleLoginResponse{Success: false, Message: "Invalid token"})
		}
		h.log.Error("google login failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, googleLoginResponse{Success: false, Message: "internal error"})
	}

	sess := h.sessions.Get(c)
	sess.UserID = &user.ID
	if err := h.sessions.Rotate(c); err != nil {
		return c.JSON(http.StatusInternalServerError, googleLoginResponse{Success: false, Message: "internal error"})
	}

	name := claims.Name
	if name == "" {
		name = claims.Email
	}

	return c.JSON(http.StatusOK, googleLoginResponse{
		Success:  true,
		Message:  fmt.Sprintf("Welcome %s", name),
		Redirect: "/",
	})
}
