package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"keebshop/internal/domain/model"
	"keebshop/internal/middleware"
	"keebshop/internal/repository"
	"keebshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

type MessageResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// 商品・カート・checkout・seedのHTTP
type ShopHandler struct {
	cartUC    *usecase.CartUsecase
	catalogUC *usecase.CatalogUsecase
	userRepo  repository.UserRepository
	sessions  *middleware.SessionManager
	log       *zap.Logger
}

// DI
func NewShopHandler(
	cartUC *usecase.CartUsecase,
	catalogUC *usecase.CatalogUsecase,
	userRepo repository.UserRepository,
	sessions *middleware.SessionManager,
	log *zap.Logger,
) *ShopHandler {
	return &ShopHandler{
		cartUC:    cartUC,
		catalogUC: catalogUC,
		userRepo:  userRepo,
		sessions:  sessions,
		log:       log,
	}
}

// ルートを登録。カート追加だけログイン必須。
func (h *ShopHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.home)
	e.GET("/products", h.products)
	e.GET("/add_to_cart/:id", h.addToCart, h.sessions.RequireLogin())
	e.GET("/add_custom_build", h.addCustomBuild, h.sessions.RequireLogin())
	e.GET("/remove_from_cart/:key", h.removeFromCart)
	e.GET("/cart", h.cart)
	e.GET("/checkout", h.checkout)
	e.GET("/add-sample-products", h.seedProducts)
}

type homeResponse struct {
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
}

func (h *ShopHandler) home(c echo.Context) error {
	resp := homeResponse{Message: "Welcome to the keyboard shop!"}

	// ログイン中ならusernameも返す
	sess := h.sessions.Get(c)
	if sess.IsAuthenticated() {
		user, err := h.userRepo.FindByID(c.Request().Context(), *sess.UserID)
		if err == nil {
			resp.Username = user.Username
		} else if !errors.Is(err, repository.ErrNotFound) {
			h.log.Error("user lookup failed", zap.Error(err))
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ShopHandler) products(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		h.log.Error("product list failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ShopHandler) addToCart(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id", Redirect: "/products"})
	}

	sess := h.sessions.Get(c)

	p, err := h.cartUC.AddProduct(c.Request().Context(), sess.Cart, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found", Redirect: "/products"})
		}
		h.log.Error("add to cart failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	if err := h.sessions.Save(c); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message:  fmt.Sprintf("%s added to your cart!", p.Name),
		Redirect: "/products",
	})
}

func (h *ShopHandler) addCustomBuild(c echo.Context) error {
	sess := h.sessions.Get(c)

	h.cartUC.AddCustomBuild(sess.Cart)

	if err := h.sessions.Save(c); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message:  "Custom keyboard build added to cart!",
		Redirect: "/",
	})
}

func (h *ShopHandler) removeFromCart(c echo.Context) error {
	key := model.CartKey(c.Param("key"))

	sess := h.sessions.Get(c)

	// 無いキーはno-op
	h.cartUC.Remove(sess.Cart, key)

	if err := h.sessions.Save(c); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message:  "Item removed from cart.",
		Redirect: "/cart",
	})
}

func (h *ShopHandler) cart(c echo.Context) error {
	sess := h.sessions.Get(c)

	view, err := h.cartUC.BuildView(c.Request().Context(), sess.Cart)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "product no longer available", Redirect: "/products"})
		}
		h.log.Error("cart view failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, view)
}

// checkoutはカートだけ空にする。ログイン状態はそのまま。
func (h *ShopHandler) checkout(c echo.Context) error {
	sess := h.sessions.Get(c)

	h.cartUC.Clear(sess.Cart)

	if err := h.sessions.Save(c); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Thank you for your order!"})
}

func (h *ShopHandler) seedProducts(c echo.Context) error {
	created, err := h.catalogUC.SeedDefaults(c.Request().Context())
	if err != nil {
		h.log.Error("seed failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	h.log.Info("sample products seeded", zap.Int("created", created))
	return c.JSON(http.StatusOK, MessageResponse{Message: "Sample products added!"})
}
