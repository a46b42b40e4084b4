package handler

import (
	"net/http"

	"keebshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// コンフィギュレータのHTTP
type BuilderHandler struct {
	uc *usecase.BuilderUsecase
}

// DI
func NewBuilderHandler(uc *usecase.BuilderUsecase) *BuilderHandler {
	return &BuilderHandler{uc: uc}
}

type builderPreviewRequest struct {
	Switches string `json:"switches" form:"switches"`
	Layout   string `json:"layout" form:"layout"`
	Case     string `json:"case" form:"case"`
}

func (h *BuilderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/builder", h.builderForm)
	e.POST("/builder_preview", h.preview)
}

func (h *BuilderHandler) builderForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"form":   "builder",
		"fields": []string{"switches", "layout", "case"},
	})
}

// 選択肢をそのまま返す。空文字もエラーにしない。
func (h *BuilderHandler) preview(c echo.Context) error {
	var req builderPreviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out := h.uc.Preview(req.Switches, req.Layout, req.Case)
	return c.JSON(http.StatusOK, out)
}
