package handler

import (
	"github.com/labstack/echo/v4"

	"bazroba/internal/usecase"
	"bazroba/pkg/response"
)

type AdminHandler struct {
	analyticsUseCase *usecase.AnalyticsUseCase
}

func NewAdminHandler(analyticsUseCase *usecase.AnalyticsUseCase) *AdminHandler {
	return &AdminHandler{analyticsUseCase: analyticsUseCase}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.analyticsUseCase.Dashboard(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stats)
}

func (h *AdminHandler) SellerDashboard(c echo.Context) error {
	uid := c.Get("uid").(string)
	stats, err := h.analyticsUseCase.SellerDashboard(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stats)
}
