package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bazroba/internal/usecase"
	"bazroba/pkg/response"
)

type BannerHandler struct {
	bannerUseCase *usecase.BannerUseCase
}

func NewBannerHandler(bannerUseCase *usecase.BannerUseCase) *BannerHandler {
	return &BannerHandler{bannerUseCase: bannerUseCase}
}

func (h *BannerHandler) ListBanners(c echo.Context) error {
	banners, err := h.bannerUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, banners)
}

type bannerRequest struct {
	Title     string `json:"title" validate:"required"`
	Image     string `json:"image" validate:"required,url"`
	Link      string `json:"link" validate:"omitempty,url"`
	SortOrder int    `json:"sort_order"`
}

func (h *BannerHandler) CreateBanner(c echo.Context) error {
	var req bannerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	banner, err := h.bannerUseCase.Create(c.Request().Context(), usecase.BannerInput{
		Title:     req.Title,
		Image:     req.Image,
		Link:      req.Link,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, banner)
}

func (h *BannerHandler) UpdateBanner(c echo.Context) error {
	var req bannerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	banner, err := h.bannerUseCase.Update(c.Request().Context(), c.Param("id"), usecase.BannerInput{
		Title:     req.Title,
		Image:     req.Image,
		Link:      req.Link,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, banner)
}

func (h *BannerHandler) DeleteBanner(c echo.Context) error {
	if err := h.bannerUseCase.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}
