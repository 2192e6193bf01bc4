package handler

import (
	"github.com/labstack/echo/v4"

	"bazroba/internal/usecase"
	"bazroba/pkg/response"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{wishlistUseCase: wishlistUseCase}
}

func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.wishlistUseCase.Add(c.Request().Context(), uid, c.Param("productId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"wishlisted": true})
}

func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.wishlistUseCase.Remove(c.Request().Context(), uid, c.Param("productId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"wishlisted": false})
}

func (h *WishlistHandler) ListWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)
	entries, err := h.wishlistUseCase.List(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, entries)
}

func (h *WishlistHandler) CheckWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)
	wishlisted, err := h.wishlistUseCase.Contains(c.Request().Context(), uid, c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"wishlisted": wishlisted})
}
