package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bazroba/internal/usecase"
	"bazroba/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)
	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

type updateProfileRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,min=1"`
	LastName  string `json:"last_name" validate:"omitempty,min=1"`
	Avatar    string `json:"avatar" validate:"omitempty,url"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Avatar:    req.Avatar,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) Deactivate(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.userUseCase.Deactivate(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deactivated"})
}

type sellerProfileRequest struct {
	ShopName    string `json:"shop_name" validate:"required,min=2"`
	Description string `json:"description"`
	Logo        string `json:"logo" validate:"omitempty,url"`
	Region      string `json:"region"`
	Phone       string `json:"phone" validate:"omitempty,e164"`
}

func (h *UserHandler) CreateSellerProfile(c echo.Context) error {
	var req sellerProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	profile, err := h.userUseCase.CreateSellerProfile(c.Request().Context(), uid, usecase.SellerProfileInput{
		ShopName:    req.ShopName,
		Description: req.Description,
		Logo:        req.Logo,
		Region:      req.Region,
		Phone:       req.Phone,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, profile)
}

func (h *UserHandler) GetMySellerProfile(c echo.Context) error {
	uid := c.Get("uid").(string)
	profile, err := h.userUseCase.GetSellerProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *UserHandler) GetSellerProfile(c echo.Context) error {
	profile, err := h.userUseCase.GetSellerProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

type updateSellerProfileRequest struct {
	ShopName    string `json:"shop_name" validate:"omitempty,min=2"`
	Description string `json:"description"`
	Logo        string `json:"logo" validate:"omitempty,url"`
	Region      string `json:"region"`
	Phone       string `json:"phone" validate:"omitempty,e164"`
}

func (h *UserHandler) UpdateSellerProfile(c echo.Context) error {
	var req updateSellerProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	profile, err := h.userUseCase.UpdateSellerProfile(c.Request().Context(), uid, usecase.SellerProfileInput{
		ShopName:    req.ShopName,
		Description: req.Description,
		Logo:        req.Logo,
		Region:      req.Region,
		Phone:       req.Phone,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

type moderateRequest struct {
	Status  string `json:"status" validate:"required,oneof=pending approved rejected"`
	Comment string `json:"comment"`
}

func (h *UserHandler) ModerateSellerProfile(c echo.Context) error {
	var req moderateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	profile, err := h.userUseCase.ModerateSellerProfile(c.Request().Context(), c.Param("id"), req.Status, req.Comment, uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *UserHandler) FollowSeller(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.userUseCase.FollowSeller(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"following": true})
}

func (h *UserHandler) UnfollowSeller(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.userUseCase.UnfollowSeller(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"following": false})
}

func (h *UserHandler) IsFollowing(c echo.Context) error {
	uid := c.Get("uid").(string)
	following, err := h.userUseCase.IsFollowing(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"following": following})
}

type addressRequest struct {
	Label      string   `json:"label" validate:"required"`
	Street     string   `json:"street" validate:"required"`
	Building   string   `json:"building"`
	Apartment  string   `json:"apartment"`
	City       string   `json:"city" validate:"required"`
	Region     string   `json:"region" validate:"required"`
	PostalCode string   `json:"postal_code"`
	Phone      string   `json:"phone" validate:"omitempty,e164"`
	Notes      string   `json:"notes"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	IsDefault  bool     `json:"is_default"`
}

func (r addressRequest) toInput() usecase.AddressInput {
	return usecase.AddressInput{
		Label:      r.Label,
		Street:     r.Street,
		Building:   r.Building,
		Apartment:  r.Apartment,
		City:       r.City,
		Region:     r.Region,
		PostalCode: r.PostalCode,
		Phone:      r.Phone,
		Notes:      r.Notes,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		IsDefault:  r.IsDefault,
	}
}

func (h *UserHandler) CreateAddress(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	address, err := h.userUseCase.CreateAddress(c.Request().Context(), uid, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, address)
}

func (h *UserHandler) ListAddresses(c echo.Context) error {
	uid := c.Get("uid").(string)
	addresses, err := h.userUseCase.ListAddresses(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, addresses)
}

func (h *UserHandler) UpdateAddress(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	address, err := h.userUseCase.UpdateAddress(c.Request().Context(), uid, c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, address)
}

func (h *UserHandler) DeleteAddress(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.userUseCase.DeleteAddress(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}
