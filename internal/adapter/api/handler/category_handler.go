package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bazroba/internal/usecase"
	"bazroba/pkg/response"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{categoryUseCase: categoryUseCase}
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	if c.QueryParam("tree") == "true" {
		tree, err := h.categoryUseCase.Tree(c.Request().Context())
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, tree)
	}

	categories, err := h.categoryUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.categoryUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, category)
}

func (h *CategoryHandler) GetCategoryBySlug(c echo.Context) error {
	category, err := h.categoryUseCase.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, category)
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"omitempty,url"`
	ParentID    string `json:"parent_id"`
	SortOrder   int    `json:"sort_order"`
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.Create(c.Request().Context(), usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		ParentID:    req.ParentID,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, category)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.Update(c.Request().Context(), c.Param("id"), usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, category)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	if err := h.categoryUseCase.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}
