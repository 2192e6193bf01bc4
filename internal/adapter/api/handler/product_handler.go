package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bazroba/internal/domain/entity"
	"bazroba/internal/usecase"
	"bazroba/pkg/response"
	"bazroba/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{productUseCase: productUseCase}
}

// A variant request without its own price inherits the product price.
type productVariantRequest struct {
	Size  string   `json:"size"`
	Color string   `json:"color"`
	Price *float64 `json:"price" validate:"omitempty,gt=0"`
	Stock int      `json:"stock" validate:"min=0"`
	SKU   string   `json:"sku"`
}

type createProductRequest struct {
	CategoryID    string                  `json:"category_id" validate:"required"`
	Title         string                  `json:"title" validate:"required,min=3"`
	Description   string                  `json:"description" validate:"required"`
	Price         float64                 `json:"price" validate:"required,gt=0"`
	DiscountPrice *float64                `json:"discount_price" validate:"omitempty,gt=0"`
	Stock         int                     `json:"stock" validate:"min=0"`
	Material      string                  `json:"material"`
	Images        []string                `json:"images" validate:"dive,url"`
	Variants      []productVariantRequest `json:"variants" validate:"dive"`
}

func variantsFromRequest(reqs []productVariantRequest) []entity.ProductVariant {
	if reqs == nil {
		return nil
	}
	variants := make([]entity.ProductVariant, len(reqs))
	for i, v := range reqs {
		variants[i] = entity.ProductVariant{
			Size:  v.Size,
			Color: v.Color,
			Price: v.Price,
			Stock: v.Stock,
			SKU:   v.SKU,
		}
	}
	return variants
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	product, err := h.productUseCase.Create(c.Request().Context(), uid, usecase.CreateProductInput{
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		Material:      req.Material,
		Images:        req.Images,
		Variants:      variantsFromRequest(req.Variants),
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := usecase.ProductFilter{
		Page:       pagination.Page,
		Limit:      pagination.PageSize,
		CategoryID: c.QueryParam("category_id"),
		SellerID:   c.QueryParam("seller_id"),
		Region:     c.QueryParam("region"),
		Material:   c.QueryParam("material"),
		Search:     c.QueryParam("search"),
		IsFeatured: c.QueryParam("featured") == "true",
	}
	if v := c.QueryParam("min_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if v := c.QueryParam("max_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &price
		}
	}
	if v := c.QueryParam("min_rating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = &rating
		}
	}

	products, total, err := h.productUseCase.List(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) GetProductBySlug(c echo.Context) error {
	product, err := h.productUseCase.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	product, err := h.productUseCase.Update(c.Request().Context(), c.Param("id"), uid, usecase.UpdateProductInput{
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		Material:      req.Material,
		Images:        req.Images,
		Variants:      variantsFromRequest(req.Variants),
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.productUseCase.Delete(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	uid := c.Get("uid").(string)
	products, err := h.productUseCase.SellerProducts(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) ModerateProduct(c echo.Context) error {
	var req moderateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	product, err := h.productUseCase.Moderate(c.Request().Context(), c.Param("id"), req.Status, req.Comment, uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}
