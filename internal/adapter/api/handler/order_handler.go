package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bazroba/internal/domain/entity"
	"bazroba/internal/usecase"
	"bazroba/pkg/errors"
	"bazroba/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{orderUseCase: orderUseCase}
}

type orderItemRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	VariantSize  string `json:"variant_size"`
	VariantColor string `json:"variant_color"`
}

type createOrderRequest struct {
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   string             `json:"payment_method" validate:"required"`
	DeliveryMethod  string             `json:"delivery_method" validate:"required"`
	DeliveryAddress string             `json:"delivery_address"`
	DeliveryRegion  string             `json:"delivery_region"`
	DeliveryCity    string             `json:"delivery_city"`
	DeliveryPhone   string             `json:"delivery_phone" validate:"omitempty,e164"`
	DeliveryNotes   string             `json:"delivery_notes"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	items := make([]usecase.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.OrderItemInput{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			VariantSize:  item.VariantSize,
			VariantColor: item.VariantColor,
		}
	}

	uid := c.Get("uid").(string)
	order, err := h.orderUseCase.Create(c.Request().Context(), uid, usecase.CreateOrderInput{
		Items:           items,
		PaymentMethod:   req.PaymentMethod,
		DeliveryMethod:  req.DeliveryMethod,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryRegion:  req.DeliveryRegion,
		DeliveryCity:    req.DeliveryCity,
		DeliveryPhone:   req.DeliveryPhone,
		DeliveryNotes:   req.DeliveryNotes,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	if err := h.authorize(c, order); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	orders, err := h.orderUseCase.List(c.Request().Context(), uid, "")
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

func (h *OrderHandler) ListSellerOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	orders, err := h.orderUseCase.List(c.Request().Context(), "", uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	orders, err := h.orderUseCase.List(c.Request().Context(), "", "")
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
	Reason string `json:"reason"`
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	if err := h.authorizeStatusChange(c, order, req.Status); err != nil {
		return response.Error(c, err)
	}

	updated, err := h.orderUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), usecase.UpdateOrderStatusInput{
		Status: req.Status,
		Reason: req.Reason,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, updated)
}

// authorize admits the buyer, the selling side and staff.
func (h *OrderHandler) authorize(c echo.Context, order *usecase.OrderDetail) error {
	uid := c.Get("uid").(string)
	role, _ := c.Get("role").(string)

	if role == entity.RoleAdmin || role == entity.RoleModerator {
		return nil
	}
	if order.BuyerID == uid {
		return nil
	}
	for _, item := range order.Items {
		if item.Product != nil && item.Product.SellerID == uid {
			return nil
		}
	}
	return errors.NotFound("Order", nil)
}

// authorizeStatusChange lets buyers only cancel their own orders; sellers
// and staff drive the rest of the state machine.
func (h *OrderHandler) authorizeStatusChange(c echo.Context, order *usecase.OrderDetail, status string) error {
	uid := c.Get("uid").(string)
	role, _ := c.Get("role").(string)

	if role == entity.RoleAdmin || role == entity.RoleModerator {
		return nil
	}
	if order.BuyerID == uid {
		if status != entity.OrderStatusCancelled {
			return errors.Forbidden("Buyers can only cancel orders", nil)
		}
		return nil
	}
	for _, item := range order.Items {
		if item.Product != nil && item.Product.SellerID == uid {
			return nil
		}
	}
	return errors.NotFound("Order", nil)
}
