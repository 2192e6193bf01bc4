package entity

import (
	"strings"
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	DeliveryCourier        = "courier"
	DeliveryCourierTbilisi = "courier_tbilisi"
	DeliveryCourierBatumi  = "courier_batumi"
	DeliveryCourierKutaisi = "courier_kutaisi"
	DeliveryGeorgiaPost    = "georgia_post"
	DeliveryOtherLogistics = "other_logistics"
	DeliveryPickup         = "pickup"
)

const (
	PaymentPayze              = "payze"
	PaymentTBCPay             = "tbc_pay"
	PaymentLibertyPay         = "liberty_pay"
	PaymentBOGPay             = "bog_pay"
	PaymentInstallmentTBC     = "installment_tbc"
	PaymentInstallmentLiberty = "installment_liberty"
	PaymentInstallmentCredo   = "installment_credo"
	PaymentCODCash            = "cod_cash"
)

// OrderItem is a snapshot of the product at order time; later product edits
// never alter historical orders.
type OrderItem struct {
	ProductID    string  `json:"product_id" firestore:"productId"`
	ProductTitle string  `json:"product_title" firestore:"productTitle"`
	ProductImage string  `json:"product_image,omitempty" firestore:"productImage,omitempty"`
	Price        float64 `json:"price" firestore:"price"`
	Quantity     int     `json:"quantity" firestore:"quantity"`
	Total        float64 `json:"total" firestore:"total"`
	VariantSize  string  `json:"variant_size,omitempty" firestore:"variantSize,omitempty"`
	VariantColor string  `json:"variant_color,omitempty" firestore:"variantColor,omitempty"`
}

type Order struct {
	Metadata

	OrderNumber string      `json:"order_number" firestore:"orderNumber"`
	BuyerID     string      `json:"buyer_id" firestore:"buyerId"`
	Items       []OrderItem `json:"items" firestore:"items"`

	Subtotal    float64 `json:"subtotal" firestore:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee" firestore:"deliveryFee"`
	// Commission is the platform's cut of the subtotal, recorded for seller
	// payout reconciliation. It is not added to the buyer-facing total.
	Commission float64 `json:"commission" firestore:"commission"`
	Total      float64 `json:"total" firestore:"total"`

	PaymentMethod   string `json:"payment_method" firestore:"paymentMethod"`
	DeliveryMethod  string `json:"delivery_method" firestore:"deliveryMethod"`
	DeliveryAddress string `json:"delivery_address" firestore:"deliveryAddress"`
	DeliveryRegion  string `json:"delivery_region" firestore:"deliveryRegion"`
	DeliveryCity    string `json:"delivery_city,omitempty" firestore:"deliveryCity,omitempty"`
	DeliveryPhone   string `json:"delivery_phone" firestore:"deliveryPhone"`
	DeliveryNotes   string `json:"delivery_notes,omitempty" firestore:"deliveryNotes,omitempty"`

	Status string `json:"status" firestore:"status"`
	IsPaid bool   `json:"is_paid" firestore:"isPaid"`

	ShippedAt          *time.Time `json:"shipped_at,omitempty" firestore:"shippedAt,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty" firestore:"deliveredAt,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty" firestore:"cancelledAt,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty" firestore:"cancellationReason,omitempty"`
}

// IsTerminal reports whether no further status transitions are allowed.
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled
}

// ContainsProduct reports whether any line item references the product.
func (o *Order) ContainsProduct(productID string) bool {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// CashOnDelivery reports whether the payment method defers payment to
// delivery time. Everything else is treated as paid at order time.
func CashOnDelivery(paymentMethod string) bool {
	return strings.Contains(paymentMethod, "cod")
}

// DeliveryFeeFor is the flat delivery fee table. Values are currency-unit
// flat fees, not computed from distance or weight.
func DeliveryFeeFor(method string) float64 {
	switch method {
	case DeliveryPickup:
		return 0
	case DeliveryCourier, DeliveryCourierTbilisi, DeliveryCourierBatumi, DeliveryCourierKutaisi:
		return 10
	case DeliveryGeorgiaPost, DeliveryOtherLogistics:
		return 15
	default:
		return 0
	}
}

// statusRank orders the forward path of the order state machine.
var statusRank = map[string]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

// CanTransitionTo enforces monotonic forward progress plus cancellation from
// any non-terminal state.
func (o *Order) CanTransitionTo(target string) bool {
	if o.IsTerminal() {
		return false
	}
	if target == OrderStatusCancelled {
		return true
	}
	from, ok := statusRank[o.Status]
	if !ok {
		return false
	}
	to, ok := statusRank[target]
	if !ok {
		return false
	}
	return to > from
}
