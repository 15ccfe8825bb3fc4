package order

import "time"

// CreateOrderItem payload de ítem; el precio nunca viene del cliente.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ProductID string `json:"product_id" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity  int    `json:"quantity"   example:"2"`
}

// CreateOrderRequest payload de creación de pedido. CustomerID is only
// honored for trusted callers (the gateway checks the role); when empty
// the order is attached to the requesting user's own profile.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CustomerID      string            `json:"customer_id,omitempty"`
	Items           []CreateOrderItem `json:"items"`
	DeliveryAddress string            `json:"delivery_address,omitempty"`
	DeliveryNotes   string            `json:"delivery_notes,omitempty"`
}

// UpdateOrderItem is an item entry in an update patch. Prices supplied
// here are written verbatim; the order total is never recomputed.
// swagger:model UpdateOrderItem
type UpdateOrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// UpdateOrderRequest partial patch; nil fields are left untouched.
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	CustomerID      *string           `json:"customer_id,omitempty"`
	Items           []UpdateOrderItem `json:"items,omitempty"`
	Status          *string           `json:"status,omitempty"`
	DeliveryAddress *string           `json:"delivery_address,omitempty"`
	DeliveryDate    *time.Time        `json:"delivery_date,omitempty"`
	DeliveryNotes   *string           `json:"delivery_notes,omitempty"`
	Image           *string           `json:"image,omitempty"`
	ImageThumbnail  *string           `json:"image_thumbnail,omitempty"`
}
