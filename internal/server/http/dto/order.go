package dto

import (
	"time"

	"github.com/ekeukwu/market/internal/domain/model"
)

// CreateOrderRequest describes the order creation payload.
type CreateOrderRequest struct {
	UserID        int64    `json:"user_id" binding:"required"`
	ProductIDs    []string `json:"product_ids"`
	PaymentMethod string   `json:"payment_method" binding:"required"`
	Status        string   `json:"status"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	ProductIDs    []string  `json:"product_ids"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToOrderResponse converts a domain order, never rendering products as null.
func ToOrderResponse(o model.Order) OrderResponse {
	productIDs := o.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}
	return OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		ProductIDs:    productIDs,
		PaymentMethod: string(o.PaymentMethod),
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}

// OrderPatchRequest lists the order fields present in a partial update.
type OrderPatchRequest struct {
	ProductIDs    *[]string `json:"product_ids"`
	PaymentMethod *string   `json:"payment_method"`
	Status        *string   `json:"status"`
}

// ToPatch converts the request into the domain patch structure.
func (r OrderPatchRequest) ToPatch() model.OrderPatch {
	patch := model.OrderPatch{
		ProductIDs: r.ProductIDs,
		Status:     r.Status,
	}
	if r.PaymentMethod != nil {
		method := model.PaymentMethod(*r.PaymentMethod)
		patch.PaymentMethod = &method
	}
	return patch
}
