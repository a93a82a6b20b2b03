package dto

import (
	"time"

	"github.com/ekeukwu/market/internal/domain/model"
)

// RecordPaymentRequest describes the generic payment payload. DueDate is
// optional; installment endpoints override it server-side.
type RecordPaymentRequest struct {
	OrderID       int64      `json:"order_id" binding:"required"`
	UserID        int64      `json:"user_id" binding:"required"`
	Amount        float64    `json:"amount" binding:"required"`
	PaymentMethod string     `json:"payment_method"`
	DueDate       *time.Time `json:"due_date"`
}

// InstallmentPaymentRequest is the payload for the staggered and
// rent-to-own endpoints, which compute the due date themselves.
type InstallmentPaymentRequest struct {
	OrderID int64   `json:"order_id" binding:"required"`
	UserID  int64   `json:"user_id" binding:"required"`
	Amount  float64 `json:"amount" binding:"required"`
}

// PaymentResponse is the public view of a payment record.
type PaymentResponse struct {
	ID            int64      `json:"id"`
	OrderID       int64      `json:"order_id"`
	UserID        int64      `json:"user_id"`
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ToPaymentResponse converts a domain payment.
func ToPaymentResponse(p model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		UserID:        p.UserID,
		Amount:        p.Amount,
		PaymentMethod: string(p.PaymentMethod),
		DueDate:       p.DueDate,
		CreatedAt:     p.CreatedAt,
	}
}

// PaymentHistoryResponse is the public view of a history log entry.
type PaymentHistoryResponse struct {
	ID            int64      `json:"id"`
	OrderID       int64      `json:"order_id"`
	UserID        int64      `json:"user_id"`
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ToPaymentHistoryResponse converts a domain history entry.
func ToPaymentHistoryResponse(e model.PaymentHistoryEntry) PaymentHistoryResponse {
	return PaymentHistoryResponse{
		ID:            e.ID,
		OrderID:       e.OrderID,
		UserID:        e.UserID,
		Amount:        e.Amount,
		PaymentMethod: string(e.PaymentMethod),
		DueDate:       e.DueDate,
		CreatedAt:     e.CreatedAt,
	}
}
