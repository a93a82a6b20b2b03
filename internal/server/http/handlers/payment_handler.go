package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	"github.com/ekeukwu/market/internal/domain/model"
	"github.com/ekeukwu/market/internal/server/http/dto"
)

// PaymentHandler manages payment recording and lookup endpoints.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Record handles POST /payments.
func (h *PaymentHandler) Record(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "invalid payment payload"})
		return
	}

	payment, err := h.facade.RecordPayment(
		c.Request.Context(),
		req.OrderID, req.UserID, req.Amount,
		model.PaymentMethod(req.PaymentMethod), req.DueDate,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(*payment))
}

// Staggered handles POST /payments/staggered.
func (h *PaymentHandler) Staggered(c *gin.Context) {
	h.installment(c, h.facade.StaggeredPayment)
}

// RentToOwn handles POST /payments/rent-to-own.
func (h *PaymentHandler) RentToOwn(c *gin.Context) {
	h.installment(c, h.facade.RentToOwnPayment)
}

// Outright handles POST /payments/outright.
func (h *PaymentHandler) Outright(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "invalid payment payload"})
		return
	}

	payment, err := h.facade.OutrightPayment(c.Request.Context(), req.OrderID, req.UserID, req.Amount, req.DueDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(*payment))
}

// ByOrder handles GET /payments/:order_id.
func (h *PaymentHandler) ByOrder(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	payments, err := h.facade.PaymentsByOrder(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "listing payments failed"})
		return
	}

	response := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, dto.ToPaymentResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Renewals handles GET /payments/renewals, returning payments whose due
// date has already passed.
func (h *PaymentHandler) Renewals(c *gin.Context) {
	payments, err := h.facade.Renewals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "listing renewals failed"})
		return
	}

	response := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, dto.ToPaymentResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// History handles GET /payments/history/:order_id.
func (h *PaymentHandler) History(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	entries, err := h.facade.PaymentHistory(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "listing payment history failed"})
		return
	}

	response := make([]dto.PaymentHistoryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, dto.ToPaymentHistoryResponse(e))
	}
	c.JSON(http.StatusOK, response)
}

func (h *PaymentHandler) installment(c *gin.Context, record func(ctx context.Context, orderID, userID int64, amount float64) (*model.Payment, error)) {
	var req dto.InstallmentPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "invalid payment payload"})
		return
	}

	payment, err := record(c.Request.Context(), req.OrderID, req.UserID, req.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(*payment))
}

func (h *PaymentHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidPaymentMethod):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "unknown payment method"})
	case errors.Is(err, domainErrors.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "amount must be positive"})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "user not found"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "recording payment failed"})
	}
}
