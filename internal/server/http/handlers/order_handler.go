package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/ekeukwu/market/internal/domain/errors"
	"github.com/ekeukwu/market/internal/domain/model"
	"github.com/ekeukwu/market/internal/server/http/dto"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /order.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "listing orders failed"})
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.ToOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "invalid order payload"})
		return
	}

	order := &model.Order{
		UserID:        req.UserID,
		ProductIDs:    req.ProductIDs,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
		Status:        req.Status,
	}

	created, err := h.facade.CreateOrder(c.Request.Context(), order)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidPaymentMethod) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "unknown payment method"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "creating order failed"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(*created))
}

// Get handles GET /order/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// Update handles PATCH /order/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.OrderPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "invalid patch payload"})
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: fmt.Sprintf("order %d not found", id)})
		case errors.Is(err, domainErrors.ErrInvalidPaymentMethod):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "unknown payment method"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "updating order failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// Delete handles DELETE /order/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "deleting order failed"})
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Order %d was deleted successfully", id))
}

// Payments handles GET /orders/:order_id/payments.
func (h *OrderHandler) Payments(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	payments, err := h.facade.OrderPayments(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "listing payments failed"})
		return
	}

	response := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, dto.ToPaymentResponse(p))
	}
	c.JSON(http.StatusOK, response)
}
