package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dicetrails/go-shop-api/internal/dto"
	"github.com/dicetrails/go-shop-api/internal/model"
	"github.com/dicetrails/go-shop-api/internal/service"
	"github.com/dicetrails/go-shop-api/internal/store"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.orderService.Place(req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, store.ErrVoucherInvalid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid voucher"})
		case errors.Is(err, store.ErrProductNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, store.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.PlaceOrderResponse{OrderID: id})
}

func (h *OrderHandler) ListByUser(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing email"})
		return
	}
	c.JSON(http.StatusOK, toOrderList(h.orderService.ListByUser(email)))
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	c.JSON(http.StatusOK, toOrderList(h.orderService.ListAll()))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.orderService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		case errors.Is(err, store.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	var req dto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.orderService.Cancel(c.Param("id"), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotCancellable):
			c.JSON(http.StatusConflict, gin.H{"error": "order cannot be cancelled"})
		case errors.Is(err, store.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order cancelled"})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orderService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func toOrderList(orders []model.Order) dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.OrderResponse{
			OrderID:         o.OrderID,
			UserID:          o.UserID,
			DeliveryAddress: o.DeliveryAddress,
			PaymentMethod:   o.PaymentMethod,
			TotalAmount:     o.TotalAmount,
			Date:            o.Date,
			Status:          o.Status,
			TrackingNumber:  o.TrackingNumber,
			VoucherCode:     o.VoucherCode,
			Items:           o.Items,
		})
	}
	return dto.OrderListResponse{Orders: items, Total: len(items)}
}
