package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dicetrails/go-shop-api/internal/dto"
	"github.com/dicetrails/go-shop-api/internal/service"
	"github.com/dicetrails/go-shop-api/internal/store"
)

type VoucherHandler struct {
	voucherService *service.VoucherService
}

func NewVoucherHandler(voucherService *service.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

func (h *VoucherHandler) ListAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.voucherService.ListAll())
}

func (h *VoucherHandler) ListActive(c *gin.Context) {
	c.JSON(http.StatusOK, h.voucherService.ListActive())
}

func (h *VoucherHandler) Add(c *gin.Context) {
	var req dto.VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.voucherService.Add(req); err != nil {
		switch {
		case errors.Is(err, store.ErrVoucherExists):
			c.JSON(http.StatusConflict, gin.H{"error": "voucher code already exists"})
		case errors.Is(err, store.ErrInvalidDiscount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "voucher added"})
}

func (h *VoucherHandler) Update(c *gin.Context) {
	var req dto.VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.voucherService.Update(req); err != nil {
		switch {
		case errors.Is(err, store.ErrVoucherNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "voucher not found"})
		case errors.Is(err, store.ErrInvalidDiscount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "voucher updated"})
}

func (h *VoucherHandler) Delete(c *gin.Context) {
	if err := h.voucherService.Delete(c.Param("code")); err != nil {
		if errors.Is(err, store.ErrVoucherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "voucher not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VoucherHandler) Validate(c *gin.Context) {
	var req dto.ValidateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.voucherService.Validate(req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid, inactive, or already used voucher code"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
