package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dicetrails/go-shop-api/internal/dto"
	"github.com/dicetrails/go-shop-api/internal/service"
	"github.com/dicetrails/go-shop-api/internal/store"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) ListAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.contactService.ListAll())
}

func (h *ContactHandler) Add(c *gin.Context) {
	var req dto.AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.contactService.Add(req))
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	if err := h.contactService.MarkRead(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked read"})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
