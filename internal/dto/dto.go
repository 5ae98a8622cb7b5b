package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dicetrails/go-shop-api/internal/model"
)

// --- Auth ---

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	UserID               int    `json:"userId"`
	Username             string `json:"username"`
	Email                string `json:"email"`
	IsAdmin              bool   `json:"isAdmin"`
	NewsletterSubscribed bool   `json:"newsletterSubscribed"`
	NewsletterDiscount   bool   `json:"hasUsedNewsletterDiscount"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// --- Cart ---

type UpdateCartRequest struct {
	Email string         `json:"email" binding:"required,email"`
	Cart  map[string]int `json:"cart" binding:"required"`
}

type CartResponse struct {
	Cart map[string]int `json:"cart"`
}

// --- Product ---

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Image       []string        `json:"image"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	Date        string          `json:"date"`
	Bestseller  bool            `json:"bestseller"`
	Quantity    int             `json:"quantity" binding:"min=0"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Image       *[]string        `json:"image"`
	Category    *string          `json:"category"`
	SubCategory *string          `json:"subCategory"`
	Bestseller  *bool            `json:"bestseller"`
	Quantity    *int             `json:"quantity"`
}

// --- Order ---

type PlaceOrderItem struct {
	ProductID int `json:"_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	Email                     string            `json:"email" binding:"required,email"`
	DeliveryAddress           map[string]string `json:"deliveryAddress" binding:"required"`
	PaymentMethod             string            `json:"paymentMethod" binding:"required"`
	TotalAmount               decimal.Decimal   `json:"totalAmount" binding:"required"`
	Items                     []PlaceOrderItem  `json:"items" binding:"required,min=1,dive"`
	VoucherCode               string            `json:"voucherCode"`
	NewsletterDiscountApplied bool              `json:"newsletterDiscountApplied"`
}

type PlaceOrderResponse struct {
	OrderID string `json:"orderId"`
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" binding:"required"`
}

type CancelOrderRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type OrderResponse struct {
	OrderID         string            `json:"orderId"`
	UserID          string            `json:"userId"`
	DeliveryAddress map[string]string `json:"deliveryAddress"`
	PaymentMethod   string            `json:"paymentMethod"`
	TotalAmount     decimal.Decimal   `json:"totalAmount"`
	Date            int64             `json:"date"`
	Status          model.OrderStatus `json:"status"`
	TrackingNumber  string            `json:"trackingNumber,omitempty"`
	VoucherCode     string            `json:"voucherCode,omitempty"`
	Items           []model.OrderItem `json:"items"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// --- Voucher ---

type VoucherRequest struct {
	Code          string             `json:"code" binding:"required"`
	DiscountType  model.DiscountType `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue decimal.Decimal    `json:"discountValue" binding:"required"`
	IsActive      bool               `json:"isActive"`
	Description   string             `json:"description"`
}

type ValidateVoucherRequest struct {
	Code  string          `json:"code" binding:"required"`
	Email string          `json:"email" binding:"required,email"`
	Total decimal.Decimal `json:"total"`
}

type ValidateVoucherResponse struct {
	Voucher  model.Voucher   `json:"voucher"`
	Discount decimal.Decimal `json:"discount"`
}

// --- Review ---

type AddReviewRequest struct {
	ProductID string   `json:"productId" binding:"required"`
	User      string   `json:"user" binding:"required"`
	Rating    int      `json:"rating" binding:"required,min=1,max=5"`
	Content   string   `json:"content"`
	Media     []string `json:"media"`
	OrderID   string   `json:"orderId"`
}

// --- Contact ---

type AddContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
