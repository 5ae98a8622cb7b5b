package model

import "github.com/shopspring/decimal"

// OrderStatus values are stored verbatim in orders.json, so they must not change.
type OrderStatus string

const (
	StatusOrderPlaced OrderStatus = "Order Placed"
	StatusReadyToShip OrderStatus = "Ready to ship"
	StatusShipped     OrderStatus = "Shipped"
	StatusCompleted   OrderStatus = "Completed"
	StatusCancelled   OrderStatus = "Cancelled"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusOrderPlaced, StatusReadyToShip, StatusShipped, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// User holds an account plus its cart. Email is the unique key
// (case-insensitive); orders reference users by email, never by pointer.
type User struct {
	ID                     int            `json:"userId"`
	Username               string         `json:"username"`
	Email                  string         `json:"email"`
	Password               string         `json:"password"`
	IsAdmin                bool           `json:"isAdmin"`
	Cart                   map[string]int `json:"cart"`
	NewsletterSubscribed   bool           `json:"newsletterSubscribed"`
	UsedNewsletterDiscount bool           `json:"hasUsedNewsletterDiscount"`
	RedeemedVouchers       []string       `json:"redeemedVouchers,omitempty"`
}

// Order identifiers are sequential integers stored as strings. Legacy files
// may contain non-numeric ids from the old random-token scheme; those are
// kept as-is but ignored by the allocator.
type Order struct {
	OrderID         string            `json:"orderId"`
	UserID          string            `json:"userId"` // owner's email
	DeliveryAddress map[string]string `json:"deliveryAddress"`
	PaymentMethod   string            `json:"paymentMethod"`
	TotalAmount     decimal.Decimal   `json:"totalAmount"`
	Date            int64             `json:"date"` // unix milliseconds
	Status          OrderStatus       `json:"status"`
	TrackingNumber  string            `json:"trackingNumber,omitempty"`
	VoucherCode     string            `json:"voucherCode,omitempty"`
	Items           []OrderItem       `json:"items"`
}

// OrderItem lines are immutable once placed, except for the Reviewed flag.
type OrderItem struct {
	ProductID int  `json:"_id"`
	Quantity  int  `json:"quantity"`
	Reviewed  bool `json:"isReviewed,omitempty"`
}

type Product struct {
	ID          int             `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       []string        `json:"image"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	Date        string          `json:"date"`
	Bestseller  bool            `json:"bestseller"`
	Quantity    int             `json:"quantity"`
}

type Voucher struct {
	Code          string          `json:"code"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	IsActive      bool            `json:"isActive"`
	Description   string          `json:"description"`
}

type Review struct {
	ID        string   `json:"id"`
	ProductID string   `json:"productId"`
	User      string   `json:"user"`
	Rating    int      `json:"rating"`
	Date      string   `json:"date"`
	Content   string   `json:"content"`
	Helpful   int      `json:"helpful"`
	HasMedia  bool     `json:"hasMedia"`
	Media     []string `json:"media"`
	OrderID   string   `json:"orderId,omitempty"`
}

type ContactMessage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    int64  `json:"date"` // unix milliseconds
	Read    bool   `json:"read"`
}
