package service

import (
	"errors"
	"fmt"

	"github.com/dicetrails/go-shop-api/internal/dto"
	"github.com/dicetrails/go-shop-api/internal/model"
	"github.com/dicetrails/go-shop-api/internal/store"
)

var ErrInvalidStatus = errors.New("unknown order status")

type OrderService struct {
	store *store.Store
}

func NewOrderService(st *store.Store) *OrderService {
	return &OrderService{store: st}
}

// Place validates the voucher gate, commits the order (which reduces stock
// all-or-nothing), and only then records voucher redemption and
// newsletter-discount consumption against the user.
func (s *OrderService) Place(req dto.PlaceOrderRequest) (string, error) {
	if _, err := s.store.UserByEmail(req.Email); err != nil {
		return "", fmt.Errorf("place order: %w", err)
	}

	if req.VoucherCode != "" {
		if _, err := s.store.ValidateVoucher(req.VoucherCode, req.Email); err != nil {
			return "", err
		}
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order := model.Order{
		UserID:          req.Email,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		TotalAmount:     req.TotalAmount,
		VoucherCode:     req.VoucherCode,
		Items:           items,
	}

	id, err := s.store.PlaceOrder(order)
	if err != nil {
		return "", err
	}

	if req.VoucherCode != "" {
		if err := s.store.RedeemVoucher(req.Email, req.VoucherCode); err != nil {
			return id, fmt.Errorf("record voucher redemption: %w", err)
		}
	}
	if req.NewsletterDiscountApplied {
		if err := s.store.MarkNewsletterDiscountUsed(req.Email); err != nil {
			return id, fmt.Errorf("record newsletter discount: %w", err)
		}
	}
	return id, nil
}

func (s *OrderService) ListByUser(email string) []model.Order {
	return s.store.OrdersByUser(email)
}

func (s *OrderService) ListAll() []model.Order {
	return s.store.Orders()
}

func (s *OrderService) UpdateStatus(id string, status model.OrderStatus) error {
	if !model.ValidStatus(status) {
		return ErrInvalidStatus
	}
	return s.store.UpdateOrderStatus(id, status)
}

func (s *OrderService) Cancel(id, email string) error {
	return s.store.CancelOrder(id, email)
}

func (s *OrderService) Delete(id string) error {
	return s.store.DeleteOrder(id)
}
