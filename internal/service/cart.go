package service

import (
	"github.com/dicetrails/go-shop-api/internal/store"
)

// CartService reads and writes the cart mapping stored on the user record.
type CartService struct {
	store *store.Store
}

func NewCartService(st *store.Store) *CartService {
	return &CartService{store: st}
}

func (s *CartService) Cart(email string) (map[string]int, error) {
	user, err := s.store.UserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user.Cart == nil {
		return map[string]int{}, nil
	}
	return user.Cart, nil
}

func (s *CartService) Update(email string, cart map[string]int) error {
	return s.store.UpdateCart(email, cart)
}
