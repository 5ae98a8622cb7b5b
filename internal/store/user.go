package store

import (
	"strings"

	"github.com/dicetrails/go-shop-api/internal/model"
)

// CreateUser registers a new account. Emails are a case-insensitive unique
// key; a duplicate yields ErrEmailExists.
func (s *Store) CreateUser(username, email, password string) (model.User, error) {
	c := &s.users
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, u := range c.items {
		if strings.EqualFold(u.Email, email) {
			return model.User{}, ErrEmailExists
		}
	}

	user := model.User{
		ID:       nextUserID(c.items),
		Username: username,
		Email:    email,
		Password: password,
		Cart:     map[string]int{},
	}
	c.items = append(c.items, user)
	c.persist()
	return user, nil
}

func (s *Store) UserByEmail(email string) (model.User, error) {
	c := &s.users
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, u := range c.items {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

func (s *Store) Users() []model.User {
	return s.users.snapshot()
}

// UpdateUser replaces the record matching the user's email.
func (s *Store) UpdateUser(user model.User) error {
	c := &s.users
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if strings.EqualFold(c.items[i].Email, user.Email) {
			c.items[i] = user
			c.persist()
			return nil
		}
	}
	return ErrUserNotFound
}

// UpdateCart overwrites a user's cart mapping. Quantities are taken as sent;
// the core does not validate them.
func (s *Store) UpdateCart(email string, cart map[string]int) error {
	c := &s.users
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if strings.EqualFold(c.items[i].Email, email) {
			if cart == nil {
				cart = map[string]int{}
			}
			c.items[i].Cart = cart
			c.persist()
			return nil
		}
	}
	return ErrUserNotFound
}

// SubscribeNewsletter flips the subscription flag on. It reports whether the
// user was newly subscribed; an already-subscribed user is left unchanged.
func (s *Store) SubscribeNewsletter(email string) (bool, error) {
	c := &s.users
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if strings.EqualFold(c.items[i].Email, email) {
			if c.items[i].NewsletterSubscribed {
				return false, nil
			}
			c.items[i].NewsletterSubscribed = true
			c.persist()
			return true, nil
		}
	}
	return false, ErrUserNotFound
}

// MarkNewsletterDiscountUsed consumes the one-time first-order discount.
func (s *Store) MarkNewsletterDiscountUsed(email string) error {
	c := &s.users
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if strings.EqualFold(c.items[i].Email, email) {
			c.items[i].UsedNewsletterDiscount = true
			c.persist()
			return nil
		}
	}
	return ErrUserNotFound
}

// RedeemVoucher records a code against the user so ValidateVoucher refuses
// it from then on. Recording is the caller's job at checkout; the validator
// itself never mutates.
func (s *Store) RedeemVoucher(email, code string) error {
	c := &s.users
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if strings.EqualFold(c.items[i].Email, email) {
			for _, used := range c.items[i].RedeemedVouchers {
				if used == code {
					return nil
				}
			}
			c.items[i].RedeemedVouchers = append(c.items[i].RedeemedVouchers, code)
			c.persist()
			return nil
		}
	}
	return ErrUserNotFound
}

// DeleteUserCompletely removes the account and cascades to the user's orders
// and the reviews attached to those orders. Each collection is locked and
// persisted in turn; the order records themselves are gone afterwards, so
// no stock restoration happens here.
func (s *Store) DeleteUserCompletely(email string) error {
	uc := &s.users
	uc.mu.Lock()
	found := false
	kept := uc.items[:0]
	for _, u := range uc.items {
		if strings.EqualFold(u.Email, email) {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if found {
		uc.items = kept
		uc.persist()
	}
	uc.mu.Unlock()
	if !found {
		return ErrUserNotFound
	}

	removedOrders := map[string]bool{}
	oc := &s.orders
	oc.mu.Lock()
	keptOrders := oc.items[:0]
	for _, o := range oc.items {
		if strings.EqualFold(o.UserID, email) {
			removedOrders[o.OrderID] = true
			continue
		}
		keptOrders = append(keptOrders, o)
	}
	if len(removedOrders) > 0 {
		oc.items = keptOrders
		oc.persist()
	}
	oc.mu.Unlock()

	rc := &s.reviews
	rc.mu.Lock()
	changed := false
	keptReviews := rc.items[:0]
	for _, r := range rc.items {
		if r.OrderID != "" && removedOrders[r.OrderID] {
			changed = true
			continue
		}
		keptReviews = append(keptReviews, r)
	}
	if changed {
		rc.items = keptReviews
		rc.persist()
	}
	rc.mu.Unlock()

	return nil
}
