package store

import (
	"strings"

	"github.com/dicetrails/go-shop-api/internal/model"
	"github.com/shopspring/decimal"
)

var percentCeiling = decimal.NewFromInt(100)

// checkDiscount bounds percentage vouchers to 0-100. Fixed vouchers only
// need a non-negative value.
func checkDiscount(v model.Voucher) error {
	if v.DiscountValue.IsNegative() {
		return ErrInvalidDiscount
	}
	if v.DiscountType == model.DiscountPercentage && v.DiscountValue.GreaterThan(percentCeiling) {
		return ErrInvalidDiscount
	}
	return nil
}

func (s *Store) Vouchers() []model.Voucher {
	return s.vouchers.snapshot()
}

func (s *Store) ActiveVouchers() []model.Voucher {
	var out []model.Voucher
	for _, v := range s.vouchers.snapshot() {
		if v.IsActive {
			out = append(out, v)
		}
	}
	return out
}

func (s *Store) VoucherByCode(code string) (model.Voucher, error) {
	c := &s.vouchers
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, v := range c.items {
		if v.Code == code {
			return v, nil
		}
	}
	return model.Voucher{}, ErrVoucherNotFound
}

func (s *Store) AddVoucher(v model.Voucher) error {
	if err := checkDiscount(v); err != nil {
		return err
	}

	c := &s.vouchers
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.items {
		if existing.Code == v.Code {
			return ErrVoucherExists
		}
	}
	c.items = append(c.items, v)
	c.persist()
	return nil
}

func (s *Store) UpdateVoucher(v model.Voucher) error {
	if err := checkDiscount(v); err != nil {
		return err
	}

	c := &s.vouchers
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Code == v.Code {
			c.items[i] = v
			c.persist()
			return nil
		}
	}
	return ErrVoucherNotFound
}

func (s *Store) DeleteVoucher(code string) error {
	c := &s.vouchers
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Code == code {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return nil
		}
	}
	return ErrVoucherNotFound
}

// ValidateVoucher gates a code for a user: it must exist, be active, and not
// appear in the user's redeemed list. The validator reads only; redemption
// is recorded separately at checkout via RedeemVoucher.
func (s *Store) ValidateVoucher(code, email string) (model.Voucher, error) {
	voucher, err := s.VoucherByCode(code)
	if err != nil || !voucher.IsActive {
		return model.Voucher{}, ErrVoucherInvalid
	}

	for _, u := range s.users.snapshot() {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		for _, used := range u.RedeemedVouchers {
			if used == code {
				return model.Voucher{}, ErrVoucherInvalid
			}
		}
		return voucher, nil
	}
	return model.Voucher{}, ErrVoucherInvalid
}
