package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicetrails/go-shop-api/internal/model"
)

func addVoucher(t *testing.T, s *Store, code string, active bool) {
	t.Helper()
	require.NoError(t, s.AddVoucher(model.Voucher{
		Code:          code,
		DiscountType:  model.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
		IsActive:      active,
	}))
}

func TestAddVoucher_DuplicateCode(t *testing.T) {
	s := newTestStore(t)
	addVoucher(t, s, "WELCOME10", true)

	err := s.AddVoucher(model.Voucher{
		Code:          "WELCOME10",
		DiscountType:  model.DiscountFixed,
		DiscountValue: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, ErrVoucherExists)
	assert.Len(t, s.Vouchers(), 1)
}

func TestAddVoucher_DiscountBounds(t *testing.T) {
	s := newTestStore(t)

	err := s.AddVoucher(model.Voucher{
		Code:          "TOOBIG",
		DiscountType:  model.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(150),
	})
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	err = s.AddVoucher(model.Voucher{
		Code:          "NEGATIVE",
		DiscountType:  model.DiscountFixed,
		DiscountValue: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	// A fixed voucher above 100 is fine; the ceiling only binds percentages.
	err = s.AddVoucher(model.Voucher{
		Code:          "BIGFIXED",
		DiscountType:  model.DiscountFixed,
		DiscountValue: decimal.NewFromInt(150),
	})
	assert.NoError(t, err)
}

func TestUpdateVoucher(t *testing.T) {
	s := newTestStore(t)
	addVoucher(t, s, "WELCOME10", true)

	updated := model.Voucher{
		Code:          "WELCOME10",
		DiscountType:  model.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(25),
		IsActive:      false,
	}
	require.NoError(t, s.UpdateVoucher(updated))

	v, err := s.VoucherByCode("WELCOME10")
	require.NoError(t, err)
	assert.True(t, v.DiscountValue.Equal(decimal.NewFromInt(25)))
	assert.False(t, v.IsActive)

	assert.ErrorIs(t, s.UpdateVoucher(model.Voucher{Code: "MISSING"}), ErrVoucherNotFound)
}

func TestActiveVouchers(t *testing.T) {
	s := newTestStore(t)
	addVoucher(t, s, "LIVE", true)
	addVoucher(t, s, "DEAD", false)

	active := s.ActiveVouchers()
	require.Len(t, active, 1)
	assert.Equal(t, "LIVE", active[0].Code)
}

func TestDeleteVoucher(t *testing.T) {
	s := newTestStore(t)
	addVoucher(t, s, "WELCOME10", true)

	require.NoError(t, s.DeleteVoucher("WELCOME10"))
	_, err := s.VoucherByCode("WELCOME10")
	assert.ErrorIs(t, err, ErrVoucherNotFound)
	assert.ErrorIs(t, s.DeleteVoucher("WELCOME10"), ErrVoucherNotFound)
}

func TestValidateVoucher(t *testing.T) {
	s := newTestStore(t)
	user := addUser(t, s, "a@example.com")
	addVoucher(t, s, "LIVE", true)
	addVoucher(t, s, "DEAD", false)

	v, err := s.ValidateVoucher("LIVE", user.Email)
	require.NoError(t, err)
	assert.Equal(t, "LIVE", v.Code)

	_, err = s.ValidateVoucher("MISSING", user.Email)
	assert.ErrorIs(t, err, ErrVoucherInvalid)

	_, err = s.ValidateVoucher("DEAD", user.Email)
	assert.ErrorIs(t, err, ErrVoucherInvalid)

	_, err = s.ValidateVoucher("LIVE", "nobody@example.com")
	assert.ErrorIs(t, err, ErrVoucherInvalid)
}

func TestValidateVoucher_AfterRedemption(t *testing.T) {
	s := newTestStore(t)
	user := addUser(t, s, "a@example.com")
	addVoucher(t, s, "ONCE", true)

	require.NoError(t, s.RedeemVoucher(user.Email, "ONCE"))
	_, err := s.ValidateVoucher("ONCE", user.Email)
	assert.ErrorIs(t, err, ErrVoucherInvalid)

	// Case differences on the email must not reopen the voucher.
	_, err = s.ValidateVoucher("ONCE", "A@Example.COM")
	assert.ErrorIs(t, err, ErrVoucherInvalid)
}
