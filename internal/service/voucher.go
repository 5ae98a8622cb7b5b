package service

import (
	"github.com/shopspring/decimal"

	"github.com/dicetrails/go-shop-api/internal/dto"
	"github.com/dicetrails/go-shop-api/internal/model"
	"github.com/dicetrails/go-shop-api/internal/store"
)

var oneHundred = decimal.NewFromInt(100)

type VoucherService struct {
	store *store.Store
}

func NewVoucherService(st *store.Store) *VoucherService {
	return &VoucherService{store: st}
}

func (s *VoucherService) ListAll() []model.Voucher {
	return s.store.Vouchers()
}

func (s *VoucherService) ListActive() []model.Voucher {
	return s.store.ActiveVouchers()
}

func (s *VoucherService) Add(req dto.VoucherRequest) error {
	return s.store.AddVoucher(toVoucher(req))
}

func (s *VoucherService) Update(req dto.VoucherRequest) error {
	return s.store.UpdateVoucher(toVoucher(req))
}

func (s *VoucherService) Delete(code string) error {
	return s.store.DeleteVoucher(code)
}

// Validate gates the code for the user and, when a total is supplied,
// reports the amount the voucher would take off.
func (s *VoucherService) Validate(req dto.ValidateVoucherRequest) (dto.ValidateVoucherResponse, error) {
	voucher, err := s.store.ValidateVoucher(req.Code, req.Email)
	if err != nil {
		return dto.ValidateVoucherResponse{}, err
	}
	return dto.ValidateVoucherResponse{
		Voucher:  voucher,
		Discount: ApplyDiscount(req.Total, voucher),
	}, nil
}

// ApplyDiscount computes the amount off a total: percentage vouchers take
// value% of the total, fixed vouchers take the value itself. The discount
// never exceeds the total.
func ApplyDiscount(total decimal.Decimal, v model.Voucher) decimal.Decimal {
	var off decimal.Decimal
	switch v.DiscountType {
	case model.DiscountPercentage:
		off = total.Mul(v.DiscountValue).Div(oneHundred)
	case model.DiscountFixed:
		off = v.DiscountValue
	}
	if off.GreaterThan(total) {
		off = total
	}
	return off.Round(2)
}

func toVoucher(req dto.VoucherRequest) model.Voucher {
	return model.Voucher{
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		IsActive:      req.IsActive,
		Description:   req.Description,
	}
}
