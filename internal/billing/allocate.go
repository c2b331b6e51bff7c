package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// minorUnits is the currency precision installment values are truncated to.
const minorUnits = 2

// Allocate splits amount into per-installment values whose sum is exactly
// amount. Without explicit values every installment gets amount/installments
// truncated to the currency's minor unit, and the last installment absorbs
// the truncation remainder so the series always reconciles. Explicit values
// are validated and returned as a copy.
func Allocate(amount decimal.Decimal, installments int, explicit []decimal.Decimal) ([]decimal.Decimal, error) {
	if installments < 1 {
		return nil, fmt.Errorf("%w: installments must be at least 1, got %d", ErrInvalidArgument, installments)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidArgument, amount)
	}

	if explicit != nil {
		if err := Validate(amount, installments, explicit); err != nil {
			return nil, err
		}
		values := make([]decimal.Decimal, len(explicit))
		copy(values, explicit)
		return values, nil
	}

	count := decimal.NewFromInt(int64(installments))
	base := amount.Div(count).Truncate(minorUnits)

	values := make([]decimal.Decimal, installments)
	for i := range values {
		values[i] = base
	}
	values[installments-1] = amount.Sub(base.Mul(count.Sub(decimal.NewFromInt(1))))
	return values, nil
}

// Validate checks caller-supplied installment values: exactly installments
// entries, every entry positive, and the sum equal to amount.
func Validate(amount decimal.Decimal, installments int, values []decimal.Decimal) error {
	if len(values) != installments {
		return fmt.Errorf("%w: expected %d values, got %d", ErrInvalidInstallments, installments, len(values))
	}

	sum := decimal.Zero
	for i, v := range values {
		if !v.IsPositive() {
			return fmt.Errorf("%w: value %s at position %d is not positive", ErrInvalidInstallments, v, i)
		}
		sum = sum.Add(v)
	}

	if !sum.Equal(amount) {
		return fmt.Errorf("%w: values sum to %s, amount is %s", ErrInvalidInstallments, sum, amount)
	}
	return nil
}
