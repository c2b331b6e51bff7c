package billing

import (
	"fmt"
	"time"
)

// BillingPeriod identifies one statement cycle for a card.
type BillingPeriod struct {
	Month time.Month
	Year  int
}

// String serializes the period as "MM/YYYY".
func (p BillingPeriod) String() string {
	return fmt.Sprintf("%02d/%04d", int(p.Month), p.Year)
}

// AddMonths returns the period advanced by n months, rolling the year as needed.
func (p BillingPeriod) AddMonths(n int) BillingPeriod {
	t := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return BillingPeriod{Month: t.Month(), Year: t.Year()}
}

// ParsePeriod parses an "MM/YYYY" label.
func ParsePeriod(s string) (BillingPeriod, error) {
	var month, year int
	if _, err := fmt.Sscanf(s, "%d/%d", &month, &year); err != nil {
		return BillingPeriod{}, fmt.Errorf("%w: malformed billing period %q", ErrInvalidArgument, s)
	}
	if month < 1 || month > 12 || year < 1 {
		return BillingPeriod{}, fmt.Errorf("%w: malformed billing period %q", ErrInvalidArgument, s)
	}
	return BillingPeriod{Month: time.Month(month), Year: year}, nil
}

// ScheduleInstallments assigns each of n installments to a billing period.
//
// The card's statement closes on payDay of the purchase month. A purchase
// strictly before the closing date bills its first installment in the
// purchase month; a purchase on or after it rolls two months ahead, because
// it lands on the cycle that closes the following month and is billed the
// month after that. Subsequent installments advance one month each.
//
// A payDay past the end of the purchase month rolls the closing date into
// the next month (time.Date normalization), so such purchases always fall
// before the cutoff.
func ScheduleInstallments(purchaseDate time.Time, payDay int, installments int) ([]BillingPeriod, error) {
	if installments < 1 {
		return nil, fmt.Errorf("%w: installments must be at least 1, got %d", ErrInvalidArgument, installments)
	}
	if payDay < 1 || payDay > 31 {
		return nil, fmt.Errorf("%w: pay day must be within 1..31, got %d", ErrInvalidArgument, payDay)
	}

	day := time.Date(purchaseDate.Year(), purchaseDate.Month(), purchaseDate.Day(), 0, 0, 0, 0, time.UTC)
	closing := time.Date(purchaseDate.Year(), purchaseDate.Month(), payDay, 0, 0, 0, 0, time.UTC)

	first := BillingPeriod{Month: purchaseDate.Month(), Year: purchaseDate.Year()}
	if !day.Before(closing) {
		first = first.AddMonths(2)
	}

	periods := make([]BillingPeriod, installments)
	for i := range periods {
		periods[i] = first.AddMonths(i)
	}
	return periods, nil
}
