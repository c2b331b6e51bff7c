package billing

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// InvoiceKey groups installment amounts into one invoice.
type InvoiceKey struct {
	CardID uuid.UUID
	UserID uuid.UUID
	Month  time.Month
	Year   int
}

// Entry is the slice of a transaction the aggregator needs. PayDay comes
// from the owning card so periods can be re-derived during a batch rebuild.
type Entry struct {
	CardID       uuid.UUID
	UserID       uuid.UUID
	PurchaseDate time.Time
	PayDay       int
	Installments int
	Amount       decimal.Decimal
	Values       []decimal.Decimal // optional explicit per-installment values
}

// Aggregate re-derives every entry's billing periods through the scheduler
// and accumulates per-invoice totals. An entry that fails to schedule is
// reported through onError and skipped; the remaining entries still
// accumulate, so one bad row never aborts a rebuild. Running Aggregate twice
// over the same entries yields identical totals.
func Aggregate(entries []Entry, onError func(Entry, error)) map[InvoiceKey]decimal.Decimal {
	totals := make(map[InvoiceKey]decimal.Decimal)
	for _, entry := range entries {
		periods, err := ScheduleInstallments(entry.PurchaseDate, entry.PayDay, entry.Installments)
		if err != nil {
			if onError != nil {
				onError(entry, err)
			}
			continue
		}

		for i, period := range periods {
			key := InvoiceKey{
				CardID: entry.CardID,
				UserID: entry.UserID,
				Month:  period.Month,
				Year:   period.Year,
			}
			totals[key] = totals[key].Add(entry.installmentValue(i))
		}
	}
	return totals
}

// installmentValue returns the amount billed for installment i. Explicit
// values win; otherwise the amount is split the same way Allocate splits it,
// with the last installment absorbing the truncation remainder.
func (e Entry) installmentValue(i int) decimal.Decimal {
	if i < len(e.Values) {
		return e.Values[i]
	}

	count := decimal.NewFromInt(int64(e.Installments))
	base := e.Amount.Div(count).Truncate(minorUnits)
	if i == e.Installments-1 {
		return e.Amount.Sub(base.Mul(count.Sub(decimal.NewFromInt(1))))
	}
	return base
}
