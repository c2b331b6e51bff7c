package actions

import (
	"context"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/card"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/invoice"
)

// RebuildInvoices walks every transaction, re-derives its billing periods
// from the purchase date and the owning card's pay day, and upserts the
// accumulated per (card, user, month, year) totals. Each run overwrites
// invoice totals, so rebuilding twice over an unchanged transaction set is a
// no-op. Rows that cannot be scheduled are logged and skipped; a failed
// upsert rolls back the whole run.
type RebuildInvoices struct {
	Logger *logrus.Logger

	// Upserted is set to the number of invoice keys written.
	Upserted int
}

func (a *RebuildInvoices) Perform(ctx context.Context, writer *storage.Writer) error {
	cards, err := writer.Card.ListAll(ctx)
	if err != nil {
		return err
	}
	cardsByID := make(map[uuid.UUID]*card.Card, len(cards))
	for _, c := range cards {
		cardsByID[c.ID] = c
	}

	transactions, err := writer.Transaction.ListAll(ctx)
	if err != nil {
		return err
	}

	entries := make([]billing.Entry, 0, len(transactions))
	for _, t := range transactions {
		owner, ok := cardsByID[t.CardID]
		if !ok {
			a.warn(logrus.Fields{"transactionID": t.ID, "cardID": t.CardID}, "RebuildInvoices.missing card")
			continue
		}

		values, err := decodeValues(t.InstallmentValues)
		if err != nil {
			a.warn(logrus.Fields{"transactionID": t.ID}, "RebuildInvoices.bad installment values")
			continue
		}

		entries = append(entries, billing.Entry{
			CardID:       t.CardID,
			UserID:       t.UserID,
			PurchaseDate: t.PurchaseDate,
			PayDay:       owner.PayDay,
			Installments: t.Installments,
			Amount:       t.Amount,
			Values:       values,
		})
	}

	totals := billing.Aggregate(entries, func(entry billing.Entry, err error) {
		a.warn(logrus.Fields{"cardID": entry.CardID, "error": err.Error()}, "RebuildInvoices.unschedulable entry")
	})

	if a.Logger != nil && a.Logger.IsLevelEnabled(logrus.DebugLevel) {
		a.Logger.Debug(spew.Sdump(totals))
	}

	for key, total := range totals {
		owner := cardsByID[key.CardID]
		dueDate := time.Date(key.Year, key.Month, owner.DueDay, 0, 0, 0, 0, time.UTC)

		err := writer.Invoice.Upsert(ctx, &invoice.InvoiceUpsert{
			CardID:      key.CardID,
			UserID:      key.UserID,
			Month:       int(key.Month),
			Year:        key.Year,
			TotalAmount: total,
			DueDate:     dueDate,
		})
		if err != nil {
			return err
		}
		a.Upserted++
	}

	return writer.Invoice.MarkOverdue(ctx, time.Now())
}

func (a *RebuildInvoices) warn(fields logrus.Fields, message string) {
	if a.Logger != nil {
		a.Logger.WithFields(fields).Warn(message)
	}
}

func decodeValues(encoded []string) ([]decimal.Decimal, error) {
	values := make([]decimal.Decimal, len(encoded))
	for i, raw := range encoded {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, err
		}
		values[i] = parsed
	}
	return values, nil
}
