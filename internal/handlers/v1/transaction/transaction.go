package transaction

import (
	"time"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/service"
)

// Transaction is the API response model for a purchase.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID                 string   `json:"id" doc:"Transaction UUID"`
	CardID             string   `json:"cardID" doc:"Card UUID"`
	CategoryID         string   `json:"categoryID" doc:"Category UUID"`
	DependentID        string   `json:"dependentID,omitempty" doc:"Dependent UUID, absent for the user's own purchases"`
	Name               string   `json:"name" doc:"Name of the purchase"`
	Description        string   `json:"description,omitempty" doc:"Free-form description"`
	Amount             string   `json:"amount" doc:"Decimal total amount"`
	PurchaseDate       string   `json:"purchaseDate" doc:"RFC3339 purchase date"`
	Installments       int      `json:"installments" doc:"Number of installments"`
	InstallmentValues  []string `json:"installmentValues" doc:"Decimal amount billed per installment"`
	InstallmentPeriods []string `json:"installmentPeriods" doc:"MM/YYYY label per installment"`
	CreatedAt          string   `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(tx service.Transaction) Transaction {
	values := make([]string, len(tx.InstallmentValues))
	for i, v := range tx.InstallmentValues {
		values[i] = v.StringFixed(2)
	}

	out := Transaction{
		ID:                 tx.ID.String(),
		CardID:             tx.CardID.String(),
		CategoryID:         tx.CategoryID.String(),
		Name:               tx.Name,
		Description:        tx.Description,
		Amount:             tx.Amount.StringFixed(2),
		PurchaseDate:       tx.PurchaseDate.Format(time.RFC3339),
		Installments:       tx.Installments,
		InstallmentValues:  values,
		InstallmentPeriods: tx.InstallmentPeriods,
		CreatedAt:          tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.DependentID != nil {
		out.DependentID = tx.DependentID.String()
	}
	return out
}
