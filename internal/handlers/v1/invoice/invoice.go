package invoice

import (
	"time"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/service"
)

// Invoice is the API response model for a monthly invoice.
// It is used only for responses, not for request bodies.
type Invoice struct {
	ID          string `json:"id" doc:"Invoice UUID"`
	CardID      string `json:"cardID" doc:"Card UUID"`
	Month       int    `json:"month" doc:"Billing month, 1..12"`
	Year        int    `json:"year" doc:"Billing year"`
	TotalAmount string `json:"totalAmount" doc:"Decimal sum of installments billed this period"`
	PaidAmount  string `json:"paidAmount" doc:"Decimal amount paid so far"`
	DueDate     string `json:"dueDate" doc:"RFC3339 due date"`
	Status      string `json:"status" enum:"PENDING,PAID,OVERDUE" doc:"Invoice status"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(inv service.Invoice) Invoice {
	return Invoice{
		ID:          inv.ID.String(),
		CardID:      inv.CardID.String(),
		Month:       inv.Month,
		Year:        inv.Year,
		TotalAmount: inv.TotalAmount.StringFixed(2),
		PaidAmount:  inv.PaidAmount.StringFixed(2),
		DueDate:     inv.DueDate.Format(time.RFC3339),
		Status:      inv.Status,
		CreatedAt:   inv.CreatedAt.Format(time.RFC3339),
	}
}
