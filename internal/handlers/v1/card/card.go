package card

import (
	"time"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/service"
)

// Card is the API response model for a credit card.
// It is used only for responses, not for request bodies.
type Card struct {
	ID             string `json:"id" doc:"Card UUID"`
	Name           string `json:"name" doc:"Display name of the card"`
	Bank           string `json:"bank" doc:"Issuing bank"`
	Network        string `json:"network" doc:"Card network, e.g. VISA"`
	CreditLimit    string `json:"creditLimit" doc:"Decimal credit limit"`
	AvailableLimit string `json:"availableLimit" doc:"Decimal remaining limit"`
	DueDay         int    `json:"dueDay" doc:"Day of month the invoice is due"`
	PayDay         int    `json:"payDay" doc:"Closing day of the billing cycle"`
	CreatedAt      string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(c service.Card) Card {
	return Card{
		ID:             c.ID.String(),
		Name:           c.Name,
		Bank:           c.Bank,
		Network:        c.Network,
		CreditLimit:    c.CreditLimit.String(),
		AvailableLimit: c.AvailableLimit.String(),
		DueDay:         c.DueDay,
		PayDay:         c.PayDay,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}
