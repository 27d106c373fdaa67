package entity

import (
	"context"
	"time"
)

// Lead is the canonical intake submission. Once created it is append-only
// history: there is no update or delete lifecycle.
type Lead struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	City        string    `json:"city"`
	Seats       string    `json:"seats"`
	ContactName string    `json:"contactName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LeadRepositoryInterface interface {
	// Create inserts the lead and fills in its generated ID. The insert is
	// atomic: on error the lead was not recorded and ID stays empty.
	Create(ctx context.Context, lead *Lead) error
}
