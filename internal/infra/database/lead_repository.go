package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/coderash112/Daily-Payouts-BPO/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Create inserts the lead as a single row. The generated ID is only written
// back onto the lead after the insert succeeds, so a failed insert leaves
// no trace on either side.
func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	id := uuid.New().String()

	query := `
		INSERT INTO leads (id, company_name, city, seats, contact_name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		id,
		lead.CompanyName,
		lead.City,
		lead.Seats,
		lead.ContactName,
		lead.Email,
		lead.Phone,
		lead.CreatedAt,
	)
	if err != nil {
		return err
	}

	lead.ID = id
	return nil
}
