package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/coderash112/Daily-Payouts-BPO/internal/entity"
)

func newLead() *entity.Lead {
	return &entity.Lead{
		CompanyName: "Acme Outsourcing",
		City:        "Karachi",
		Seats:       "25",
		ContactName: "Sara Khan",
		Email:       "sara@acme.example",
		Phone:       "+92 300 1234567",
		CreatedAt:   time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestLeadRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	lead := newLead()

	mock.ExpectExec("INSERT INTO leads").
		WithArgs(
			sqlmock.AnyArg(), // generated uuid
			lead.CompanyName,
			lead.City,
			lead.Seats,
			lead.ContactName,
			lead.Email,
			lead.Phone,
			lead.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewLeadRepository(db)
	err = repo.Create(context.Background(), lead)

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepositoryCreateGeneratesDistinctIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO leads").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO leads").WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewLeadRepository(db)

	// Identical submissions are never deduplicated: each insert is a new row.
	first := newLead()
	second := newLead()
	assert.NoError(t, repo.Create(context.Background(), first))
	assert.NoError(t, repo.Create(context.Background(), second))

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestLeadRepositoryCreateFailureLeavesIDEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO leads").WillReturnError(errors.New("connection reset"))

	repo := NewLeadRepository(db)
	lead := newLead()
	err = repo.Create(context.Background(), lead)

	assert.Error(t, err)
	assert.Empty(t, lead.ID)
}
