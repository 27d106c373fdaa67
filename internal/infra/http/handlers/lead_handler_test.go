package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderash112/Daily-Payouts-BPO/internal/entity"
	"github.com/coderash112/Daily-Payouts-BPO/internal/usecase"
)

type stubRepo struct {
	err   error
	calls int
}

func (s *stubRepo) Create(ctx context.Context, lead *entity.Lead) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	lead.ID = "lead-123"
	return nil
}

type stubSheets struct {
	err   error
	calls int
}

func (s *stubSheets) AppendLead(ctx context.Context, lead *entity.Lead) error {
	s.calls++
	return s.err
}

type stubEmail struct {
	err   error
	calls int
}

func (s *stubEmail) SendLeadNotification(ctx context.Context, lead *entity.Lead) error {
	s.calls++
	return s.err
}

func newHandler(repo *stubRepo, sheets *stubSheets, email *stubEmail) *LeadHandler {
	return NewLeadHandler(usecase.NewSubmitLeadUseCase(repo, sheets, email))
}

const validBody = `{
	"companyName": "Acme Outsourcing",
	"city": "Karachi",
	"seats": 25,
	"contactName": "Sara Khan",
	"email": "sara@acme.example",
	"phone": "+92 300 1234567"
}`

func postLead(t *testing.T, h *LeadHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestLeadHandlerSuccess(t *testing.T) {
	h := newHandler(&stubRepo{}, &stubSheets{}, &stubEmail{})

	rec := postLead(t, h, validBody)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "lead-123", resp["id"])
	assert.Equal(t, "Lead submitted successfully", resp["message"])

	// warnings is omitted entirely when both channels succeed
	_, present := resp["warnings"]
	assert.False(t, present)
}

func TestLeadHandlerSuccessWithWarnings(t *testing.T) {
	sheets := &stubSheets{err: errors.New("invalid_grant")}
	email := &stubEmail{err: errors.New("connection refused")}
	h := newHandler(&stubRepo{}, sheets, email)

	rec := postLead(t, h, validBody)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success  bool     `json:"success"`
		ID       string   `json:"id"`
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "lead-123", resp.ID)
	assert.Equal(t, []string{usecase.WarningSheets, usecase.WarningEmail}, resp.Warnings)
}

func TestLeadHandlerValidationFailure(t *testing.T) {
	repo := &stubRepo{}
	sheets := &stubSheets{}
	email := &stubEmail{}
	h := newHandler(repo, sheets, email)

	rec := postLead(t, h, `{"companyName": "Acme Outsourcing"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "city")

	assert.Zero(t, repo.calls)
	assert.Zero(t, sheets.calls)
	assert.Zero(t, email.calls)
}

func TestLeadHandlerPersistenceFailure(t *testing.T) {
	repo := &stubRepo{err: errors.New("insert failed")}
	sheets := &stubSheets{}
	email := &stubEmail{}
	h := newHandler(repo, sheets, email)

	rec := postLead(t, h, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
	_, present := resp["id"]
	assert.False(t, present)

	assert.Zero(t, sheets.calls)
	assert.Zero(t, email.calls)
}

func TestLeadHandlerInvalidJSON(t *testing.T) {
	h := newHandler(&stubRepo{}, &stubSheets{}, &stubEmail{})

	rec := postLead(t, h, `{"companyName":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadHandlerAcceptsStringSeats(t *testing.T) {
	h := newHandler(&stubRepo{}, &stubSheets{}, &stubEmail{})

	body := strings.Replace(validBody, `"seats": 25`, `"seats": "25"`, 1)
	rec := postLead(t, h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
}
