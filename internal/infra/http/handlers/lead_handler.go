package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/coderash112/Daily-Payouts-BPO/internal/infra/http/middleware"
	"github.com/coderash112/Daily-Payouts-BPO/internal/usecase"
)

type LeadHandler struct {
	SubmitLeadUC *usecase.SubmitLeadUseCase
}

func NewLeadHandler(uc *usecase.SubmitLeadUseCase) *LeadHandler {
	return &LeadHandler{SubmitLeadUC: uc}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handle maps each error kind explicitly: validation to 400, everything
// else surfacing from the use case (persistence) to 500. Replication
// failures never reach here; they arrive as warnings on the output.
func (h *LeadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	output, err := h.SubmitLeadUC.Execute(r.Context(), input)
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			middleware.RecordLeadSubmitted("rejected")
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
			return
		}

		log.Printf("lead submission failed: %v", err)
		middleware.RecordLeadSubmitted("failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save lead"})
		return
	}

	middleware.RecordLeadSubmitted("accepted")
	for _, warning := range output.Warnings {
		switch warning {
		case usecase.WarningSheets:
			middleware.RecordIntegrationError("google_sheets")
		case usecase.WarningEmail:
			middleware.RecordIntegrationError("smtp")
		}
	}

	writeJSON(w, http.StatusOK, output)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
