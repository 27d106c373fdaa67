package usecase

import (
	"context"
	"time"

	"github.com/coderash112/Daily-Payouts-BPO/internal/entity"
)

// SheetAppender replicates a stored lead into the spreadsheet log.
type SheetAppender interface {
	AppendLead(ctx context.Context, lead *entity.Lead) error
}

// EmailService notifies the operations inbox about a stored lead.
type EmailService interface {
	SendLeadNotification(ctx context.Context, lead *entity.Lead) error
}

type SubmitLeadUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Sheets SheetAppender
	Email  EmailService

	// BranchTimeout bounds each replication branch independently.
	// Zero means DefaultBranchTimeout.
	BranchTimeout time.Duration
}
