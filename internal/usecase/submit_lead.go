package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/coderash112/Daily-Payouts-BPO/internal/entity"
)

const DefaultBranchTimeout = 15 * time.Second

// Warning strings surfaced to the caller when an advisory channel fails.
const (
	WarningSheets = "Google Sheets sync failed"
	WarningEmail  = "Email notification failed"
)

func NewSubmitLeadUseCase(
	repo entity.LeadRepositoryInterface,
	sheets SheetAppender,
	email EmailService,
) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		Repo:          repo,
		Sheets:        sheets,
		Email:         email,
		BranchTimeout: DefaultBranchTimeout,
	}
}

// Execute runs the intake pipeline: validate, persist, then replicate the
// stored lead to the spreadsheet log and the notification inbox. Only
// validation and persistence can fail the request; the two replication
// channels are advisory and degrade to warnings.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	if verr := ValidateSubmitLeadInput(input); verr != nil {
		return nil, verr
	}

	lead := &entity.Lead{
		CompanyName: input.CompanyName,
		City:        input.City,
		Seats:       string(input.Seats),
		ContactName: input.ContactName,
		Email:       input.Email,
		Phone:       input.Phone,
		CreatedAt:   time.Now(),
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &PersistenceError{Err: err}
	}

	sheetsErr, emailErr := uc.replicate(ctx, lead)

	var warnings []string
	if sheetsErr != nil {
		log.Printf("lead %s: sheets sync failed: %v", lead.ID, sheetsErr)
		warnings = append(warnings, WarningSheets)
	}
	if emailErr != nil {
		log.Printf("lead %s: email notification failed: %v", lead.ID, emailErr)
		warnings = append(warnings, WarningEmail)
	}

	return &SubmitLeadOutput{
		Success:  true,
		ID:       lead.ID,
		Message:  "Lead submitted successfully",
		Warnings: warnings,
	}, nil
}

// replicate fans the stored lead out to both channels concurrently and waits
// for both to settle. Each branch gets its own timeout, detached from the
// request context so a client disconnect can no longer cancel it, and a
// panic in one branch becomes that branch's error instead of taking down
// the other.
func (uc *SubmitLeadUseCase) replicate(ctx context.Context, lead *entity.Lead) (sheetsErr, emailErr error) {
	timeout := uc.BranchTimeout
	if timeout <= 0 {
		timeout = DefaultBranchTimeout
	}
	fanCtx := context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				sheetsErr = fmt.Errorf("sheets branch panicked: %v", r)
			}
		}()
		branchCtx, cancel := context.WithTimeout(fanCtx, timeout)
		defer cancel()
		sheetsErr = uc.Sheets.AppendLead(branchCtx, lead)
	}()

	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				emailErr = fmt.Errorf("email branch panicked: %v", r)
			}
		}()
		branchCtx, cancel := context.WithTimeout(fanCtx, timeout)
		defer cancel()
		emailErr = uc.Email.SendLeadNotification(branchCtx, lead)
	}()

	wg.Wait()
	return sheetsErr, emailErr
}
