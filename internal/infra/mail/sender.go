package mail

import (
	"bytes"
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/coderash112/Daily-Payouts-BPO/internal/entity"
)

const submittedAtLayout = "1/2/2006, 3:04:05 PM"

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// SendLeadNotification renders the lead notification and dispatches it to
// the operational inbox. gomail has no context support, so the send runs in
// its own goroutine and the context bounds how long we wait for it.
func (s *EmailSender) SendLeadNotification(ctx context.Context, lead *entity.Lead) error {
	body, err := renderLeadNotification(lead)
	if err != nil {
		return &NotifyError{Err: err}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("New Lead: %s - %s", lead.CompanyName, lead.City))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return &NotifyError{Err: err}
		}
		return nil
	case <-ctx.Done():
		return &NotifyError{Err: ctx.Err()}
	}
}

func renderLeadNotification(lead *entity.Lead) (string, error) {
	data := LeadNotificationData{
		CompanyName: lead.CompanyName,
		City:        lead.City,
		Seats:       lead.Seats,
		ContactName: lead.ContactName,
		Email:       lead.Email,
		Phone:       lead.Phone,
		SubmittedAt: lead.CreatedAt.Format(submittedAtLayout),
	}

	var body bytes.Buffer
	if err := leadNotificationTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("render lead notification template: %w", err)
	}
	return body.String(), nil
}
