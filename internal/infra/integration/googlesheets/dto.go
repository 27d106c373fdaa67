package googlesheets

import "fmt"

// ClientConfig wires the service-account identity to the target sheet.
// TokenURL and BaseURL default to the Google endpoints and only change in
// tests.
type ClientConfig struct {
	ServiceAccountEmail string
	PrivateKeyPEM       string
	SpreadsheetID       string
	TokenURL            string
	BaseURL             string
}

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int    `json:"expires_in"`
	TokenType        string `json:"token_type"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type appendRequest struct {
	Values [][]any `json:"values"`
}

// CredentialError means the token exchange failed: either the endpoint
// rejected the assertion or the exchange could not complete at all.
type CredentialError struct {
	Code        string
	Description string
	Err         error
}

func (e *CredentialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("googlesheets: token exchange failed: %v", e.Err)
	}
	return fmt.Sprintf("googlesheets: token endpoint rejected assertion: %s - %s", e.Code, e.Description)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// SheetAppendError means the append call itself failed after a token was
// obtained. Body carries the upstream response verbatim.
type SheetAppendError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *SheetAppendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("googlesheets: append request failed: %v", e.Err)
	}
	return fmt.Sprintf("googlesheets: append rejected (status %d): %s", e.StatusCode, e.Body)
}

func (e *SheetAppendError) Unwrap() error { return e.Err }
