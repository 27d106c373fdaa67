package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Seats accepts both wire representations ("25" and 25) and normalizes to
// the string form. No numeric range validation is performed.
type Seats string

func (s *Seats) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		*s = Seats(value)
	case json.Number:
		*s = Seats(value.String())
	case nil:
		*s = ""
	default:
		return fmt.Errorf("seats must be a string or a number")
	}
	return nil
}

type SubmitLeadInput struct {
	CompanyName string `json:"companyName"`
	City        string `json:"city"`
	Seats       Seats  `json:"seats"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

type SubmitLeadOutput struct {
	Success  bool     `json:"success"`
	ID       string   `json:"id"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}
