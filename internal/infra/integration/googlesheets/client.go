package googlesheets

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/coderash112/Daily-Payouts-BPO/internal/entity"
)

const (
	defaultTokenURL = "https://oauth2.googleapis.com/token"
	defaultBaseURL  = "https://sheets.googleapis.com"

	spreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"
	jwtBearerGrant    = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	// Fixed target range; the append endpoint finds the first free row.
	appendRange = "A:G"

	assertionValidity = time.Hour

	// Layout of the first sheet column, matching the rows already there
	// (en-US locale timestamps).
	rowTimestampLayout = "1/2/2006, 3:04:05 PM"
)

// Client talks to the Sheets API on behalf of a service account. A fresh
// access token is minted for every append; nothing is cached across calls.
type Client struct {
	serviceAccountEmail string
	privateKey          *rsa.PrivateKey
	spreadsheetID       string
	tokenURL            string
	baseURL             string
	http                *http.Client
}

func NewClient(cfg ClientConfig) (*Client, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.PrivateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("googlesheets: invalid service account private key: %w", err)
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		serviceAccountEmail: cfg.ServiceAccountEmail,
		privateKey:          key,
		spreadsheetID:       cfg.SpreadsheetID,
		tokenURL:            tokenURL,
		baseURL:             baseURL,
		http:                &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// AccessToken signs a service-account assertion and exchanges it for a
// short-lived bearer token.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"iss":   c.serviceAccountEmail,
		"scope": spreadsheetsScope,
		"aud":   c.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionValidity).Unix(),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(c.privateKey)
	if err != nil {
		return "", &CredentialError{Err: fmt.Errorf("sign assertion: %w", err)}
	}

	form := url.Values{
		"grant_type": {jwtBearerGrant},
		"assertion":  {assertion},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &CredentialError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &CredentialError{Err: err}
	}
	defer resp.Body.Close()

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", &CredentialError{Err: fmt.Errorf("decode token response: %w", err)}
	}

	if token.Error != "" {
		return "", &CredentialError{Code: token.Error, Description: token.ErrorDescription}
	}
	if token.AccessToken == "" {
		return "", &CredentialError{Err: fmt.Errorf("token endpoint returned no access_token (status %d)", resp.StatusCode)}
	}

	return token.AccessToken, nil
}

// AppendLead writes the lead as one positional row:
// [timestamp, companyName, city, seats, contactName, email, phone].
func (c *Client) AppendLead(ctx context.Context, lead *entity.Lead) error {
	accessToken, err := c.AccessToken(ctx)
	if err != nil {
		return err
	}

	payload := appendRequest{
		Values: [][]any{{
			lead.CreatedAt.Format(rowTimestampLayout),
			lead.CompanyName,
			lead.City,
			lead.Seats,
			lead.ContactName,
			lead.Email,
			lead.Phone,
		}},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return &SheetAppendError{Err: fmt.Errorf("marshal row: %w", err)}
	}

	endpoint := fmt.Sprintf(
		"%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED",
		c.baseURL, c.spreadsheetID, appendRange,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return &SheetAppendError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &SheetAppendError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &SheetAppendError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}
