package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Config holds every setting the service consumes. It is built once in main
// and passed down by reference; business logic never reads the environment.
type Config struct {
	Port        string
	DatabaseURL string

	// Google Sheets service account
	GoogleServiceAccountEmail string
	GooglePrivateKey          string
	GoogleSheetID             string

	// SMTP notification channel
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string
	MailTo   string

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		Port:                      getEnv("PORT", "8080"),
		DatabaseURL:               getEnv("DATABASE_URL", ""),
		GoogleServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
		GooglePrivateKey:          unescapeNewlines(getEnv("GOOGLE_PRIVATE_KEY", "")),
		GoogleSheetID:             getEnv("GOOGLE_SHEET_ID", ""),
		SMTPHost:                  getEnv("SMTP_HOST", ""),
		SMTPPort:                  getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:                  getEnv("SMTP_USER", ""),
		SMTPPass:                  getEnv("SMTP_PASS", ""),
		MailFrom:                  getEnv("MAIL_FROM", ""),
		MailTo:                    getEnv("SMTP_TO_EMAIL", ""),
		CORSAllowedOrigins:        getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	// The deployed form sends notifications from the SMTP account itself.
	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUser
	}

	return cfg
}

// Validate reports every required key that is missing so a misconfigured
// deploy fails at startup instead of silently skipping a channel.
func (c *Config) Validate() error {
	var missing []string

	required := map[string]string{
		"DATABASE_URL":                 c.DatabaseURL,
		"GOOGLE_SERVICE_ACCOUNT_EMAIL": c.GoogleServiceAccountEmail,
		"GOOGLE_PRIVATE_KEY":           c.GooglePrivateKey,
		"GOOGLE_SHEET_ID":              c.GoogleSheetID,
		"SMTP_HOST":                    c.SMTPHost,
		"SMTP_USER":                    c.SMTPUser,
		"SMTP_PASS":                    c.SMTPPass,
		"SMTP_TO_EMAIL":                c.MailTo,
	}
	for key, val := range required {
		if strings.TrimSpace(val) == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("config: missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Private keys pasted into env files usually arrive with literal \n
// sequences instead of real line breaks.
func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
