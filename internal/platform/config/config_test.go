package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Addr:               ":8080",
		DatabaseURL:        "postgres://localhost/payslip",
		Environment:        "test",
		SendTimeout:        30 * time.Second,
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 120,
	}
}

func TestValidateAcceptsMinimalConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRequiresDatabaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = " "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestValidateRequiresSMTPHostWhenEmailEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.EmailEnabled = true
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "SMTP_HOST") {
		t.Fatalf("expected SMTP_HOST error, got %v", err)
	}
}

func TestValidateRequiresCredentialsInProduction(t *testing.T) {
	cfg := validConfig()
	cfg.Environment = "production"
	cfg.EmailEnabled = true
	cfg.SMTPHost = "smtp.example.com"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "SMTP_PASSWORD") {
		t.Fatalf("expected SMTP_PASSWORD error, got %v", err)
	}
}

func TestValidateRejectsZeroSendTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.SendTimeout = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero SEND_TIMEOUT")
	}
}
