package email

import (
	"context"
	"testing"

	"payslip/internal/platform/config"
)

func configWithEmail(enabled bool) config.Config {
	cfg := config.Config{EmailEnabled: enabled}
	if enabled {
		cfg.SMTPHost = "smtp.example.com"
		cfg.SMTPPort = 587
	}
	return cfg
}

func TestNoopMailerAcceptsAnyMessage(t *testing.T) {
	mailer := New(configWithEmail(false))
	err := mailer.Send(context.Background(), Message{To: "asha@example.com"})
	if err != nil {
		t.Fatalf("noop send: %v", err)
	}
}

func TestSMTPMailerRejectsEmptyRecipient(t *testing.T) {
	mailer := New(configWithEmail(true))
	if err := mailer.Send(context.Background(), Message{From: "a@b.c"}); err == nil {
		t.Fatal("expected error for empty recipient")
	}
}
