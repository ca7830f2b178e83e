package payroll

import (
	"errors"
	"testing"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"15000.00", "Fifteen Thousand Rupees Only"},
		{"18000", "Eighteen Thousand Rupees Only"},
		{"20500", "Twenty Thousand Five Hundred Rupees Only"},
		{"7", "Seven Rupees Only"},
	}
	for _, tc := range cases {
		got, err := AmountInWords(dec(tc.amount))
		if err != nil {
			t.Fatalf("AmountInWords(%s): %v", tc.amount, err)
		}
		if got != tc.want {
			t.Fatalf("AmountInWords(%s) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestAmountInWordsZero(t *testing.T) {
	got, err := AmountInWords(dec("0"))
	if err != nil {
		t.Fatalf("AmountInWords(0): %v", err)
	}
	if got != "Zero Rupees Only" {
		t.Fatalf("AmountInWords(0) = %q", got)
	}
}

func TestAmountInWordsRejectsNegative(t *testing.T) {
	if _, err := AmountInWords(dec("-1")); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestAmountInWordsRejectsOverflow(t *testing.T) {
	if _, err := AmountInWords(dec("3000000000")); !errors.Is(err, ErrAmountTooLarge) {
		t.Fatalf("expected ErrAmountTooLarge, got %v", err)
	}
	if got, err := AmountInWords(dec("2147483647")); err != nil || got == "" {
		t.Fatalf("max in-range amount should convert, got %q err %v", got, err)
	}
}

func TestAmountInWordsIgnoresFraction(t *testing.T) {
	got, err := AmountInWords(dec("15000.99"))
	if err != nil {
		t.Fatalf("AmountInWords: %v", err)
	}
	if got != "Fifteen Thousand Rupees Only" {
		t.Fatalf("expected whole-rupee words, got %q", got)
	}
}
