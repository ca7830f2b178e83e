package shared

import (
	"net/http"
	"strings"
	"time"

	"payslip/internal/domain/payroll"
	"payslip/internal/transport/http/api"
)

// Validator collects field problems and reports them as the single
// message string the API contract uses for client errors.
type Validator struct {
	issues []string
}

func NewValidator() *Validator {
	return &Validator{issues: make([]string, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil || strings.TrimSpace(reason) == "" {
		return
	}
	v.issues = append(v.issues, field+" "+reason)
}

func (v *Validator) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

// LineItems checks one earnings/deductions list: every row needs a label
// and a non-negative amount. Negative amounts are rejected here so the
// calculator never has to clamp individual items.
func (v *Validator) LineItems(field string, items []payroll.LineItem) {
	for _, item := range items {
		if strings.TrimSpace(item.Label) == "" {
			v.Add(field, "rows must have a label")
			break
		}
	}
	for _, item := range items {
		if item.Amount.IsNegative() {
			v.Add(field, "amounts must not be negative")
			break
		}
	}
}

func (v *Validator) Date(field, raw string) (time.Time, bool) {
	parsed, err := ParseDate(strings.TrimSpace(raw))
	if err != nil {
		v.Add(field, "must be an RFC3339 or YYYY-MM-DD date")
		return time.Time{}, false
	}
	return parsed, true
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

// Reject writes a 400 with the joined issues and reports whether the
// request was rejected.
func (v *Validator) Reject(w http.ResponseWriter) bool {
	if !v.HasIssues() {
		return false
	}
	api.Fail(w, http.StatusBadRequest, strings.Join(v.issues, "; "))
	return true
}

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}
