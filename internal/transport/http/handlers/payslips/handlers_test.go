package paysliphandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"payslip/internal/domain/payslip"
)

type stubSender struct {
	report payslip.Report
	err    error
}

func (s *stubSender) SendAll(_ context.Context) (payslip.Report, error) {
	return s.report, s.err
}

func send(t *testing.T, sender *stubSender) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	NewHandler(sender).RegisterRoutes(r)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/send-payslips", nil))
	return rr
}

func TestSendAllSuccess(t *testing.T) {
	rr := send(t, &stubSender{report: payslip.Report{
		Processed: 2,
		Sent:      []string{"EMP-1", "EMP-2"},
	}})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["message"] != "All payslips sent successfully" {
		t.Fatalf("unexpected message %q", resp["message"])
	}
}

func TestSendAllPartialFailureListsIDs(t *testing.T) {
	rr := send(t, &stubSender{report: payslip.Report{
		Processed: 3,
		Sent:      []string{"EMP-1"},
		Failed: []payslip.Failure{
			{EmployeeID: "EMP-2", Err: errors.New("smtp refused")},
			{EmployeeID: "EMP-3", Err: errors.New("render failed")},
		},
	}})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp["error"], "EMP-2, EMP-3") {
		t.Fatalf("error %q does not list failed employees", resp["error"])
	}
}

func TestSendAllStoreUnavailable(t *testing.T) {
	rr := send(t, &stubSender{err: errors.New("list employees: connection refused")})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] == "" {
		t.Fatalf("expected error message, got empty body %q", rr.Body.String())
	}
}
