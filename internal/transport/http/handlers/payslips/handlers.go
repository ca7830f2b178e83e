package paysliphandler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"payslip/internal/domain/payslip"
	"payslip/internal/transport/http/api"
)

// BatchSender is the slice of the delivery pipeline the handler needs.
type BatchSender interface {
	SendAll(ctx context.Context) (payslip.Report, error)
}

type Handler struct {
	Delivery BatchSender
}

func NewHandler(delivery BatchSender) *Handler {
	return &Handler{Delivery: delivery}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/send-payslips", h.handleSendAll)
}

func (h *Handler) handleSendAll(w http.ResponseWriter, r *http.Request) {
	report, err := h.Delivery.SendAll(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(report.Failed) > 0 {
		ids := make([]string, 0, len(report.Failed))
		for _, f := range report.Failed {
			ids = append(ids, f.EmployeeID)
		}
		api.Fail(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to send payslips for: %s", strings.Join(ids, ", ")))
		return
	}
	api.JSON(w, http.StatusOK, map[string]any{
		"message": "All payslips sent successfully",
	})
}
