package employeehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"payslip/internal/domain/employee"
	"payslip/internal/domain/payroll"
	"payslip/internal/transport/http/api"
	"payslip/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
}

func NewHandler(service *employee.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees", h.handleList)
	r.Get("/employee/{employeeID}", h.handleGet)
	r.Post("/add-employee", h.handleCreate)
	r.Put("/update-employee/{employeeID}", h.handleUpdate)
	r.Delete("/delete-employee/{employeeID}", h.handleDelete)
}

type employeePayload struct {
	EmployeeID     string             `json:"employeeId"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Designation    string             `json:"designation"`
	Month          string             `json:"month"`
	PayDate        string             `json:"payDate"`
	PaidDays       int                `json:"paidDays"`
	LOPDays        int                `json:"lopDays"`
	RemainingLeave int                `json:"remainingLeave"`
	LeavesTaken    int                `json:"leavesTaken"`
	Earnings       []payroll.LineItem `json:"earnings"`
	Deductions     []payroll.LineItem `json:"deductions"`
}

type employeePatchPayload struct {
	EmployeeID     *string             `json:"employeeId"`
	Name           *string             `json:"name"`
	Email          *string             `json:"email"`
	Designation    *string             `json:"designation"`
	Month          *string             `json:"month"`
	PayDate        *string             `json:"payDate"`
	PaidDays       *int                `json:"paidDays"`
	LOPDays        *int                `json:"lopDays"`
	RemainingLeave *int                `json:"remainingLeave"`
	LeavesTaken    *int                `json:"leavesTaken"`
	Earnings       *[]payroll.LineItem `json:"earnings"`
	Deductions     *[]payroll.LineItem `json:"deductions"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []employee.Record{}
	}
	api.JSON(w, http.StatusOK, records)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Service.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		failForError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, rec)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID)
	v.Required("name", payload.Name)
	v.Required("email", payload.Email)
	v.Required("month", payload.Month)
	if len(payload.Earnings) == 0 || len(payload.Deductions) == 0 {
		v.Add("earnings and deductions", "are required")
	}
	v.LineItems("earnings", payload.Earnings)
	v.LineItems("deductions", payload.Deductions)
	validateDays(v, payload.PaidDays, payload.LOPDays, payload.RemainingLeave, payload.LeavesTaken)
	payDate, _ := v.Date("payDate", payload.PayDate)
	if v.Reject(w) {
		return
	}

	rec := &employee.Record{
		EmployeeID:     payload.EmployeeID,
		Name:           payload.Name,
		Email:          payload.Email,
		Designation:    payload.Designation,
		Month:          payload.Month,
		PayDate:        payDate,
		PaidDays:       payload.PaidDays,
		LOPDays:        payload.LOPDays,
		RemainingLeave: payload.RemainingLeave,
		LeavesTaken:    payload.LeavesTaken,
		Earnings:       payload.Earnings,
		Deductions:     payload.Deductions,
	}
	created, err := h.Service.Create(r.Context(), rec)
	if err != nil {
		failForError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, map[string]any{
		"message":  "Employee added successfully with full payslip details",
		"employee": created,
	})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload employeePatchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	v := shared.NewValidator()
	patch := employee.Patch{
		EmployeeID:     payload.EmployeeID,
		Name:           payload.Name,
		Email:          payload.Email,
		Designation:    payload.Designation,
		Month:          payload.Month,
		PaidDays:       payload.PaidDays,
		LOPDays:        payload.LOPDays,
		RemainingLeave: payload.RemainingLeave,
		LeavesTaken:    payload.LeavesTaken,
	}
	if payload.PayDate != nil {
		if parsed, ok := v.Date("payDate", *payload.PayDate); ok {
			patch.PayDate = &parsed
		}
	}
	if payload.Earnings != nil {
		if len(*payload.Earnings) == 0 {
			v.Add("earnings", "must not be empty")
		}
		v.LineItems("earnings", *payload.Earnings)
		patch.Earnings = payload.Earnings
	}
	if payload.Deductions != nil {
		if len(*payload.Deductions) == 0 {
			v.Add("deductions", "must not be empty")
		}
		v.LineItems("deductions", *payload.Deductions)
		patch.Deductions = payload.Deductions
	}
	validateOptionalDays(v, payload.PaidDays, payload.LOPDays, payload.RemainingLeave, payload.LeavesTaken)
	if v.Reject(w) {
		return
	}

	updated, err := h.Service.Update(r.Context(), chi.URLParam(r, "employeeID"), patch)
	if err != nil {
		failForError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, map[string]any{
		"message":  "Employee updated successfully",
		"employee": updated,
	})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Service.Delete(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		failForError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, map[string]any{
		"message":  "Employee deleted successfully",
		"employee": deleted,
	})
}

func validateDays(v *shared.Validator, values ...int) {
	fields := []string{"paidDays", "lopDays", "remainingLeave", "leavesTaken"}
	for i, value := range values {
		if value < 0 {
			v.Add(fields[i], "must not be negative")
		}
	}
}

func validateOptionalDays(v *shared.Validator, values ...*int) {
	fields := []string{"paidDays", "lopDays", "remainingLeave", "leavesTaken"}
	for i, value := range values {
		if value != nil && *value < 0 {
			v.Add(fields[i], "must not be negative")
		}
	}
}

func failForError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "Employee not found")
	case errors.Is(err, employee.ErrImmutableID):
		api.Fail(w, http.StatusBadRequest, employee.ErrImmutableID.Error())
	default:
		api.Fail(w, http.StatusInternalServerError, err.Error())
	}
}
