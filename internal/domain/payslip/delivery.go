package payslip

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"payslip/internal/domain/employee"
	"payslip/internal/platform/config"
	"payslip/internal/platform/email"
	"payslip/internal/platform/metrics"
)

const (
	mailSubject = "Your Monthly Payslip"
	mailBody    = "Hi %s,\n\nPlease find your payslip attached."
)

// DocumentRenderer renders one employee's payslip to a PDF byte stream.
type DocumentRenderer interface {
	Render(rec employee.Record) ([]byte, error)
}

// Delivery runs the batch pipeline: for each stored record, strictly in
// store order, render the payslip, email it as an attachment, and remove
// the scratch file whether or not the send succeeded.
//
// Failures are isolated per employee: one record's render or send error
// is recorded in the Report and the batch moves on. Each send runs
// under its own timeout so a stalled transmission cannot wedge the rest
// of the batch.
type Delivery struct {
	store       employee.StoreAPI
	renderer    DocumentRenderer
	mailer      email.Mailer
	from        string
	dir         string
	sendTimeout time.Duration
	collector   *metrics.Collector
}

func NewDelivery(store employee.StoreAPI, renderer DocumentRenderer, mailer email.Mailer, cfg config.Config, collector *metrics.Collector) *Delivery {
	return &Delivery{
		store:       store,
		renderer:    renderer,
		mailer:      mailer,
		from:        cfg.EmailFrom,
		dir:         cfg.PayslipDir,
		sendTimeout: cfg.SendTimeout,
		collector:   collector,
	}
}

type Failure struct {
	EmployeeID string
	Err        error
}

type Report struct {
	Processed int
	Sent      []string
	Failed    []Failure
}

// SendAll processes every stored record. The returned error is non-nil
// only when the batch could not start at all (the store list failed);
// per-employee outcomes live in the Report.
func (d *Delivery) SendAll(ctx context.Context) (Report, error) {
	records, err := d.store.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list employees: %w", err)
	}

	var report Report
	for _, rec := range records {
		report.Processed++
		if err := d.sendOne(ctx, rec); err != nil {
			slog.Warn("payslip delivery failed", "employeeId", rec.EmployeeID, "err", err)
			report.Failed = append(report.Failed, Failure{EmployeeID: rec.EmployeeID, Err: err})
			continue
		}
		slog.Info("payslip sent", "employeeId", rec.EmployeeID, "email", rec.Email)
		report.Sent = append(report.Sent, rec.EmployeeID)
	}
	return report, nil
}

func (d *Delivery) sendOne(ctx context.Context, rec employee.Record) error {
	doc, err := d.renderer.Render(rec)
	if err != nil {
		d.collector.RecordPayslipFailed()
		return fmt.Errorf("render: %w", err)
	}
	d.collector.RecordPayslipRendered()

	// Scratch copy lives only while the message is in flight; the
	// attachment is read back from it so what lands on disk is exactly
	// what is mailed.
	name := AttachmentName(rec)
	path := filepath.Join(d.dir, name)
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		d.collector.RecordPayslipFailed()
		return fmt.Errorf("write scratch file: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			slog.Warn("payslip scratch cleanup failed", "path", path, "err", err)
		}
	}()
	payload, err := os.ReadFile(path)
	if err != nil {
		d.collector.RecordPayslipFailed()
		return fmt.Errorf("read scratch file: %w", err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()
	msg := email.Message{
		From:    d.from,
		To:      rec.Email,
		Subject: mailSubject,
		Body:    fmt.Sprintf(mailBody, rec.Name),
		Attachments: []email.Attachment{{
			Filename:    name,
			ContentType: "application/pdf",
			Content:     payload,
		}},
	}
	if err := d.mailer.Send(sendCtx, msg); err != nil {
		d.collector.RecordPayslipFailed()
		return fmt.Errorf("send to %s: %w", rec.Email, err)
	}
	d.collector.RecordPayslipSent()
	return nil
}

// AttachmentName derives the payslip file name from the employee's ID
// and name, with runs of whitespace collapsed to underscores.
func AttachmentName(rec employee.Record) string {
	name := strings.Join(strings.Fields(rec.Name), "_")
	return fmt.Sprintf("%s_%s_Payslip.pdf", rec.EmployeeID, name)
}
