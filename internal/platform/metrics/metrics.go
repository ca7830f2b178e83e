package metrics

import (
	"sync/atomic"
	"time"
)

// Collector tracks request and payslip-delivery counters. All methods
// are safe for concurrent use and safe on a nil receiver so callers can
// leave instrumentation unwired in tests.
type Collector struct {
	totalRequests    uint64
	errorRequests    uint64
	totalDurationMs  uint64
	payslipsRendered uint64
	payslipsSent     uint64
	payslipsFailed   uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) RecordRequest(status int, duration time.Duration) {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordPayslipRendered() {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.payslipsRendered, 1)
}

func (c *Collector) RecordPayslipSent() {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.payslipsSent, 1)
}

func (c *Collector) RecordPayslipFailed() {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.payslipsFailed, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":    total,
		"errorsTotal":      atomic.LoadUint64(&c.errorRequests),
		"avgDurationMs":    avg,
		"payslipsRendered": atomic.LoadUint64(&c.payslipsRendered),
		"payslipsSent":     atomic.LoadUint64(&c.payslipsSent),
		"payslipsFailed":   atomic.LoadUint64(&c.payslipsFailed),
	}
}
