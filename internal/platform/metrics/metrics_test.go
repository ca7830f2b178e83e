package metrics

import (
	"testing"
	"time"
)

func TestCollectorCounts(t *testing.T) {
	c := New()
	c.RecordRequest(200, 10*time.Millisecond)
	c.RecordRequest(500, 30*time.Millisecond)
	c.RecordPayslipRendered()
	c.RecordPayslipSent()
	c.RecordPayslipFailed()

	snap := c.Snapshot()
	if snap["requestsTotal"].(uint64) != 2 {
		t.Fatalf("expected 2 requests, got %v", snap["requestsTotal"])
	}
	if snap["errorsTotal"].(uint64) != 1 {
		t.Fatalf("expected 1 error, got %v", snap["errorsTotal"])
	}
	if snap["avgDurationMs"].(float64) != 20 {
		t.Fatalf("expected avg 20ms, got %v", snap["avgDurationMs"])
	}
	if snap["payslipsRendered"].(uint64) != 1 || snap["payslipsSent"].(uint64) != 1 || snap["payslipsFailed"].(uint64) != 1 {
		t.Fatalf("unexpected payslip counters: %v", snap)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.RecordRequest(200, time.Millisecond)
	c.RecordPayslipRendered()
	c.RecordPayslipSent()
	c.RecordPayslipFailed()
}
