package repositories

import (
	"testing"
	"time"
)

func TestNextFeeStatus(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending becomes paid with payment date", func(t *testing.T) {
		status, paymentDate := NextFeeStatus("Pending", now)
		if status != "Paid" {
			t.Fatalf("expected Paid, got %s", status)
		}
		if paymentDate == nil || !paymentDate.Equal(now) {
			t.Fatalf("expected payment date %v, got %v", now, paymentDate)
		}
	})

	t.Run("paid becomes pending with date cleared", func(t *testing.T) {
		status, paymentDate := NextFeeStatus("Paid", now)
		if status != "Pending" {
			t.Fatalf("expected Pending, got %s", status)
		}
		if paymentDate != nil {
			t.Fatalf("expected nil payment date, got %v", paymentDate)
		}
	})

	t.Run("double toggle returns to start", func(t *testing.T) {
		first, _ := NextFeeStatus("Pending", now)
		second, paymentDate := NextFeeStatus(first, now)
		if second != "Pending" || paymentDate != nil {
			t.Fatalf("expected Pending with nil date after double toggle, got %s %v", second, paymentDate)
		}
	})
}
