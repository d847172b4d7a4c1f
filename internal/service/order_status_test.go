package service

import (
	"testing"
	"time"

	"github.com/order-ledger/internal/models"
)

func TestPlanStatusHistory(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	pending := "pending"
	shipped := "shipped"

	cases := []struct {
		name     string
		previous *string
		next     string
		want     []string
	}{
		{name: "creation", previous: nil, next: "pending", want: []string{"pending"}},
		{name: "creation with explicit status", previous: nil, next: "processing", want: []string{"processing"}},
		{name: "changed", previous: &pending, next: "processing", want: []string{"processing"}},
		{name: "backwards transition", previous: &shipped, next: "pending", want: []string{"pending"}},
		{name: "same status", previous: &shipped, next: "shipped", want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := PlanStatusHistory(7, tc.previous, tc.next, now)
			if len(rows) != len(tc.want) {
				t.Fatalf("expected %d rows, got %d", len(tc.want), len(rows))
			}
			for i, row := range rows {
				if row.Status != tc.want[i] || row.OrderID != 7 || !row.ChangedAt.Equal(now) {
					t.Fatalf("unexpected row: %+v", row)
				}
				if row.ID != 0 {
					t.Fatalf("planned row should not carry an id: %+v", row)
				}
			}
		})
	}
}

func TestNeedsStatusReconcile(t *testing.T) {
	if !needsStatusReconcile(nil, "pending") {
		t.Fatalf("missing history should need reconcile")
	}
	if needsStatusReconcile(&models.OrderStatusHistory{Status: "pending"}, "pending") {
		t.Fatalf("matching history should not need reconcile")
	}
	if !needsStatusReconcile(&models.OrderStatusHistory{Status: "pending"}, "shipped") {
		t.Fatalf("stale history should need reconcile")
	}
}
