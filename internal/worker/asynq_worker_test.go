package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/order-ledger/internal/config"
	"github.com/order-ledger/internal/models"
	"github.com/order-ledger/internal/queue"
	"github.com/order-ledger/internal/service"

	"github.com/hibiken/asynq"
)

type stubReconciler struct {
	mu        sync.Mutex
	repair    map[uint]bool
	err       error
	sweepErr  error
	swept     int
	calls     []uint
	sweepArgs []time.Time
}

func (s *stubReconciler) ReconcileStatusHistory(ctx context.Context, orderID uint) (*models.OrderStatusHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, orderID)
	if s.err != nil {
		return nil, s.err
	}
	if s.repair[orderID] {
		return &models.OrderStatusHistory{OrderID: orderID, Status: "shipped"}, nil
	}
	return nil, nil
}

func (s *stubReconciler) ReconcileRecentlyUpdated(ctx context.Context, since time.Time, limit int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepArgs = append(s.sweepArgs, since)
	return s.swept, s.sweepErr
}

func reconcileTask(t *testing.T, orderID uint) *asynq.Task {
	t.Helper()
	task, err := queue.NewOrderHistoryReconcileTask(queue.OrderHistoryReconcilePayload{OrderID: orderID, Status: "shipped"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	return task
}

func TestHandleOrderHistoryReconcileCountsRepairs(t *testing.T) {
	stub := &stubReconciler{repair: map[uint]bool{7: true}}
	consumer := NewConsumerWith(stub, nil)

	if err := consumer.handleOrderHistoryReconcile(context.Background(), reconcileTask(t, 7)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := consumer.handleOrderHistoryReconcile(context.Background(), reconcileTask(t, 8)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := consumer.Stats().Snapshot()
	if snap.Processed != 2 || snap.Repaired != 1 || snap.Failed != 0 {
		t.Fatalf("unexpected stats: %+v", snap)
	}
	if len(stub.calls) != 2 || stub.calls[0] != 7 || stub.calls[1] != 8 {
		t.Fatalf("unexpected reconcile calls: %v", stub.calls)
	}
}

func TestHandleOrderHistoryReconcileErrors(t *testing.T) {
	notFound := NewConsumerWith(&stubReconciler{err: service.ErrOrderNotFound}, nil)
	if err := notFound.handleOrderHistoryReconcile(context.Background(), reconcileTask(t, 1)); err != nil {
		t.Fatalf("missing order should be skipped, got %v", err)
	}

	failing := NewConsumerWith(&stubReconciler{err: fmt.Errorf("%w: locked", service.ErrStatusHistoryAppendFailed)}, nil)
	err := failing.handleOrderHistoryReconcile(context.Background(), reconcileTask(t, 1))
	if !errors.Is(err, service.ErrStatusHistoryAppendFailed) {
		t.Fatalf("append failure should be returned for retry, got %v", err)
	}
	if failing.Stats().Snapshot().Failed != 1 {
		t.Fatalf("failure should be counted")
	}

	invalid := NewConsumerWith(&stubReconciler{}, nil)
	bad := asynq.NewTask(queue.TaskOrderHistoryReconcile, []byte(`{"order_id":0}`))
	if err := invalid.handleOrderHistoryReconcile(context.Background(), bad); err != nil {
		t.Fatalf("invalid payload should not be retried, got %v", err)
	}
	if invalid.Stats().Snapshot().Processed != 0 {
		t.Fatalf("invalid payload should not count as processed")
	}
}

func TestHistoryAuditRunOnceUsesLookback(t *testing.T) {
	stub := &stubReconciler{swept: 3}
	stats := NewStats()
	audit, err := NewHistoryAuditService(config.HistoryAuditConfig{
		IntervalSeconds: 60,
		LookbackMinutes: 15,
		BatchSize:       10,
	}, stub, stats)
	if err != nil {
		t.Fatalf("new audit service failed: %v", err)
	}
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	audit.now = func() time.Time { return fixed }

	if got := audit.RunOnce(context.Background()); got != 3 {
		t.Fatalf("expected 3 repaired, got %d", got)
	}
	if len(stub.sweepArgs) != 1 || !stub.sweepArgs[0].Equal(fixed.Add(-15*time.Minute)) {
		t.Fatalf("unexpected sweep window: %v", stub.sweepArgs)
	}
	snap := stats.Snapshot()
	if snap.SweepRuns != 1 || snap.Repaired != 3 {
		t.Fatalf("unexpected stats: %+v", snap)
	}

	stub.sweepErr = errors.New("db gone")
	audit.RunOnce(context.Background())
	if stats.Snapshot().Failed != 1 {
		t.Fatalf("sweep failure should be counted")
	}
}

func TestHistoryAuditStartStops(t *testing.T) {
	audit, err := NewHistoryAuditService(config.HistoryAuditConfig{}, &stubReconciler{}, nil)
	if err != nil {
		t.Fatalf("new audit service failed: %v", err)
	}
	if audit.interval != defaultAuditInterval || audit.lookback != defaultAuditLookback || audit.batchSize != defaultAuditBatch {
		t.Fatalf("defaults not applied: %v %v %d", audit.interval, audit.lookback, audit.batchSize)
	}

	done := make(chan error, 1)
	go func() { done <- audit.Start(context.Background()) }()
	if err := audit.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("start returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("audit loop did not stop")
	}
	if err := audit.Stop(context.Background()); err != nil {
		t.Fatalf("second stop should be a no-op: %v", err)
	}
}

func TestNewServiceRequiresQueue(t *testing.T) {
	if _, err := NewService(&config.QueueConfig{Enabled: false}, NewConsumerWith(nil, nil)); err == nil {
		t.Fatalf("disabled queue should be rejected")
	}
	if _, err := NewHistoryAuditService(config.HistoryAuditConfig{}, nil, nil); err == nil {
		t.Fatalf("nil reconciler should be rejected")
	}
}
