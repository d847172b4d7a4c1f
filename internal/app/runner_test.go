package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/order-ledger/internal/config"
)

type fakeService struct {
	name     string
	startErr error
	block    bool

	mu      sync.Mutex
	stopped bool
}

func (s *fakeService) Name() string { return s.name }

func (s *fakeService) Start(ctx context.Context) error {
	if s.startErr != nil {
		return s.startErr
	}
	if s.block {
		<-ctx.Done()
	}
	return nil
}

func (s *fakeService) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	return nil
}

func (s *fakeService) wasStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

func TestRunnerStopsAllServicesOnFailure(t *testing.T) {
	failing := &fakeService{name: "http", startErr: errors.New("bind failed")}
	blocking := &fakeService{name: "history_audit", block: true}

	err := NewRunner(failing, blocking).Run(context.Background(), time.Second, nil)
	if err == nil || err.Error() != "bind failed" {
		t.Fatalf("expected start error, got %v", err)
	}
	if !failing.wasStopped() || !blocking.wasStopped() {
		t.Fatalf("every service should be stopped")
	}
}

func TestRunnerCancelledContextIsClean(t *testing.T) {
	blocking := &fakeService{name: "worker", block: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewRunner(blocking).Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("cancelled run should return nil, got %v", err)
	}
	if !blocking.wasStopped() {
		t.Fatalf("service should be stopped")
	}
}

func TestRunnerRequiresServices(t *testing.T) {
	if err := NewRunner().Run(context.Background(), time.Second, nil); !errors.Is(err, ErrNoServices) {
		t.Fatalf("empty runner should fail")
	}
}

type recordingService struct {
	name  string
	order *[]string
	mu    *sync.Mutex
}

func (s recordingService) Name() string { return s.name }

func (s recordingService) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (s recordingService) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.order = append(*s.order, s.name)
	return nil
}

func TestRunnerStopsInReverseOrder(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)
	runner := NewRunner(
		recordingService{name: "http", order: &order, mu: &mu},
		recordingService{name: "worker", order: &order, mu: &mu},
		recordingService{name: "history_audit", order: &order, mu: &mu},
	)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := runner.Run(ctx, time.Second, nil); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("deadline should be reported, got %v", err)
	}
	want := []string{"history_audit", "worker", "http"}
	if len(order) != len(want) {
		t.Fatalf("stop order want %v got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("stop order want %v got %v", want, order)
		}
	}
}

func TestValidateModeAndListenAddr(t *testing.T) {
	for _, mode := range []string{ModeAll, ModeAPI, ModeWorker} {
		if err := ValidateMode(mode); err != nil {
			t.Fatalf("mode %s should be valid: %v", mode, err)
		}
	}
	if err := ValidateMode("cron"); err == nil {
		t.Fatalf("unknown mode should be rejected")
	}
	if got := normalizeOptions(Options{Mode: " API "}).Mode; got != ModeAPI {
		t.Fatalf("mode should be normalized, got %q", got)
	}
	if got := ListenAddr(config.ServerConfig{Host: "127.0.0.1"}); got != "127.0.0.1:8080" {
		t.Fatalf("unexpected listen addr %s", got)
	}
}
