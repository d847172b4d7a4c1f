package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/order-ledger/internal/config"
	"github.com/order-ledger/internal/logger"
)

const (
	defaultAuditInterval = 5 * time.Minute
	defaultAuditLookback = 30 * time.Minute
	defaultAuditBatch    = 200
)

// HistoryAuditService 定期巡检最近更新的订单，补记缺失的状态流水
type HistoryAuditService struct {
	reconciler HistoryReconciler
	stats      *Stats
	interval   time.Duration
	lookback   time.Duration
	batchSize  int
	now        func() time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewHistoryAuditService 创建巡检服务
func NewHistoryAuditService(cfg config.HistoryAuditConfig, reconciler HistoryReconciler, stats *Stats) (*HistoryAuditService, error) {
	if reconciler == nil {
		return nil, errors.New("history reconciler is nil")
	}
	if stats == nil {
		stats = NewStats()
	}
	interval := time.Duration(cfg.IntervalSeconds) * time.Second
	if interval <= 0 {
		interval = defaultAuditInterval
	}
	lookback := time.Duration(cfg.LookbackMinutes) * time.Minute
	if lookback <= 0 {
		lookback = defaultAuditLookback
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultAuditBatch
	}
	return &HistoryAuditService{
		reconciler: reconciler,
		stats:      stats,
		interval:   interval,
		lookback:   lookback,
		batchSize:  batchSize,
		now:        time.Now,
		stopCh:     make(chan struct{}),
	}, nil
}

// Name 服务名称
func (s *HistoryAuditService) Name() string {
	return "history_audit"
}

// Start 启动巡检循环，阻塞直到 ctx 取消或 Stop
func (s *HistoryAuditService) Start(ctx context.Context) error {
	if s == nil || s.reconciler == nil {
		return errors.New("history audit not initialized")
	}
	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// Stop 停止巡检
func (s *HistoryAuditService) Stop(ctx context.Context) error {
	if s == nil {
		return nil
	}
	s.stopOnce.Do(func() { close(s.stopCh) })
	return nil
}

// RunOnce 执行一轮巡检，返回补记条数
func (s *HistoryAuditService) RunOnce(ctx context.Context) int {
	s.stats.SweepRuns.Inc()
	since := s.now().Add(-s.lookback)
	repaired, err := s.reconciler.ReconcileRecentlyUpdated(ctx, since, s.batchSize)
	s.stats.Repaired.Add(int64(repaired))
	if err != nil {
		s.stats.Failed.Inc()
		logger.Warnw("worker_history_audit_failed",
			"since", since,
			"repaired", repaired,
			"error", err,
		)
		return repaired
	}
	if repaired > 0 {
		logger.Infow("worker_history_audit_repaired",
			"since", since,
			"repaired", repaired,
		)
	}
	return repaired
}
