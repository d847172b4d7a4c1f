package worker

import (
	"context"
	"errors"
	"time"

	"github.com/order-ledger/internal/logger"
	"github.com/order-ledger/internal/models"
	"github.com/order-ledger/internal/provider"
	"github.com/order-ledger/internal/queue"
	"github.com/order-ledger/internal/service"

	"github.com/hibiken/asynq"
)

// HistoryReconciler 状态流水核对能力
type HistoryReconciler interface {
	ReconcileStatusHistory(ctx context.Context, orderID uint) (*models.OrderStatusHistory, error)
	ReconcileRecentlyUpdated(ctx context.Context, since time.Time, limit int) (int, error)
}

// Consumer 异步任务消费者
type Consumer struct {
	reconciler HistoryReconciler
	stats      *Stats
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container, stats *Stats) *Consumer {
	var reconciler HistoryReconciler
	if c != nil && c.OrderService != nil {
		reconciler = c.OrderService
	}
	return NewConsumerWith(reconciler, stats)
}

// NewConsumerWith 使用指定核对实现创建消费者
func NewConsumerWith(reconciler HistoryReconciler, stats *Stats) *Consumer {
	if stats == nil {
		stats = NewStats()
	}
	return &Consumer{reconciler: reconciler, stats: stats}
}

// Stats 返回消费者计数
func (c *Consumer) Stats() *Stats {
	if c == nil {
		return nil
	}
	return c.stats
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderHistoryReconcile, c.handleOrderHistoryReconcile)
}

func (c *Consumer) handleOrderHistoryReconcile(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_history_reconcile_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseOrderHistoryReconcilePayload(task)
	if err != nil {
		// 载荷非法，不重试
		logger.Warnw("worker_order_history_reconcile_payload_invalid", "error", err)
		c.stats.Failed.Inc()
		return nil
	}
	if c.reconciler == nil {
		logger.Warnw("worker_order_history_reconcile_skip_service_nil", "order_id", payload.OrderID)
		return nil
	}
	c.stats.Processed.Inc()

	repaired, err := c.reconciler.ReconcileStatusHistory(ctx, payload.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			logger.Debugw("worker_order_history_reconcile_skip_order_not_found", "order_id", payload.OrderID)
			return nil
		}
		c.stats.Failed.Inc()
		logger.Warnw("worker_order_history_reconcile_failed",
			"order_id", payload.OrderID,
			"status", payload.Status,
			"error", err,
		)
		return err
	}
	if repaired != nil {
		c.stats.Repaired.Inc()
	}
	return nil
}
