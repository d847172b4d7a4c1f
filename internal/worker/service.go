package worker

import (
	"context"
	"errors"
	"sort"

	"github.com/order-ledger/internal/config"
	"github.com/order-ledger/internal/logger"
	"github.com/order-ledger/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 状态流水核对任务的消费服务
type Service struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
	queues   []string
}

// NewService 创建消费服务，队列未启用时返回错误
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	queues := make([]string, 0, len(serverCfg.Queues))
	for name := range serverCfg.Queues {
		queues = append(queues, name)
	}
	sort.Strings(queues)

	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		server:   asynq.NewServer(opt, serverCfg),
		mux:      mux,
		consumer: consumer,
		queues:   queues,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	return "worker"
}

// Start 阻塞消费任务，直到 Stop 被调用
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	logger.Infow("worker_consume_start", "queues", s.queues)
	return s.server.Run(s.mux)
}

// Stop 等待进行中的任务结束，超时后放弃等待
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	done := make(chan struct{})
	go func() {
		s.server.Shutdown()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	snapshot := s.consumer.Stats().Snapshot()
	logger.Infow("worker_consume_stopped",
		"processed", snapshot.Processed,
		"repaired", snapshot.Repaired,
		"failed", snapshot.Failed,
	)
	return nil
}
