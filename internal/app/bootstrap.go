package app

import (
	"errors"

	"github.com/order-ledger/internal/config"
	"github.com/order-ledger/internal/logger"
	"github.com/order-ledger/internal/provider"
	"github.com/order-ledger/internal/router"
	"github.com/order-ledger/internal/worker"
)

// BuildRunnerWithContainer 基于已装配的容器构建服务运行器
func BuildRunnerWithContainer(cfg *config.Config, mode string, container *provider.Container) (*Runner, error) {
	if cfg == nil || container == nil {
		return nil, errors.New("config or container is nil")
	}
	if err := ValidateMode(mode); err != nil {
		return nil, err
	}

	var services []Service

	// 初始化 HTTP 服务
	if runsAPI(mode) {
		engine := router.SetupRouter(cfg, container)
		services = append(services, NewHTTPService(cfg.Server, engine))
	}

	// 初始化 Worker 服务（队列任务 + 状态流水巡检）
	if runsWorker(mode) {
		stats := worker.NewStats()
		if cfg.Queue.Enabled {
			consumer := worker.NewConsumer(container, stats)
			workerService, err := worker.NewService(&cfg.Queue, consumer)
			if err != nil {
				return nil, err
			}
			services = append(services, workerService)
		} else {
			logger.Infow("app_worker_queue_disabled")
		}
		if cfg.Order.HistoryAudit.Enabled {
			auditService, err := worker.NewHistoryAuditService(cfg.Order.HistoryAudit, container.OrderService, stats)
			if err != nil {
				return nil, err
			}
			services = append(services, auditService)
		}
	}

	// worker 模式下队列与巡检都关闭时没有可运行的服务
	if len(services) == 0 {
		return nil, ErrNoServices
	}

	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	if err := ValidateMode(opts.Mode); err != nil {
		return err
	}

	container := provider.NewContainer(opts.Config)
	defer container.Close()
	runner, err := BuildRunnerWithContainer(opts.Config, opts.Mode, container)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start",
		"addr", ListenAddr(opts.Config.Server),
		"mode", opts.Mode,
		"services", runner.Names(),
	)
	return RunWithOptions(runner, opts)
}
