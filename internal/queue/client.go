package queue

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/order-ledger/internal/config"

	"github.com/hibiken/asynq"
)

// DefaultQueue 状态流水核对任务所在队列
const DefaultQueue = "default"

const (
	defaultConcurrency = 5
	reconcileMaxRetry  = 5
	// 延后执行，等待写入事务提交
	reconcileDelay = 2 * time.Second
)

// Client 任务投递端；队列未启用时所有投递为空操作
type Client struct {
	inner *asynq.Client
}

// NewClient 按配置创建投递端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{}, nil
	}
	return &Client{inner: asynq.NewClient(redisOpt(cfg))}, nil
}

// Enabled 队列是否可用
func (c *Client) Enabled() bool {
	return c != nil && c.inner != nil
}

// Close 关闭底层连接
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.inner.Close()
}

// EnqueueOrderHistoryReconcile 投递状态流水核对任务
// 同一订单同一目标状态只保留一个待执行任务，重复投递视为成功
func (c *Client) EnqueueOrderHistoryReconcile(payload OrderHistoryReconcilePayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewOrderHistoryReconcileTask(payload)
	if err != nil {
		return err
	}
	options := []asynq.Option{
		asynq.Queue(DefaultQueue),
		asynq.MaxRetry(reconcileMaxRetry),
		asynq.ProcessIn(reconcileDelay),
		asynq.TaskID(fmt.Sprintf("%s:%d:%s", TaskOrderHistoryReconcile, payload.OrderID, strings.TrimSpace(payload.Status))),
	}
	_, err = c.inner.Enqueue(task, append(options, opts...)...)
	if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
		return nil
	}
	return err
}

// BuildServerConfig 消费端连接与并发配置
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	server := asynq.Config{
		Concurrency: defaultConcurrency,
		Queues:      map[string]int{DefaultQueue: 1},
	}
	if cfg != nil {
		if cfg.Concurrency > 0 {
			server.Concurrency = cfg.Concurrency
		}
		if len(cfg.Queues) > 0 {
			server.Queues = cfg.Queues
		}
	}
	return redisOpt(cfg), server
}

func redisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	opt := asynq.RedisClientOpt{Addr: "127.0.0.1:6379"}
	if cfg == nil {
		return opt
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	opt.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	opt.Password = cfg.Password
	opt.DB = cfg.DB
	return opt
}
