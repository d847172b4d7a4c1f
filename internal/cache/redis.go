package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/order-ledger/internal/config"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "ol"

// 进程级缓存连接；未启用时为 nil，所有读写退化为未命中
var (
	client    *redis.Client
	keyPrefix = defaultKeyPrefix
)

// InitRedis 按配置建立 Redis 连接，未启用时清空已有连接
func InitRedis(cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		return Close()
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	keyPrefix = strings.TrimSpace(cfg.Prefix)
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	client = redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return nil
}

// Enabled 缓存是否可用
func Enabled() bool {
	return client != nil
}

// Client 返回底层客户端，供限流等组件复用
func Client() *redis.Client {
	return client
}

// Ping 检查连通性
func Ping(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Ping(ctx).Err()
}

// Close 关闭连接
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}

func getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}
	raw, err := client.Get(ctx, buildKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, buildKey(key), payload, ttl).Err()
}

func del(ctx context.Context, key string) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, buildKey(key)).Err()
}

func buildKey(key string) string {
	if key = strings.TrimSpace(key); key == "" {
		return keyPrefix
	}
	return keyPrefix + ":" + key
}
