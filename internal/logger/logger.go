package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 文件输出默认值
const (
	defaultDir        = "logs"
	defaultFilename   = "app.log"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 7
	defaultMaxAgeDays = 30
)

// Options 日志输出配置
type Options struct {
	Level      string // 为空时 debug 模式取 debug，其余取 info
	Dir        string
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Console    bool // 文件输出时同时打到标准输出
}

// L 全局日志实例，Init 之前为 nil
var L *zap.Logger

var (
	stdoutOnce   sync.Once
	stdoutLogger *zap.Logger
)

// Init 初始化全局日志并替换 zap 全局实例
func Init(mode string, options Options) *zap.Logger {
	L = New(mode, options)
	zap.ReplaceGlobals(L)
	return L
}

// New 按运行模式创建日志实例
// debug 模式只输出控制台；其余模式写 JSON 文件，文件不可写时回退到标准输出
func New(mode string, options Options) *zap.Logger {
	level := zap.NewAtomicLevelAt(resolveLevel(mode, options.Level))
	encoding := encoderConfig()

	if isDebugMode(mode) {
		return build(zapcore.NewCore(zapcore.NewConsoleEncoder(encoding), zapcore.AddSync(os.Stdout), level))
	}

	sink, err := rotatingFile(options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file unavailable, writing to stdout: %v\n", err)
		return build(zapcore.NewCore(zapcore.NewJSONEncoder(encoding), zapcore.AddSync(os.Stdout), level))
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoding), sink, level)
	if options.Console {
		core = zapcore.NewTee(core,
			zapcore.NewCore(zapcore.NewConsoleEncoder(encoding), zapcore.AddSync(os.Stdout), level))
	}
	return build(core)
}

func build(core zapcore.Core) *zap.Logger {
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.MillisDurationEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	return cfg
}

func isDebugMode(mode string) bool {
	return strings.EqualFold(strings.TrimSpace(mode), "debug")
}

// resolveLevel 显式级别优先，无法解析时按模式推断
func resolveLevel(mode, raw string) zapcore.Level {
	if raw = strings.ToLower(strings.TrimSpace(raw)); raw != "" {
		var level zapcore.Level
		if level.UnmarshalText([]byte(raw)) == nil {
			return level
		}
	}
	if isDebugMode(mode) {
		return zap.DebugLevel
	}
	return zap.InfoLevel
}

// S 返回 SugaredLogger；未初始化时使用标准输出实例
func S() *zap.SugaredLogger {
	if L != nil {
		return L.Sugar()
	}
	stdoutOnce.Do(func() {
		stdoutLogger = build(zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig()),
			zapcore.AddSync(os.Stdout),
			zap.NewAtomicLevelAt(zap.InfoLevel),
		))
	})
	return stdoutLogger.Sugar()
}

// StdLogger 兼容标准库 log 的实例，供启动阶段的致命错误输出
func StdLogger() *log.Logger {
	return zap.NewStdLog(S().Desugar())
}

// Named 带组件名的 SugaredLogger
func Named(component string) *zap.SugaredLogger {
	return S().Named(component)
}

// Sync 刷新缓冲日志
func Sync() {
	if L != nil {
		_ = L.Sync()
	}
}

func Debugw(message string, kv ...interface{}) { S().Debugw(message, kv...) }

func Infow(message string, kv ...interface{}) { S().Infow(message, kv...) }

func Warnw(message string, kv ...interface{}) { S().Warnw(message, kv...) }

func Errorw(message string, kv ...interface{}) { S().Errorw(message, kv...) }

func rotatingFile(options Options) (zapcore.WriteSyncer, error) {
	path, err := resolveLogFilePath(options)
	if err != nil {
		return nil, err
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    positiveOr(options.MaxSizeMB, defaultMaxSizeMB),
		MaxBackups: positiveOr(options.MaxBackups, defaultMaxBackups),
		MaxAge:     positiveOr(options.MaxAgeDays, defaultMaxAgeDays),
		Compress:   options.Compress,
	}), nil
}

// resolveLogFilePath 目录为空时使用工作目录下的 logs，并确认文件可写
func resolveLogFilePath(options Options) (string, error) {
	dir := strings.TrimSpace(options.Dir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve workdir failed: %w", err)
		}
		dir = filepath.Join(wd, defaultDir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create log dir failed: %w", err)
	}
	name := strings.TrimSpace(options.Filename)
	if name == "" {
		name = defaultFilename
	}
	path := filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open log file failed: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close log file failed: %w", err)
	}
	return path, nil
}

func positiveOr(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
