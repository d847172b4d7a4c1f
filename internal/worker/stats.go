package worker

import "go.uber.org/atomic"

// Stats 后台任务计数
type Stats struct {
	Processed *atomic.Int64 // 已处理的核对任务
	Repaired  *atomic.Int64 // 补记的流水条数
	Failed    *atomic.Int64 // 失败次数（任务与巡检）
	SweepRuns *atomic.Int64 // 巡检执行轮次
}

// NewStats 创建计数器
func NewStats() *Stats {
	return &Stats{
		Processed: atomic.NewInt64(0),
		Repaired:  atomic.NewInt64(0),
		Failed:    atomic.NewInt64(0),
		SweepRuns: atomic.NewInt64(0),
	}
}

// Snapshot 计数快照
type Snapshot struct {
	Processed int64 `json:"processed"`
	Repaired  int64 `json:"repaired"`
	Failed    int64 `json:"failed"`
	SweepRuns int64 `json:"sweep_runs"`
}

// Snapshot 读取当前计数
func (s *Stats) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	return Snapshot{
		Processed: s.Processed.Load(),
		Repaired:  s.Repaired.Load(),
		Failed:    s.Failed.Load(),
		SweepRuns: s.SweepRuns.Load(),
	}
}
