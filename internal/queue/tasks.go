package queue

import (
	"encoding/json"
	"fmt"

	"github.com/order-ledger/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderHistoryReconcile 订单状态流水核对任务
	TaskOrderHistoryReconcile = constants.TaskOrderHistoryReconcile
)

// OrderHistoryReconcilePayload 状态流水核对任务载荷
type OrderHistoryReconcilePayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status,omitempty"`
}

// NewOrderHistoryReconcileTask 创建状态流水核对任务
func NewOrderHistoryReconcileTask(payload OrderHistoryReconcilePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderHistoryReconcile, body), nil
}

// ParseOrderHistoryReconcilePayload 解析状态流水核对任务载荷
func ParseOrderHistoryReconcilePayload(task *asynq.Task) (OrderHistoryReconcilePayload, error) {
	var payload OrderHistoryReconcilePayload
	if task == nil {
		return payload, fmt.Errorf("task is nil")
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, err
	}
	if payload.OrderID == 0 {
		return payload, fmt.Errorf("order_id is required")
	}
	return payload, nil
}
