package service

import (
	"time"

	"github.com/order-ledger/internal/models"
)

// PlanStatusHistory 计算一次保存需要追加的状态流水
// previous 为 nil 表示订单首次落库；状态未变化时不追加
func PlanStatusHistory(orderID uint, previous *string, next string, changedAt time.Time) []models.OrderStatusHistory {
	if previous != nil && *previous == next {
		return nil
	}
	return []models.OrderStatusHistory{
		{OrderID: orderID, Status: next, ChangedAt: changedAt},
	}
}

// needsStatusReconcile 判断最新流水是否与订单当前状态不一致
func needsStatusReconcile(latest *models.OrderStatusHistory, current string) bool {
	if latest == nil {
		return true
	}
	return latest.Status != current
}
