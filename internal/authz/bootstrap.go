package authz

import (
	"fmt"

	"github.com/order-ledger/internal/adminsite"
	"github.com/order-ledger/internal/constants"
	"github.com/order-ledger/internal/logger"
)

// ReadonlyAuditorRole 只读审计角色
const ReadonlyAuditorRole = "readonly_auditor"

var adminActions = []string{
	constants.AdminActionView,
	constants.AdminActionAdd,
	constants.AdminActionChange,
	constants.AdminActionDelete,
}

// RoleSeed 预置角色定义；Actions 为空表示接受注册表允许的全部动作
type RoleSeed struct {
	Role    string
	Actions []string
}

// BuiltinRoleSeeds 系统预置角色矩阵
func BuiltinRoleSeeds(adminRole string) []RoleSeed {
	return []RoleSeed{
		{Role: adminRole},
		{Role: ReadonlyAuditorRole, Actions: []string{constants.AdminActionView}},
	}
}

func (seed RoleSeed) permits(action string) bool {
	if len(seed.Actions) == 0 {
		return true
	}
	for _, item := range seed.Actions {
		if NormalizeAction(item) == action {
			return true
		}
	}
	return false
}

// SeedFromRegistry 按注册表权限同步角色策略
// 注册表不允许的动作会被撤销，状态流水的写权限因此不会残留
func (s *Service) SeedFromRegistry(registry *adminsite.Registry, seeds []RoleSeed) error {
	if err := s.ready(); err != nil {
		return err
	}
	if registry == nil {
		return fmt.Errorf("admin registry is nil")
	}

	granted, revoked := 0, 0
	for _, seed := range seeds {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}
		for _, view := range registry.Views() {
			for _, action := range adminActions {
				if view.Allows(action) && seed.permits(action) {
					added, err := s.GrantRolePolicy(role, string(view.Entity), action)
					if err != nil {
						return err
					}
					if added {
						granted++
					}
					continue
				}
				removed, err := s.RevokeRolePolicy(role, string(view.Entity), action)
				if err != nil {
					return err
				}
				if removed {
					revoked++
				}
			}
		}
	}
	logger.Infow("authz_registry_seeded",
		"roles", len(seeds),
		"granted", granted,
		"revoked", revoked,
	)
	return nil
}
