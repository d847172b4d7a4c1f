package authz

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	policyTable = "casbin_rule"
	rolePrefix  = "role:"
	// roleAnchor 角色登记用的占位分组，ListRoles 依赖它枚举角色
	roleAnchor = "role:__anchor__"
)

// ErrUnavailable 授权服务未初始化
var ErrUnavailable = errors.New("authz service unavailable")

// 主体为后台角色，资源为注册表实体，动作为 view/add/change/delete
const ledgerRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && r.obj == p.obj && r.act == p.act
`

// Grant 角色在某个后台实体上的一条动作授权
type Grant struct {
	Role   string `json:"role"`
	Entity string `json:"entity"`
	Action string `json:"action"`
}

// Service 后台实体权限判定
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService 基于 casbin_rule 表加载策略
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("authz db is nil")
	}
	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", policyTable)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter failed: %w", err)
	}
	m, err := model.NewModelFromString(ledgerRBACModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model failed: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer failed: %w", err)
	}
	enforcer.EnableAutoSave(true)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy failed: %w", err)
	}
	return &Service{enforcer: enforcer}, nil
}

func (s *Service) ready() error {
	if s == nil || s.enforcer == nil {
		return ErrUnavailable
	}
	return nil
}

// EnforceRole 判定角色能否对实体执行动作
func (s *Service) EnforceRole(role, entity, action string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	subject, err := NormalizeRole(role)
	if err != nil {
		return false, err
	}
	return s.enforcer.Enforce(subject, NormalizeObject(entity), NormalizeAction(action))
}

// EnsureRole 登记角色，重复调用无副作用
func (s *Service) EnsureRole(role string) (string, error) {
	subject, err := NormalizeRole(role)
	if err != nil {
		return "", err
	}
	if err := s.ready(); err != nil {
		return "", err
	}
	if subject == roleAnchor {
		return "", fmt.Errorf("reserved role is not allowed")
	}
	if _, err := s.enforcer.AddNamedGroupingPolicy("g", subject, roleAnchor); err != nil {
		return "", fmt.Errorf("register role %s failed: %w", subject, err)
	}
	return subject, nil
}

// ListRoles 已登记的角色，按名称排序
func (s *Service) ListRoles() ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rules, err := s.enforcer.GetFilteredNamedGroupingPolicy("g", 1, roleAnchor)
	if err != nil {
		return nil, fmt.Errorf("list roles failed: %w", err)
	}
	roles := make([]string, 0, len(rules))
	for _, rule := range rules {
		if len(rule) > 0 && rule[0] != roleAnchor {
			roles = append(roles, rule[0])
		}
	}
	sort.Strings(roles)
	return roles, nil
}

// GrantRolePolicy 授予实体动作，返回是否新增
func (s *Service) GrantRolePolicy(role, entity, action string) (bool, error) {
	subject, err := s.EnsureRole(role)
	if err != nil {
		return false, err
	}
	act := NormalizeAction(action)
	if act == "" {
		return false, fmt.Errorf("action is required")
	}
	added, err := s.enforcer.AddPolicy(subject, NormalizeObject(entity), act)
	if err != nil {
		return false, fmt.Errorf("grant %s %s to %s failed: %w", entity, act, subject, err)
	}
	return added, nil
}

// RevokeRolePolicy 撤销实体动作，返回是否删除
func (s *Service) RevokeRolePolicy(role, entity, action string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	subject, err := NormalizeRole(role)
	if err != nil {
		return false, err
	}
	act := NormalizeAction(action)
	if act == "" {
		return false, fmt.Errorf("action is required")
	}
	removed, err := s.enforcer.RemovePolicy(subject, NormalizeObject(entity), act)
	if err != nil {
		return false, fmt.Errorf("revoke %s %s from %s failed: %w", entity, act, subject, err)
	}
	return removed, nil
}

// GetRolePolicies 角色持有的授权，按实体、动作排序
func (s *Service) GetRolePolicies(role string) ([]Grant, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	subject, err := NormalizeRole(role)
	if err != nil {
		return nil, err
	}
	rules, err := s.enforcer.GetFilteredPolicy(0, subject)
	if err != nil {
		return nil, fmt.Errorf("get role policies failed: %w", err)
	}
	grants := make([]Grant, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		grants = append(grants, Grant{
			Role:   rule[0],
			Entity: NormalizeObject(rule[1]),
			Action: NormalizeAction(rule[2]),
		})
	}
	sort.Slice(grants, func(i, j int) bool {
		if grants[i].Entity != grants[j].Entity {
			return grants[i].Entity < grants[j].Entity
		}
		return grants[i].Action < grants[j].Action
	})
	return grants, nil
}

// NormalizeRole 统一为 role: 前缀，空格替换为下划线
func NormalizeRole(role string) (string, error) {
	name := strings.ReplaceAll(strings.TrimSpace(role), " ", "_")
	name = strings.TrimPrefix(name, rolePrefix)
	if name == "" {
		return "", fmt.Errorf("role is required")
	}
	return rolePrefix + name, nil
}

// NormalizeObject 实体名小写
func NormalizeObject(entity string) string {
	return strings.ToLower(strings.TrimSpace(entity))
}

// NormalizeAction 动作名小写
func NormalizeAction(action string) string {
	return strings.ToLower(strings.TrimSpace(action))
}
