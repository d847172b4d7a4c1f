package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/order-ledger/internal/adminsite"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc, db
}

func mustEnforce(t *testing.T, svc *Service, role, entity, action string) bool {
	t.Helper()
	allow, err := svc.EnforceRole(role, entity, action)
	if err != nil {
		t.Fatalf("enforce %s %s %s failed: %v", role, entity, action, err)
	}
	return allow
}

func TestEnforceRoleWithGrantedPolicy(t *testing.T) {
	svc, _ := setupAuthzServiceTest(t)
	if _, err := svc.GrantRolePolicy("ops", "order", "VIEW"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}
	if !mustEnforce(t, svc, "ops", "Order", "view") {
		t.Fatalf("expected allow=true")
	}
	if mustEnforce(t, svc, "ops", "order", "delete") {
		t.Fatalf("expected allow=false")
	}
	if mustEnforce(t, svc, "ops", "payment", "view") {
		t.Fatalf("expected allow=false for other entity")
	}
}

func TestSeedFromRegistryKeepsHistoryReadonly(t *testing.T) {
	svc, _ := setupAuthzServiceTest(t)
	registry := adminsite.NewDefaultRegistry()
	if err := svc.SeedFromRegistry(registry, BuiltinRoleSeeds("staff")); err != nil {
		t.Fatalf("seed registry failed: %v", err)
	}

	for _, action := range []string{"view", "add", "change", "delete"} {
		if !mustEnforce(t, svc, "staff", "order", action) {
			t.Fatalf("staff should be allowed to %s orders", action)
		}
	}
	if !mustEnforce(t, svc, "staff", "order_status_history", "view") {
		t.Fatalf("staff should view status history")
	}
	for _, action := range []string{"add", "change", "delete"} {
		if mustEnforce(t, svc, "staff", "order_status_history", action) {
			t.Fatalf("status history must reject %s", action)
		}
	}

	if !mustEnforce(t, svc, ReadonlyAuditorRole, "refund", "view") {
		t.Fatalf("auditor should view refunds")
	}
	if mustEnforce(t, svc, ReadonlyAuditorRole, "refund", "change") {
		t.Fatalf("auditor should not change refunds")
	}
}

func TestSeedFromRegistryRevokesStaleGrants(t *testing.T) {
	svc, _ := setupAuthzServiceTest(t)
	if _, err := svc.GrantRolePolicy("staff", "order_status_history", "delete"); err != nil {
		t.Fatalf("grant stale policy failed: %v", err)
	}
	if !mustEnforce(t, svc, "staff", "order_status_history", "delete") {
		t.Fatalf("stale grant should be effective before seeding")
	}
	if err := svc.SeedFromRegistry(adminsite.NewDefaultRegistry(), BuiltinRoleSeeds("staff")); err != nil {
		t.Fatalf("seed registry failed: %v", err)
	}
	if mustEnforce(t, svc, "staff", "order_status_history", "delete") {
		t.Fatalf("stale history delete grant should be revoked")
	}
}

func TestSeedFromRegistryIsIdempotentAndPersisted(t *testing.T) {
	svc, db := setupAuthzServiceTest(t)
	registry := adminsite.NewDefaultRegistry()
	seeds := BuiltinRoleSeeds("staff")
	if err := svc.SeedFromRegistry(registry, seeds); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	first, err := svc.GetRolePolicies("staff")
	if err != nil {
		t.Fatalf("get policies failed: %v", err)
	}
	if err := svc.SeedFromRegistry(registry, seeds); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	second, err := svc.GetRolePolicies("staff")
	if err != nil {
		t.Fatalf("get policies failed: %v", err)
	}
	if len(first) != len(second) || len(first) != 21 {
		t.Fatalf("expected 21 stable policies, first=%d second=%d", len(first), len(second))
	}

	reloaded, err := NewService(db)
	if err != nil {
		t.Fatalf("reload authz service failed: %v", err)
	}
	if !mustEnforce(t, reloaded, "staff", "payment", "change") {
		t.Fatalf("policies should survive reload")
	}

	roles, err := svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	if len(roles) != 2 || roles[0] != "role:readonly_auditor" || roles[1] != "role:staff" {
		t.Fatalf("unexpected roles: %v", roles)
	}
}

func TestNormalizeRole(t *testing.T) {
	role, err := NormalizeRole(" order staff ")
	if err != nil || role != "role:order_staff" {
		t.Fatalf("unexpected role: %q err=%v", role, err)
	}
	if _, err := NormalizeRole("role:"); err == nil {
		t.Fatalf("expected empty role error")
	}

	svc, _ := setupAuthzServiceTest(t)
	if _, err := svc.EnsureRole(roleAnchor); err == nil {
		t.Fatalf("expected reserved role error")
	}
}

func TestReadonlyAuditorGrantsAreViewOnly(t *testing.T) {
	svc, _ := setupAuthzServiceTest(t)
	if err := svc.SeedFromRegistry(adminsite.NewDefaultRegistry(), BuiltinRoleSeeds("staff")); err != nil {
		t.Fatalf("seed registry failed: %v", err)
	}
	grants, err := svc.GetRolePolicies(ReadonlyAuditorRole)
	if err != nil {
		t.Fatalf("get policies failed: %v", err)
	}
	if len(grants) != 6 {
		t.Fatalf("expected one view grant per entity, got %d", len(grants))
	}
	for _, grant := range grants {
		if grant.Role != "role:readonly_auditor" || grant.Action != "view" {
			t.Fatalf("unexpected grant: %+v", grant)
		}
	}
	if grants[0].Entity > grants[len(grants)-1].Entity {
		t.Fatalf("grants should be sorted by entity: %+v", grants)
	}
}

func TestNilServiceIsUnavailable(t *testing.T) {
	var svc *Service
	if _, err := svc.EnforceRole("staff", "order", "view"); err != ErrUnavailable {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
