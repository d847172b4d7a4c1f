package repository

import (
	"testing"
)

func TestContainsConditionSQLite(t *testing.T) {
	condition, args := containsCondition("sqlite", []string{"orders.order_id", " ", "users.username"}, "ada")
	want := "orders.order_id LIKE ? ESCAPE '!' OR users.username LIKE ? ESCAPE '!'"
	if condition != want {
		t.Fatalf("condition mismatch, want %s got %s", want, condition)
	}
	if len(args) != 2 || args[0] != "%ada%" || args[1] != "%ada%" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestContainsConditionPostgresUsesILike(t *testing.T) {
	condition, _ := containsCondition("postgres", []string{"refunds.reason"}, "x")
	if condition != "refunds.reason ILIKE ? ESCAPE '!'" {
		t.Fatalf("postgres should use ILIKE, got %s", condition)
	}
}

func TestContainsConditionEscapesWildcards(t *testing.T) {
	_, args := containsCondition("sqlite", []string{"orders.notes"}, "50%_off!")
	if len(args) != 1 || args[0] != "%50!%!_off!!%" {
		t.Fatalf("wildcards should be escaped, got %v", args)
	}
}

func TestDialectNameDefaultsToSQLite(t *testing.T) {
	if got := dialectName(nil); got != "sqlite" {
		t.Fatalf("nil db dialect want sqlite got %s", got)
	}
}
