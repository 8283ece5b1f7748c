package bootstrap

import (
	"reflect"
	"testing"
)

func TestNewEnvironment(t *testing.T) {
	env := NewEnvironment([]string{
		"ENV=dev",
		"DSN=postgres://u:p@db?sslmode=disable",
		"malformed-no-equals",
		"=no-key",
	})

	if got := env.Get("ENV"); got != "dev" {
		t.Errorf("Get(ENV) = %q, want %q", got, "dev")
	}
	// Values keep everything after the first "="
	if got := env.Get("DSN"); got != "postgres://u:p@db?sslmode=disable" {
		t.Errorf("Get(DSN) = %q", got)
	}
	if env.Len() != 2 {
		t.Errorf("Len() = %d, want 2", env.Len())
	}
}

func TestEnvironment_Lookup(t *testing.T) {
	env := NewEnvironment([]string{"PRESENT=yes", "EMPTY="})

	if v, ok := env.Lookup("PRESENT"); !ok || v != "yes" {
		t.Errorf("Lookup(PRESENT) = %q, %v", v, ok)
	}
	if v, ok := env.Lookup("EMPTY"); !ok || v != "" {
		t.Errorf("Lookup(EMPTY) = %q, %v, want empty value present", v, ok)
	}
	if _, ok := env.Lookup("ABSENT"); ok {
		t.Error("Lookup(ABSENT) reported present")
	}
}

func TestEnvironment_GetDefault(t *testing.T) {
	env := NewEnvironment([]string{"ENV=k8s-vault"})

	if got := env.GetDefault("ENV", "dev"); got != "k8s-vault" {
		t.Errorf("GetDefault(ENV) = %q, want %q", got, "k8s-vault")
	}
	if got := env.GetDefault("MISSING", "dev"); got != "dev" {
		t.Errorf("GetDefault(MISSING) = %q, want %q", got, "dev")
	}
}

func TestEnvironment_Keys_Sorted(t *testing.T) {
	env := NewEnvironment([]string{"B=2", "A=1", "C=3"})

	if got, want := env.Keys(), []string{"A", "B", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}
