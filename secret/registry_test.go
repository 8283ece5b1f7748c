package secret

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRegistry_RegisterAndCreate(t *testing.T) {
	r := NewRegistry()

	err := r.Register("stub", func(cfg map[string]any) (Provider, error) {
		return &stubProvider{name: "stub"}, nil
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	p, err := r.Create("stub", nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.Name() != "stub" {
		t.Errorf("Name() = %q, want %q", p.Name(), "stub")
	}
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	r := NewRegistry()
	factory := func(cfg map[string]any) (Provider, error) { return &stubProvider{name: "dup"}, nil }

	if err := r.Register("dup", factory); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register("dup", factory); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestRegistry_CreateUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Create("ghost", nil)
	if !errors.Is(err, ErrProviderNotRegistered) {
		t.Fatalf("Create() error = %v, want ErrProviderNotRegistered", err)
	}
}

func TestNewBuiltinRegistry(t *testing.T) {
	r := NewBuiltinRegistry()

	want := []string{"env", "file", "vault"}
	if got := r.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestBuiltinRegistry_EnvProvider(t *testing.T) {
	r := NewBuiltinRegistry()

	p, err := r.Create("env", map[string]any{
		"lookup": LookupFunc(mapLookup(map[string]string{"KEY": "value"})),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := p.Resolve(context.Background(), "KEY")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "value" {
		t.Errorf("Resolve() = %q, want %q", got, "value")
	}
}

func TestBuiltinRegistry_FileProviderRequiresPath(t *testing.T) {
	r := NewBuiltinRegistry()

	if _, err := r.Create("file", nil); err == nil {
		t.Fatal("expected file provider without path to fail")
	}
}

func TestFileProvider_Resolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.txt")
	content := "export DB_PASSWORD=\"hunter2\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	p := NewFileProvider(path)

	got, err := p.Resolve(context.Background(), "DB_PASSWORD")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "hunter2" {
		t.Errorf("Resolve() = %q, want %q", got, "hunter2")
	}

	if _, err := p.Resolve(context.Background(), "MISSING"); !errors.Is(err, ErrSecretNotFound) {
		t.Errorf("Resolve(MISSING) error = %v, want ErrSecretNotFound", err)
	}
}

func TestFileProvider_MissingFile(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "absent.txt"))

	if _, err := p.Resolve(context.Background(), "KEY"); err == nil {
		t.Fatal("expected error for missing secrets file")
	}
}

func TestEnvProvider_MissingKey(t *testing.T) {
	p := NewEnvProvider(mapLookup(nil))

	if _, err := p.Resolve(context.Background(), "ABSENT"); !errors.Is(err, ErrSecretNotFound) {
		t.Fatalf("Resolve() error = %v, want ErrSecretNotFound", err)
	}
}

func TestVaultProvider_RefValidation(t *testing.T) {
	p, err := NewVaultProvider(VaultConfig{Address: "http://127.0.0.1:8200"})
	if err != nil {
		t.Fatalf("NewVaultProvider() error = %v", err)
	}

	for _, ref := range []string{"", "no-field", "#no-path", "path#"} {
		if _, err := p.Resolve(context.Background(), ref); err == nil {
			t.Errorf("Resolve(%q) expected error", ref)
		}
	}
}
