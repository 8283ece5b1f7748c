package health

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSecretsFileChecker_Present(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.txt")
	if err := os.WriteFile(path, []byte("export ENV=prod\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	checker := NewSecretsFileChecker(path)

	result := checker.Check(context.Background())
	if result.Status != StatusHealthy {
		t.Errorf("Check().Status = %v, want StatusHealthy", result.Status)
	}
	if result.Details["entries"] != 1 {
		t.Errorf("Details[entries] = %v, want 1", result.Details["entries"])
	}
}

func TestSecretsFileChecker_Absent(t *testing.T) {
	checker := NewSecretsFileChecker(filepath.Join(t.TempDir(), "absent.txt"))

	result := checker.Check(context.Background())
	if result.Status != StatusDegraded {
		t.Errorf("Check().Status = %v, want StatusDegraded (absence is not fatal)", result.Status)
	}
}

func TestSecretsFileChecker_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := NewSecretsFileChecker("irrelevant")

	result := checker.Check(ctx)
	if result.Status != StatusUnhealthy {
		t.Errorf("Check().Status = %v, want StatusUnhealthy", result.Status)
	}
}

func TestMemoryChecker_Defaults(t *testing.T) {
	checker := NewMemoryChecker(MemoryCheckerConfig{})

	if checker.Name() != "memory" {
		t.Errorf("Name() = %q, want %q", checker.Name(), "memory")
	}
	result := checker.Check(context.Background())
	if result.Status == StatusUnhealthy {
		t.Errorf("Check().Status = %v for an idle test process", result.Status)
	}
}

func TestMemoryChecker_CriticalThreshold(t *testing.T) {
	// A 1-byte budget forces the critical path.
	checker := NewMemoryChecker(MemoryCheckerConfig{
		WarningThreshold:  0.5,
		CriticalThreshold: 0.9,
		MaxAlloc:          1,
	})

	result := checker.Check(context.Background())
	if result.Status != StatusUnhealthy {
		t.Errorf("Check().Status = %v, want StatusUnhealthy", result.Status)
	}
}
