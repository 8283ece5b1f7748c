package health

import (
	"context"
	"fmt"
	"os"

	"github.com/secretboot/secretboot/envfile"
)

// SecretsFileChecker reports whether the agent-materialized secrets file
// is present and parseable.
//
// Absence is Degraded, not Unhealthy: the server runs fine without
// secrets (local development has none), and this signal must never feed
// the liveness probe. It exists so operators can see from /readyz whether
// the Vault Agent sidecar delivered.
type SecretsFileChecker struct {
	path string
}

// NewSecretsFileChecker creates a checker for the secrets file at path.
func NewSecretsFileChecker(path string) *SecretsFileChecker {
	return &SecretsFileChecker{path: path}
}

// Name returns "secrets_file".
func (c *SecretsFileChecker) Name() string {
	return "secrets_file"
}

// Check inspects the secrets file.
func (c *SecretsFileChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	entries, err := envfile.Load(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Degraded("secrets file absent").WithDetails(map[string]any{
				"path": c.path,
			})
		}
		return Degraded("secrets file unreadable").WithDetails(map[string]any{
			"path":  c.path,
			"error": err.Error(),
		})
	}

	return Healthy(fmt.Sprintf("secrets file present: %d entries", len(entries))).WithDetails(map[string]any{
		"path":    c.path,
		"entries": len(entries),
	})
}
