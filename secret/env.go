package secret

import (
	"context"
	"fmt"
	"os"
)

// EnvProvider resolves secrets from a configuration lookup, typically the
// bootstrap Environment snapshot or the process environment.
type EnvProvider struct {
	lookup LookupFunc
}

// NewEnvProvider creates an environment-backed provider. A nil lookup
// falls back to os.LookupEnv.
func NewEnvProvider(lookup LookupFunc) *EnvProvider {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvProvider{lookup: lookup}
}

// Name returns "env".
func (p *EnvProvider) Name() string { return "env" }

// Resolve returns the value of the named variable.
func (p *EnvProvider) Resolve(_ context.Context, ref string) (string, error) {
	v, ok := p.lookup(ref)
	if !ok {
		return "", fmt.Errorf("%w: variable %q is not set", ErrSecretNotFound, ref)
	}
	return v, nil
}

// Close is a no-op.
func (p *EnvProvider) Close() error { return nil }

var _ Provider = (*EnvProvider)(nil)
