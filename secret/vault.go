package secret

import (
	"context"
	"errors"
	"fmt"
	"strings"

	vault "github.com/hashicorp/vault/api"
)

// VaultConfig configures the Vault provider.
type VaultConfig struct {
	// Address is the Vault server address. Default: VAULT_ADDR.
	Address string

	// Token authenticates the client. Default: VAULT_TOKEN.
	Token string

	// Mount is the KV v2 mount path. Default: "secret".
	Mount string
}

// VaultProvider resolves secrets from a HashiCorp Vault KV v2 engine.
//
// References have the form "<path>#<field>", e.g. "myapp/config#db_password".
// Vault is consumed strictly through its HTTP API client; leasing and
// renewal stay the server's concern.
type VaultProvider struct {
	client *vault.Client
	mount  string
}

// NewVaultProvider creates a Vault-backed provider.
func NewVaultProvider(cfg VaultConfig) (*VaultProvider, error) {
	vcfg := vault.DefaultConfig()
	if cfg.Address != "" {
		vcfg.Address = cfg.Address
	}

	client, err := vault.NewClient(vcfg)
	if err != nil {
		return nil, fmt.Errorf("secret: vault client: %w", err)
	}
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}

	mount := cfg.Mount
	if mount == "" {
		mount = "secret"
	}

	return &VaultProvider{client: client, mount: mount}, nil
}

// Name returns "vault".
func (p *VaultProvider) Name() string { return "vault" }

// Resolve reads the referenced field from the KV v2 engine.
func (p *VaultProvider) Resolve(ctx context.Context, ref string) (string, error) {
	path, field, ok := strings.Cut(ref, "#")
	if !ok || path == "" || field == "" {
		return "", errors.New(`secret: vault ref must have the form "path#field"`)
	}

	kv, err := p.client.KVv2(p.mount).Get(ctx, path)
	if err != nil {
		return "", fmt.Errorf("secret: vault read %s: %w", path, err)
	}

	raw, ok := kv.Data[field]
	if !ok {
		return "", fmt.Errorf("%w: field %q at %s", ErrSecretNotFound, field, path)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("secret: field %q at %s is not a string", field, path)
	}
	return value, nil
}

// Close is a no-op; the underlying HTTP client needs no teardown.
func (p *VaultProvider) Close() error { return nil }

var _ Provider = (*VaultProvider)(nil)
