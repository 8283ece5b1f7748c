package bootstrap

import (
	"context"
	"os"

	"github.com/secretboot/secretboot/envfile"
	"github.com/secretboot/secretboot/observe"
)

// DefaultSecretsPath is where a Vault Agent sidecar renders the secrets
// file in the pod template this service ships with.
const DefaultSecretsPath = "/vault/secrets/flask.txt"

// Config configures a bootstrap run.
type Config struct {
	// Path is the secrets file location. Default: DefaultSecretsPath.
	Path string

	// SetProcessEnv applies parsed entries via os.Setenv as well, so
	// libraries and child processes reading os.Getenv observe them.
	SetProcessEnv bool

	// Logger receives bootstrap diagnostics. Default: observe.NopLogger().
	Logger observe.Logger
}

// Run performs the one-shot secret bootstrap and returns the resulting
// Environment snapshot.
//
// Run never fails: a missing secrets file is "no secrets to inject", a
// read error is logged and treated the same, and malformed lines are
// skipped while the remaining valid lines are still applied. Entries
// from the file overwrite inherited environment values, and within the
// file later lines for the same key win.
func Run(ctx context.Context, cfg Config) *Environment {
	if cfg.Path == "" {
		cfg.Path = DefaultSecretsPath
	}
	log := cfg.Logger
	if log == nil {
		log = observe.NopLogger()
	}

	env := NewEnvironment(os.Environ())

	entries, err := envfile.Load(cfg.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug(ctx, "secrets file absent, skipping bootstrap",
				observe.Field{Key: "path", Value: cfg.Path})
		} else {
			log.Warn(ctx, "secrets file unreadable, proceeding without it",
				observe.Field{Key: "path", Value: cfg.Path},
				observe.Field{Key: "error", Value: err.Error()})
		}
		return env
	}

	for _, entry := range entries {
		env.set(entry.Key, entry.Value)
		if cfg.SetProcessEnv {
			if err := os.Setenv(entry.Key, entry.Value); err != nil {
				log.Warn(ctx, "failed to set process environment variable",
					observe.Field{Key: "key", Value: entry.Key},
					observe.Field{Key: "error", Value: err.Error()})
			}
		}
	}

	log.Info(ctx, "secrets bootstrap complete",
		observe.Field{Key: "path", Value: cfg.Path},
		observe.Field{Key: "entries", Value: len(entries)})

	return env
}
