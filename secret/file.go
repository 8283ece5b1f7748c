package secret

import (
	"context"
	"fmt"
	"sync"

	"github.com/secretboot/secretboot/envfile"
)

// FileProvider resolves secrets out of a shell-export style secrets file,
// the same format the bootstrap consumes.
//
// The file is read once, on first resolve. Later writes by the agent are
// not observed (no hot-reload).
type FileProvider struct {
	path string

	once    sync.Once
	values  map[string]string
	loadErr error
}

// NewFileProvider creates a provider reading from path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Name returns "file".
func (p *FileProvider) Name() string { return "file" }

// Resolve returns the value for the given key in the secrets file.
func (p *FileProvider) Resolve(_ context.Context, ref string) (string, error) {
	p.once.Do(func() {
		entries, err := envfile.Load(p.path)
		if err != nil {
			p.loadErr = fmt.Errorf("secret: load %s: %w", p.path, err)
			return
		}
		p.values = envfile.Merge(entries)
	})
	if p.loadErr != nil {
		return "", p.loadErr
	}

	v, ok := p.values[ref]
	if !ok {
		return "", fmt.Errorf("%w: key %q in %s", ErrSecretNotFound, ref, p.path)
	}
	return v, nil
}

// Close is a no-op.
func (p *FileProvider) Close() error { return nil }

var _ Provider = (*FileProvider)(nil)
