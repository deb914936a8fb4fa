package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Open creates the KV selected by cfg. A nil cfg loads the configuration from
// viper.
func Open(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Backend() {
	case BackendSQLite:
		return OpenSQLite(cfg.BasePath())
	case BackendDisk, "":
		return OpenDisk(cfg.BasePath())
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}

// OpenDisk returns a KV keeping one file per key below basePath.
func OpenDisk(basePath string) (*Disk, error) {
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// Disk is a KV backed by diskv.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

var _ KV = (*Disk)(nil)

func (p *Disk) Read(key string) ([]byte, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (p *Disk) Write(key string, val []byte) error {
	return p.d.Write(key, val)
}

func (p *Disk) Erase(key string) error {
	if err := p.d.Erase(key); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (p *Disk) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (p *Disk) Close() error { return nil }

// BasePath is the directory holding the store.
func (p *Disk) BasePath() string {
	return p.basePath
}

// keyToPathTransform maps `wendy:chat:<trip>` to the directory wendy/chat and
// a file named after the encoded trip id. Only the id is encoded so namespaces
// stay readable on disk while ids cannot escape the base path.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, ":", 3)
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: base64.RawURLEncoding.EncodeToString([]byte(parts[len(parts)-1])),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	name, err := base64.RawURLEncoding.DecodeString(pathKey.FileName)
	if err != nil {
		name = []byte(pathKey.FileName)
	}
	if len(pathKey.Path) == 0 {
		return string(name)
	}
	return fmt.Sprintf("%s:%s", strings.Join(pathKey.Path, ":"), name)
}
