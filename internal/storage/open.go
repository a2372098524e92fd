package storage

import (
	"fmt"
	"log/slog"

	"github.com/darrenchooji/fiona/internal/config"
)

// Open returns the store selected by cfg.Backend. The caller closes the
// returned store when it implements io.Closer.
func Open(cfg config.StorageConfig, codec *Codec, logger *slog.Logger) (Store, error) {
	path := cfg.Path
	if path == "" {
		path = config.DefaultDataPath(cfg.Backend)
	}

	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileStore(path, codec, logger), nil
	case config.BackendSQLite:
		store, err := OpenSQLite(path, codec, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
