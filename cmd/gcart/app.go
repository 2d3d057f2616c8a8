package main

import (
	"fmt"
	"guitarcart/cmd/gcart/render"
	"guitarcart/internal/cart"
	"guitarcart/internal/catalog"
	"guitarcart/internal/config"
	"guitarcart/internal/logging"
	"guitarcart/internal/persist"
	"io"
	"path/filepath"
)

// openKV returns the slot store for cfg.Backend and a func that releases it.
func openKV(cfg config.Config) (persist.KV, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case config.BackendMemory:
		return persist.NewMemoryKV(), noop, nil
	case config.BackendSQLite:
		kv, err := persist.OpenSQLiteKV(filepath.Join(cfg.StateDir, "cart.db"))
		if err != nil {
			return nil, nil, err
		}
		return kv, kv.Close, nil
	case config.BackendFile:
		kv, err := persist.NewFileKV(cfg.StateDir)
		if err != nil {
			return nil, nil, err
		}
		return kv, noop, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
}

// newGlobals loads the catalog and the persisted cart once and wires the
// store so every new snapshot is saved back to the slot.
func newGlobals(cfg config.Config, out, logOut io.Writer, r render.Renderer) (*Globals, func() error, error) {
	log := logging.New(logOut, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	cat, err := catalog.NewYAMLCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create catalog: %w", err)
	}
	if err := cat.Load(); err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	kv, closeKV, err := openKV(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s storage: %w", cfg.Backend, err)
	}

	bridge := persist.NewBridge(kv, persist.WithLogger(log))
	initial := bridge.Load()
	log.Debug("cart loaded",
		"backend", string(cfg.Backend),
		"state_dir", config.ShortenPath(cfg.StateDir),
		"catalog", config.ShortenPath(cfg.CatalogPath),
		"entries", len(initial),
	)

	return &Globals{
		Store:  cart.NewStore(initial, cart.WithOnChange(bridge.Observer())),
		Cat:    cat,
		Out:    out,
		Render: r,
		Log:    log,
	}, closeKV, nil
}
