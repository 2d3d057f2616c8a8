package main

import (
	"errors"
	"guitarcart/cmd/gcart/render"
	"guitarcart/internal/cart"
	"guitarcart/internal/catalog"
	"io"
	"log/slog"
)

type Globals struct {
	Store  *cart.Store
	Cat    catalog.Catalog
	Out    io.Writer
	Render render.Renderer
	Log    *slog.Logger
}

// persisted logs and returns a failed save. The cart change itself has
// already happened in memory.
func (g *Globals) persisted(outcome cart.Outcome, err error) error {
	if errors.Is(err, cart.ErrSave) {
		g.Log.Warn("cart change not persisted", "outcome", string(outcome), "error", err)
	}
	return err
}
