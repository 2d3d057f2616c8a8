package proptest

import (
	"errors"
	"guitarcart/internal/cart"
	"guitarcart/internal/persist"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

const (
	typicalMinItems = 1
	typicalMaxItems = 10
)

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenItem() cart.Item {
	return itemGen().Draw(h.T, "item")
}

type StoreHarness struct {
	Harness
	KV     persist.KV
	Bridge *persist.Bridge
	Store  *cart.Store
}

// Reload builds a second bridge over the same slot, the way a fresh
// process would see it.
func (h *StoreHarness) Reload() cart.Cart {
	return persist.NewBridge(h.KV, persist.WithLogger(slog.New(slog.DiscardHandler))).Load()
}

func (h *StoreHarness) AddItems(minCount, maxCount int) []cart.Item {
	var added []cart.Item
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numItems")
	for range n {
		item := h.GenItem()
		if _, err := h.Store.AddToCart(item); err != nil {
			if item.ID.IsZero() && errors.Is(err, cart.ErrInvalidID) {
				continue
			}
			h.T.Fatalf("failed to add item: %v", err)
		}
		added = append(added, item)
	}
	return added
}

func RunWithStore(t *testing.T, fn func(h *StoreHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		kv, err := persist.NewFileKV(iterDir)
		if err != nil {
			rt.Fatalf("failed to create slot dir: %v", err)
		}
		// iterDir names can repeat across iterations
		if err := kv.Delete(persist.DefaultKey); err != nil {
			rt.Fatalf("failed to reset slot: %v", err)
		}

		bridge := persist.NewBridge(kv, persist.WithLogger(slog.New(slog.DiscardHandler)))
		harness := &StoreHarness{
			Harness: Harness{
				T:   rt,
				Dir: iterDir,
			},
			KV:     kv,
			Bridge: bridge,
			Store:  cart.NewStore(bridge.Load(), cart.WithOnChange(bridge.Observer())),
		}

		fn(harness)
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		harness := &Harness{
			T:   rt,
			Dir: iterDir,
		}

		fn(harness)
	})
}
