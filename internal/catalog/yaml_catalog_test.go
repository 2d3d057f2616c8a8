package catalog_test

import (
	"guitarcart/internal/cart"
	"guitarcart/internal/catalog"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestYAMLCatalog(t *testing.T) (*catalog.YAMLCatalog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	cat, err := catalog.NewYAMLCatalog(path)
	require.NoError(t, err)
	return cat, path
}

func writeCatalogFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestYAMLCatalog_Load(t *testing.T) {
	t.Run("falls back to bundled catalog when file is missing", func(t *testing.T) {
		cat, _ := newTestYAMLCatalog(t)

		require.NoError(t, cat.Load())

		items := cat.List()
		require.Equal(t, 12, cat.Count())
		assert.Equal(t, cart.IntID(1), items[0].ID)
		assert.Equal(t, "Lukather", items[0].Name)
		assert.InDelta(t, 299, items[0].Price, 0.001)
		assert.Equal(t, "Hazel", items[11].Name)
	})

	t.Run("reads items in file order", func(t *testing.T) {
		cat, path := newTestYAMLCatalog(t)
		writeCatalogFile(t, path, "version: 1\nitems:\n  - id: b\n    name: Second\n    price: 2\n  - id: 1\n    name: First\n    price: 1\n")

		require.NoError(t, cat.Load())

		items := cat.List()
		require.Len(t, items, 2)
		assert.Equal(t, cart.StringID("b"), items[0].ID)
		assert.Equal(t, cart.IntID(1), items[1].ID)
	})

	t.Run("empty file yields empty catalog", func(t *testing.T) {
		cat, path := newTestYAMLCatalog(t)
		writeCatalogFile(t, path, "")

		require.NoError(t, cat.Load())

		assert.Equal(t, 0, cat.Count())
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		cat, path := newTestYAMLCatalog(t)
		writeCatalogFile(t, path, "items: [unclosed")

		err := cat.Load()

		assert.ErrorContains(t, err, "failed to parse catalog file")
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		cat, path := newTestYAMLCatalog(t)
		writeCatalogFile(t, path, "items:\n  - id: 1\n    name: A\n  - id: 1\n    name: B\n")

		err := cat.Load()

		assert.ErrorIs(t, err, catalog.ErrDuplicateID)
	})

	t.Run("rejects items without id", func(t *testing.T) {
		cat, path := newTestYAMLCatalog(t)
		writeCatalogFile(t, path, "items:\n  - name: A\n")

		err := cat.Load()

		assert.ErrorContains(t, err, "has no id")
	})

	t.Run("rejects items that fail validation", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
			wantErr error
		}{
			{"infinite price", "items:\n  - id: 1\n    name: A\n    price: .inf\n  - id: 2\n    name: B\n    price: 5\n", catalog.ErrInvalidPrice},
			{"NaN price", "items:\n  - id: 1\n    name: A\n    price: .nan\n", catalog.ErrInvalidPrice},
			{"negative price", "items:\n  - id: 1\n    name: A\n    price: -3\n", catalog.ErrNegativePrice},
			{"blank name", "items:\n  - id: 1\n    name: \"  \"\n", catalog.ErrEmptyName},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cat, path := newTestYAMLCatalog(t)
				writeCatalogFile(t, path, tt.content)

				err := cat.Load()

				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, cat.Count())
			})
		}
	})
}

func TestYAMLCatalog_Add(t *testing.T) {
	t.Run("mints an id when none is given", func(t *testing.T) {
		cat, _ := newTestYAMLCatalog(t)

		require.NoError(t, cat.Add(cart.Item{Name: "Custom", Price: 10}))

		items := cat.List()
		require.Len(t, items, 1)
		assert.False(t, items[0].ID.IsZero())
		assert.False(t, items[0].ID.IsNumeric())
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		cat, _ := newTestYAMLCatalog(t)
		require.NoError(t, cat.Add(cart.Item{ID: cart.IntID(1), Name: "A"}))

		err := cat.Add(cart.Item{ID: cart.IntID(1), Name: "B"})

		assert.ErrorIs(t, err, catalog.ErrDuplicateID)
	})

	t.Run("rejects invalid items", func(t *testing.T) {
		cat, _ := newTestYAMLCatalog(t)

		assert.ErrorIs(t, cat.Add(cart.Item{Name: "  "}), catalog.ErrEmptyName)
		assert.ErrorIs(t, cat.Add(cart.Item{Name: "A", Price: -1}), catalog.ErrNegativePrice)
		assert.ErrorIs(t, cat.Add(cart.Item{Name: "A", Price: math.Inf(1)}), catalog.ErrInvalidPrice)
		assert.ErrorIs(t, cat.Add(cart.Item{Name: "A", Price: math.NaN()}), catalog.ErrInvalidPrice)
		assert.Equal(t, 0, cat.Count())
	})
}

func TestYAMLCatalog_Get(t *testing.T) {
	cat, _ := newTestYAMLCatalog(t)
	require.NoError(t, cat.Load())

	got, err := cat.Get(cart.IntID(2))
	require.NoError(t, err)
	assert.Equal(t, "SRV", got.Name)

	_, err = cat.Get(cart.StringID("2"))
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestYAMLCatalog_Search(t *testing.T) {
	cat, _ := newTestYAMLCatalog(t)
	require.NoError(t, cat.Load())

	t.Run("exact id wins", func(t *testing.T) {
		got := cat.Search("1")

		require.Len(t, got, 1)
		assert.Equal(t, "Lukather", got[0].Name)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := cat.Search("cob")

		require.Len(t, got, 1)
		assert.Equal(t, "Cobain", got[0].Name)
	})

	t.Run("may match several names", func(t *testing.T) {
		got := cat.Search("e")

		assert.Greater(t, len(got), 1)
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, cat.Search(""), cat.Count())
	})

	t.Run("no match returns nothing", func(t *testing.T) {
		assert.Empty(t, cat.Search("zzz"))
	})
}

func TestYAMLCatalog_SaveLoadRoundTrip(t *testing.T) {
	cat, path := newTestYAMLCatalog(t)
	require.NoError(t, cat.Load())
	require.NoError(t, cat.Add(cart.Item{ID: cart.StringID("custom-1"), Name: "Custom", Image: "custom", Price: 1499.5, Description: "One-off"}))

	require.NoError(t, cat.Save())

	reloaded, err := catalog.NewYAMLCatalog(path)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, cat.List(), reloaded.List())

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestYAMLCatalog_ConcurrentReads(t *testing.T) {
	cat, _ := newTestYAMLCatalog(t)
	require.NoError(t, cat.Load())

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			_ = cat.Search("a")
			_ = cat.List()
		})
	}
	wg.Wait()
}

func TestNewItem(t *testing.T) {
	a := catalog.NewItem("A", 10)
	b := catalog.NewItem("B", 10)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NoError(t, catalog.ValidateItem(a))
}
