package catalog

import (
	_ "embed"
	"fmt"
	"guitarcart/internal/cart"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultCatalog []byte

type catalogFile struct {
	Version int         `yaml:"version"`
	Items   []cart.Item `yaml:"items"`
}

type YAMLCatalog struct {
	path  string
	items []cart.Item
	byID  map[cart.ItemID]int
	mu    sync.RWMutex
}

func NewYAMLCatalog(path string) (*YAMLCatalog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	return &YAMLCatalog{
		path: path,
		byID: make(map[cart.ItemID]int),
	}, nil
}

// Add appends item to the catalog. An item without an id gets a random one.
func (c *YAMLCatalog) Add(item cart.Item) error {
	if err := ValidateItem(item); err != nil {
		return err
	}
	if item.ID.IsZero() {
		item.ID = cart.StringID(uuid.New().String())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byID[item.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, item.ID)
	}

	c.byID[item.ID] = len(c.items)
	c.items = append(c.items, item)
	return nil
}

func (c *YAMLCatalog) Get(id cart.ItemID) (cart.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return cart.Item{}, ErrNotFound
	}
	return c.items[i], nil
}

func (c *YAMLCatalog) List() []cart.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.items)
}

// Search matches query against the printed id exactly, or against the name
// case-insensitively. An exact id match wins over name matches.
func (c *YAMLCatalog) Search(query string) []cart.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query = strings.TrimSpace(query)
	if query == "" {
		return slices.Clone(c.items)
	}

	var byID, byName []cart.Item
	lower := strings.ToLower(query)
	for _, item := range c.items {
		switch {
		case item.ID.String() == query:
			byID = append(byID, item)
		case strings.Contains(strings.ToLower(item.Name), lower):
			byName = append(byName, item)
		}
	}

	if len(byID) > 0 {
		return byID
	}
	return byName
}

func (c *YAMLCatalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *YAMLCatalog) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	file := catalogFile{
		Version: 1,
		Items:   c.items,
	}
	if file.Items == nil {
		file.Items = []cart.Item{}
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpPath, c.path)
}

// Load reads the catalog file, falling back to the bundled guitar catalog
// when the file does not exist yet.
func (c *YAMLCatalog) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		data = defaultCatalog
	} else if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse catalog file %q: %w", c.path, err)
	}

	items := make([]cart.Item, 0, len(file.Items))
	byID := make(map[cart.ItemID]int, len(file.Items))
	for _, item := range file.Items {
		if item.ID.IsZero() {
			return fmt.Errorf("catalog file %q: item %q has no id", c.path, item.Name)
		}
		if err := ValidateItem(item); err != nil {
			return fmt.Errorf("catalog file %q: item %s: %w", c.path, item.ID, err)
		}
		if _, exists := byID[item.ID]; exists {
			return fmt.Errorf("catalog file %q: %w: %s", c.path, ErrDuplicateID, item.ID)
		}
		byID[item.ID] = len(items)
		items = append(items, item)
	}

	c.items = items
	c.byID = byID
	return nil
}
