package catalog

import (
	"errors"
	"fmt"
	"guitarcart/internal/cart"
	"math"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("item not found")
	ErrDuplicateID   = errors.New("item id already exists")
	ErrEmptyName     = errors.New("item name cannot be empty")
	ErrNegativePrice = errors.New("item price cannot be negative")
	ErrInvalidPrice  = errors.New("item price must be a finite number")
)

// Catalog is the read-mostly list of items a cart can hold. List keeps the
// order items were loaded or added in.
type Catalog interface {
	List() []cart.Item
	Get(id cart.ItemID) (cart.Item, error)
	Search(query string) []cart.Item
	Add(item cart.Item) error
	Count() int
	Save() error
	Load() error
}

func NewItem(name string, price float64) cart.Item {
	return cart.Item{
		ID:    cart.StringID(uuid.New().String()),
		Name:  name,
		Price: price,
	}
}

func ValidateItem(item cart.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return ErrEmptyName
	}
	if math.IsNaN(item.Price) || math.IsInf(item.Price, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidPrice, item.Price)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativePrice, item.Price)
	}
	return nil
}
