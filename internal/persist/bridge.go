package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"guitarcart/internal/cart"
	"log/slog"

	"github.com/tidwall/gjson"
)

const DefaultKey = "cart"

// Bridge moves a Cart in and out of a single KV slot.
type Bridge struct {
	kv  KV
	key string
	log *slog.Logger
}

type BridgeOption func(*Bridge)

func WithKey(key string) BridgeOption {
	return func(b *Bridge) {
		b.key = key
	}
}

func WithLogger(log *slog.Logger) BridgeOption {
	return func(b *Bridge) {
		b.log = log
	}
}

func NewBridge(kv KV, opts ...BridgeOption) *Bridge {
	b := &Bridge{kv: kv, key: DefaultKey, log: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load never fails: an absent, unreadable or malformed slot yields an empty
// cart.
func (b *Bridge) Load() cart.Cart {
	raw, err := b.kv.Get(b.key)
	if errors.Is(err, ErrNotFound) {
		return cart.Cart{}
	}
	if err != nil {
		b.log.Warn("cart slot unreadable, starting empty", "key", b.key, "error", err)
		return cart.Cart{}
	}

	c, err := Decode(raw)
	if err != nil {
		b.log.Warn("discarding persisted cart", "key", b.key, "error", err)
		return cart.Cart{}
	}
	return c
}

func (b *Bridge) Save(c cart.Cart) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	if err := b.kv.Set(b.key, data); err != nil {
		return fmt.Errorf("failed to write %q: %w", b.key, err)
	}
	b.log.Debug("cart saved", "key", b.key, "entries", len(c))
	return nil
}

// Observer adapts Save for cart.WithOnChange.
func (b *Bridge) Observer() cart.ChangeFunc {
	return b.Save
}

var (
	errNotJSON  = errors.New("not valid JSON")
	errNotArray = errors.New("not a JSON array")
	errBadEntry = errors.New("element is not a cart entry")
)

// Decode parses a persisted cart. Later entries repeating an id are
// dropped so the result keeps one entry per id.
func Decode(raw string) (cart.Cart, error) {
	if !gjson.Valid(raw) {
		return nil, errNotJSON
	}
	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return nil, errNotArray
	}

	c := cart.Cart{}
	var bad error
	idx := 0
	parsed.ForEach(func(_, value gjson.Result) bool {
		e, ok := RepairEntry(value)
		if !ok {
			bad = fmt.Errorf("%w: index %d", errBadEntry, idx)
			return false
		}
		if c.Index(e.ID) < 0 {
			c = append(c, e)
		}
		idx++
		return true
	})
	if bad != nil {
		return nil, bad
	}
	return c, nil
}

func Encode(c cart.Cart) (string, error) {
	if c == nil {
		c = cart.Cart{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode cart: %w", err)
	}
	return string(data), nil
}
