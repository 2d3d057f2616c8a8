package proptest

import (
	"guitarcart/internal/cart"

	"pgregory.net/rapid"
)

func verifyCartInvariants(t *rapid.T, c cart.Cart) {
	t.Helper()
	seen := make(map[cart.ItemID]bool, len(c))
	count := 0
	for i, e := range c {
		if e.Quantity < cart.MinItems || e.Quantity > cart.MaxItems {
			t.Fatalf("entry %d (%s) has quantity %d outside [%d, %d]", i, e.ID, e.Quantity, cart.MinItems, cart.MaxItems)
		}
		if seen[e.ID] {
			t.Fatalf("entry %d repeats id %s", i, e.ID)
		}
		if e.ID.IsZero() {
			t.Fatalf("entry %d has no id", i)
		}
		seen[e.ID] = true
		count += e.Quantity
	}

	if got := c.ItemCount(); got != count {
		t.Fatalf("ItemCount()=%d but quantities sum to %d", got, count)
	}
}
