package proptest

import (
	"errors"
	"guitarcart/internal/cart"
	"slices"

	"pgregory.net/rapid"
)

// cartModel is the reference the store is checked against: an ordered id
// list plus quantities, with none of the store's slice handling.
type cartModel struct {
	order []cart.ItemID
	items map[cart.ItemID]cart.Item
	qty   map[cart.ItemID]int
}

func newCartModel() *cartModel {
	return &cartModel{
		items: make(map[cart.ItemID]cart.Item),
		qty:   make(map[cart.ItemID]int),
	}
}

func (m *cartModel) Add(item cart.Item) cart.Outcome {
	if item.ID.IsZero() {
		return cart.OutcomeRejected
	}
	q, ok := m.qty[item.ID]
	switch {
	case !ok:
		m.order = append(m.order, item.ID)
		m.items[item.ID] = item
		m.qty[item.ID] = 1
		return cart.OutcomeAdded
	case q == cart.MaxItems:
		return cart.OutcomeSaturated
	default:
		m.qty[item.ID] = q + 1
		return cart.OutcomeIncremented
	}
}

func (m *cartModel) Remove(id cart.ItemID) cart.Outcome {
	if _, ok := m.qty[id]; !ok {
		return cart.OutcomeMissing
	}
	m.order = slices.DeleteFunc(m.order, func(other cart.ItemID) bool { return other == id })
	delete(m.items, id)
	delete(m.qty, id)
	return cart.OutcomeRemoved
}

func (m *cartModel) Increase(id cart.ItemID) cart.Outcome {
	q, ok := m.qty[id]
	switch {
	case !ok:
		return cart.OutcomeMissing
	case q == cart.MaxItems:
		return cart.OutcomeSaturated
	}
	m.qty[id] = q + 1
	return cart.OutcomeIncremented
}

func (m *cartModel) Decrease(id cart.ItemID) cart.Outcome {
	q, ok := m.qty[id]
	switch {
	case !ok:
		return cart.OutcomeMissing
	case q == cart.MinItems:
		return cart.OutcomeAtMinimum
	}
	m.qty[id] = q - 1
	return cart.OutcomeDecremented
}

func (m *cartModel) Clear() cart.Outcome {
	m.order = nil
	clear(m.items)
	clear(m.qty)
	return cart.OutcomeCleared
}

func (m *cartModel) IDs() []cart.ItemID {
	return slices.Clone(m.order)
}

func (m *cartModel) Cart() cart.Cart {
	c := make(cart.Cart, 0, len(m.order))
	for _, id := range m.order {
		c = append(c, cart.Entry{Item: m.items[id], Quantity: m.qty[id]})
	}
	return c
}

// CheckedStore runs every operation against both the store and the model,
// then checks snapshots, outcomes and the persisted slot agree.
type CheckedStore struct {
	h     *StoreHarness
	model *cartModel
	t     *rapid.T
}

func NewCheckedStore(h *StoreHarness) *CheckedStore {
	return &CheckedStore{
		h:     h,
		model: newCartModel(),
		t:     h.T,
	}
}

func (c *CheckedStore) Model() *cartModel {
	return c.model
}

func (c *CheckedStore) check(op string, expected, actual cart.Outcome, err error, before cart.Cart) {
	c.t.Helper()
	switch {
	case expected == cart.OutcomeRejected:
		if !errors.Is(err, cart.ErrInvalidID) {
			c.t.Fatalf("%s: expected ErrInvalidID, got %v", op, err)
		}
	case err != nil:
		c.t.Fatalf("%s: %v", op, err)
	}
	assertOutcome(c.t, op, expected, actual)

	snap := c.h.Store.Snapshot()
	verifyCartInvariants(c.t, snap)
	assertCartsEqual(c.t, c.model.Cart(), snap)
	assertSameOrder(c.t, before, snap)
	assertCartsEqual(c.t, snap, c.h.Reload())
}

func (c *CheckedStore) Add(item cart.Item) {
	before := c.h.Store.Snapshot()
	actual, err := c.h.Store.AddToCart(item)
	c.check("AddToCart", c.model.Add(item), actual, err, before)
}

func (c *CheckedStore) Remove(id cart.ItemID) {
	before := c.h.Store.Snapshot()
	actual, err := c.h.Store.RemoveFromCart(id)
	c.check("RemoveFromCart", c.model.Remove(id), actual, err, before)
}

func (c *CheckedStore) Increase(id cart.ItemID) {
	before := c.h.Store.Snapshot()
	actual, err := c.h.Store.IncreaseQuantity(id)
	c.check("IncreaseQuantity", c.model.Increase(id), actual, err, before)
}

func (c *CheckedStore) Decrease(id cart.ItemID) {
	before := c.h.Store.Snapshot()
	actual, err := c.h.Store.DecreaseQuantity(id)
	c.check("DecreaseQuantity", c.model.Decrease(id), actual, err, before)
}

func (c *CheckedStore) Clear() {
	before := c.h.Store.Snapshot()
	actual, err := c.h.Store.ClearCart()
	c.check("ClearCart", c.model.Clear(), actual, err, before)
}
