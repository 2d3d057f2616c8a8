package cart

import "slices"

const (
	MinItems = 1
	MaxItems = 5
)

type Entry struct {
	Item
	Quantity int `json:"quantity"`
}

func NewEntry(item Item) Entry {
	return Entry{Item: item, Quantity: MinItems}
}

func (e Entry) Subtotal() float64 {
	return e.Price * float64(e.Quantity)
}

// Cart is an ordered snapshot. Functions in this package never modify a
// Cart in place; they return a new one.
type Cart []Entry

func (c Cart) Index(id ItemID) int {
	return slices.IndexFunc(c, func(e Entry) bool { return e.ID == id })
}

func (c Cart) Find(id ItemID) (Entry, bool) {
	i := c.Index(id)
	if i < 0 {
		return Entry{}, false
	}
	return c[i], true
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

func (c Cart) Total() float64 {
	var total float64
	for _, e := range c {
		total += e.Subtotal()
	}
	return total
}

func (c Cart) ItemCount() int {
	var n int
	for _, e := range c {
		n += e.Quantity
	}
	return n
}

func (c Cart) Clone() Cart {
	if c == nil {
		return Cart{}
	}
	return slices.Clone(c)
}

// Add increments an existing entry or appends a new one with quantity 1.
// The second result is false when the entry is already at MaxItems or the
// item has no id, in which case the original cart is returned untouched.
func Add(c Cart, item Item) (Cart, bool) {
	if item.ID.IsZero() {
		return c, false
	}
	i := c.Index(item.ID)
	if i < 0 {
		next := make(Cart, 0, len(c)+1)
		next = append(next, c...)
		return append(next, NewEntry(item)), true
	}
	if c[i].Quantity >= MaxItems {
		return c, false
	}
	next := c.Clone()
	next[i].Quantity++
	return next, true
}

func Remove(c Cart, id ItemID) Cart {
	next := make(Cart, 0, len(c))
	for _, e := range c {
		if e.ID != id {
			next = append(next, e)
		}
	}
	return next
}

func Increase(c Cart, id ItemID) Cart {
	next := c.Clone()
	for i := range next {
		if next[i].ID == id && next[i].Quantity < MaxItems {
			next[i].Quantity++
		}
	}
	return next
}

func Decrease(c Cart, id ItemID) Cart {
	next := c.Clone()
	for i := range next {
		if next[i].ID == id && next[i].Quantity > MinItems {
			next[i].Quantity--
		}
	}
	return next
}

func Clear() Cart {
	return Cart{}
}
