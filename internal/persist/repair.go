package persist

import (
	"encoding/json"
	"guitarcart/internal/cart"

	"github.com/tidwall/gjson"
)

// RepairEntry turns one element of a persisted cart into an Entry. Entries
// written before quantities were tracked, or with a falsy quantity, get
// quantity 1; anything else is clamped into [MinItems, MaxItems]. The
// second result is false when the element cannot be an entry at all.
func RepairEntry(raw gjson.Result) (cart.Entry, bool) {
	if !raw.IsObject() {
		return cart.Entry{}, false
	}

	id, ok := repairID(raw.Get("id"))
	if !ok {
		return cart.Entry{}, false
	}

	return cart.Entry{
		Item: cart.Item{
			ID:          id,
			Name:        raw.Get("name").String(),
			Image:       raw.Get("image").String(),
			Price:       raw.Get("price").Float(),
			Description: raw.Get("description").String(),
		},
		Quantity: repairQuantity(raw.Get("quantity")),
	}, true
}

func repairID(v gjson.Result) (cart.ItemID, bool) {
	switch v.Type {
	case gjson.String:
		if v.Str == "" {
			return cart.ItemID{}, false
		}
		return cart.StringID(v.Str), true
	case gjson.Number:
		var id cart.ItemID
		if err := json.Unmarshal([]byte(v.Raw), &id); err != nil {
			return cart.ItemID{}, false
		}
		return id, true
	default:
		return cart.ItemID{}, false
	}
}

func repairQuantity(v gjson.Result) int {
	var n int64
	switch v.Type {
	case gjson.Number:
		n = v.Int()
	case gjson.String:
		n = v.Int()
	}
	return int(min(max(n, cart.MinItems), cart.MaxItems))
}
