package proptest

import (
	"encoding/json"
	"fmt"
	"guitarcart/internal/cart"
	"math"
	"strings"

	"pgregory.net/rapid"
)

var (
	iterDirGen = rapid.StringMatching(`[a-z]{8}`)
	nameGen    = rapid.StringMatching(`[A-Z][a-z]{2,10}`)
	queryGen   = rapid.StringMatching(`[a-z]{1,5}`)
)

// idGen draws from a small pool so operations keep hitting the same
// entries. "1" and 1 are both in the pool and must stay distinct. The
// empty id is one the store has to refuse.
func idGen() *rapid.Generator[cart.ItemID] {
	return rapid.OneOf(
		rapid.Map(rapid.Int64Range(1, 4), cart.IntID),
		rapid.Map(rapid.SampledFrom([]string{"1", "2", "sku-a", "sku-b", ""}), cart.StringID),
		rapid.Map(rapid.SampledFrom([]string{"1.5", "2.25", "-3.5"}), floatID),
		rapid.Map(rapid.SampledFrom([]int64{math.MaxInt64, math.MinInt64, 1<<53 + 1, -1, 0}), cart.IntID),
	)
}

func floatID(raw string) cart.ItemID {
	var id cart.ItemID
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		panic(err)
	}
	return id
}

func priceGen() *rapid.Generator[float64] {
	return rapid.Map(rapid.IntRange(0, 500000), func(cents int) float64 {
		return float64(cents) / 100
	})
}

func itemGen() *rapid.Generator[cart.Item] {
	return rapid.Custom(func(t *rapid.T) cart.Item {
		item := cart.Item{
			ID:    idGen().Draw(t, "id"),
			Name:  nameGen.Draw(t, "name"),
			Price: priceGen().Draw(t, "price"),
		}
		if rapid.Bool().Draw(t, "hasImage") {
			item.Image = fmt.Sprintf("img/%s.png", strings.ToLower(item.Name))
		}
		if rapid.Bool().Draw(t, "hasDescription") {
			item.Description = rapid.StringMatching(`[a-z]{1,10}( [a-z]{1,10}){0,3}`).Draw(t, "description")
		}
		return item
	})
}

// quantityJSONGen covers the shapes a stored quantity has been seen in:
// missing, falsy, out of range, numeric strings and junk.
func quantityJSONGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.Just(`,"quantity":0`),
		rapid.Just(`,"quantity":null`),
		rapid.Just(`,"quantity":false`),
		rapid.Just(`,"quantity":""`),
		rapid.Map(rapid.IntRange(-100, 100), func(n int) string {
			return fmt.Sprintf(`,"quantity":%d`, n)
		}),
		rapid.Map(rapid.IntRange(-10, 10), func(n int) string {
			return fmt.Sprintf(`,"quantity":"%d"`, n)
		}),
		rapid.Map(rapid.Float64Range(-10, 10), func(f float64) string {
			return fmt.Sprintf(`,"quantity":%g`, f)
		}),
	)
}

func idJSONGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Map(rapid.IntRange(1, 6), func(n int) string { return fmt.Sprint(n) }),
		rapid.Map(rapid.SampledFrom([]string{"1", "2", "sku-a"}), func(s string) string {
			return fmt.Sprintf("%q", s)
		}),
	)
}

// storedCartGen produces JSON arrays of well-formed entries whose
// quantities may need repair.
func storedCartGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		n := rapid.IntRange(0, 8).Draw(t, "numEntries")
		elems := make([]string, n)
		for i := range elems {
			elems[i] = fmt.Sprintf(`{"id":%s,"name":%q,"price":%d%s}`,
				idJSONGen().Draw(t, "id"),
				nameGen.Draw(t, "name"),
				rapid.IntRange(0, 1000).Draw(t, "price"),
				quantityJSONGen().Draw(t, "quantity"),
			)
		}
		return "[" + strings.Join(elems, ",") + "]"
	})
}

func malformedJSONGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.Just("{{{{"),
		rapid.Just("[{"),
		rapid.Just("null"),
		rapid.Just("42"),
		rapid.Just(`"cart"`),
		rapid.Just(`{"id":1}`),
		rapid.Just(`[1,2,3]`),
		rapid.Just(`[null]`),
		rapid.Just(`[{"name":"no id"}]`),
		rapid.Just(`[{"id":true}]`),
		rapid.Just(`[{"id":{"nested":1}}]`),
		rapid.Just(`[{"id":1},"stray"]`),
		rapid.StringMatching(`[\[\]{}":,0-9a-z]{1,40}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(1, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}
