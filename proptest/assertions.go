package proptest

import (
	"guitarcart/internal/cart"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

var cartCmpOpts = cmp.Options{
	cmp.AllowUnexported(cart.ItemID{}),
	cmpopts.EquateEmpty(),
}

func assertCartsEqual(t *rapid.T, expected, actual cart.Cart) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cartCmpOpts...); diff != "" {
		t.Fatalf("cart mismatch (-want +got):\n%s", diff)
	}
}

func assertOutcome(t *rapid.T, op string, expected, actual cart.Outcome) {
	t.Helper()
	if expected != actual {
		t.Fatalf("%s: outcome %q, model expected %q", op, actual, expected)
	}
}

// assertSameOrder checks that the ids of after appear in the same relative
// order as in before.
func assertSameOrder(t *rapid.T, before, after cart.Cart) {
	t.Helper()
	pos := make(map[cart.ItemID]int, len(before))
	for i, e := range before {
		pos[e.ID] = i
	}
	last := -1
	for _, e := range after {
		p, ok := pos[e.ID]
		if !ok {
			continue
		}
		if p < last {
			t.Fatalf("entry %s moved ahead of an earlier entry", e.ID)
		}
		last = p
	}
}
