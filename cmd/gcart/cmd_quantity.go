package main

import (
	"fmt"
	"guitarcart/internal/cart"
)

type IncCmd struct {
	Item string `arg:"" help:"Item id or name in the cart"`
}

func (cmd *IncCmd) Run(g *Globals) error {
	return changeQuantity(g, cmd.Item, g.Store.IncreaseQuantity)
}

type DecCmd struct {
	Item string `arg:"" help:"Item id or name in the cart"`
}

func (cmd *DecCmd) Run(g *Globals) error {
	return changeQuantity(g, cmd.Item, g.Store.DecreaseQuantity)
}

func changeQuantity(g *Globals, query string, op func(cart.ItemID) (cart.Outcome, error)) error {
	id, name, err := resolveCartID(g.Store.Snapshot(), query)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	outcome, err := op(id)
	e, _ := g.Store.Snapshot().Find(id)
	switch outcome {
	case cart.OutcomeMissing:
		fmt.Fprintf(g.Out, "Not in cart: %s\n", name)
	case cart.OutcomeSaturated:
		fmt.Fprintf(g.Out, "Already at the limit: %s (%d/%d)\n", name, e.Quantity, cart.MaxItems)
	case cart.OutcomeAtMinimum:
		fmt.Fprintf(g.Out, "Already at the minimum: %s (%d/%d)\n", name, e.Quantity, cart.MaxItems)
	default:
		fmt.Fprintf(g.Out, "Updated: %s (%d/%d)\n", name, e.Quantity, cart.MaxItems)
	}
	return g.persisted(outcome, err)
}
