package main

import (
	"fmt"
	"guitarcart/internal/cart"
)

type RmCmd struct {
	Item string `arg:"" help:"Item id or name in the cart"`
}

func (cmd *RmCmd) Run(g *Globals) error {
	id, name, err := resolveCartID(g.Store.Snapshot(), cmd.Item)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	outcome, err := g.Store.RemoveFromCart(id)
	if outcome == cart.OutcomeMissing {
		fmt.Fprintf(g.Out, "Not in cart: %s\n", name)
	} else {
		fmt.Fprintf(g.Out, "Removed: %s\n", name)
	}
	return g.persisted(outcome, err)
}
