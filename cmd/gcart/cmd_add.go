package main

import (
	"fmt"
	"guitarcart/internal/cart"
)

type AddCmd struct {
	Item string `arg:"" help:"Item id or name"`
}

func (cmd *AddCmd) Run(g *Globals) error {
	item, err := findItem(g.Cat, cmd.Item)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	outcome, err := g.Store.AddToCart(item)
	reportAdd(g, item, outcome)
	return g.persisted(outcome, err)
}

func reportAdd(g *Globals, item cart.Item, outcome cart.Outcome) {
	e, _ := g.Store.Snapshot().Find(item.ID)
	switch outcome {
	case cart.OutcomeAdded:
		fmt.Fprintf(g.Out, "Added: %s (%d/%d)\n", item.Name, e.Quantity, cart.MaxItems)
	case cart.OutcomeIncremented:
		fmt.Fprintf(g.Out, "Updated: %s (%d/%d)\n", item.Name, e.Quantity, cart.MaxItems)
	case cart.OutcomeSaturated:
		fmt.Fprintf(g.Out, "Already at the limit: %s (%d/%d)\n", item.Name, cart.MaxItems, cart.MaxItems)
	}
}
