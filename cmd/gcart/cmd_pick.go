package main

import (
	"errors"
	"fmt"
	"guitarcart/internal/cart"
	"guitarcart/internal/ui"

	"github.com/charmbracelet/huh"
)

type PickCmd struct{}

func (cmd *PickCmd) Run(g *Globals) error {
	items := g.Cat.List()
	if len(items) == 0 {
		fmt.Fprintln(g.Out, "No items found.")
		return nil
	}

	var id cart.ItemID
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[cart.ItemID]().
				Title("Add to cart").
				Options(ui.ItemOptions(items, g.Store.Snapshot())...).
				Value(&id),
		),
	).WithTheme(ui.PickerTheme())

	if err := form.Run(); err != nil {
		return handlePickFormError(err)
	}

	item, err := g.Cat.Get(id)
	if err != nil {
		return fmt.Errorf("failed to find picked item %s: %w", id, err)
	}

	outcome, err := g.Store.AddToCart(item)
	renderPickSummary(g, item, outcome)
	return g.persisted(outcome, err)
}

func handlePickFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

func renderPickSummary(g *Globals, item cart.Item, outcome cart.Outcome) {
	e, _ := g.Store.Snapshot().Find(item.ID)
	title := "Added to cart"
	if outcome == cart.OutcomeSaturated {
		title = "Already at the limit"
	}
	fields := []ui.Field{
		{Label: "Item", Value: item.Name},
		{Label: "Quantity", Value: fmt.Sprintf("%d/%d", e.Quantity, cart.MaxItems)},
		{Label: "Subtotal", Value: fmt.Sprintf("$%.2f", e.Subtotal())},
	}
	fmt.Fprint(g.Out, ui.RenderSummary(title, fields))
}
