package main

import (
	"fmt"
	"guitarcart/internal/cart"
	"guitarcart/internal/catalog"
)

type ItemCmd struct {
	Add ItemAddCmd `cmd:"" help:"Add an item to the catalog file"`
}

type ItemAddCmd struct {
	Name        string  `arg:"" help:"Item name"`
	Price       float64 `short:"p" required:"" help:"Unit price"`
	ID          string  `help:"Item id (defaults to a random id)"`
	Image       string  `help:"Image reference"`
	Description string  `short:"d" help:"Item description"`
}

func (cmd *ItemAddCmd) Run(g *Globals) error {
	item := catalog.NewItem(cmd.Name, cmd.Price)
	if cmd.ID != "" {
		item.ID = cart.ParseID(cmd.ID)
	}
	item.Image = cmd.Image
	item.Description = cmd.Description

	if err := g.Cat.Add(item); err != nil {
		return fmt.Errorf("failed to add item %q: %w", cmd.Name, err)
	}
	if err := g.Cat.Save(); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	fmt.Fprintf(g.Out, "Added to catalog: %s (#%s)\n", item.Name, item.ID)
	return nil
}
