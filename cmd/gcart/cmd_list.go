package main

import (
	"fmt"
	"guitarcart/cmd/gcart/render"
)

type ListCmd struct {
	IDs bool `short:"i" help:"Output only item ids (one per line)"`
}

func (cmd *ListCmd) Run(g *Globals) error { //nolint:unparam // error required by kong interface
	items := g.Cat.List()
	if cmd.IDs {
		for _, item := range items {
			fmt.Fprintln(g.Out, item.ID)
		}
		return nil
	}

	view := render.NewCatalogView(items, g.Store.Snapshot())
	fmt.Fprint(g.Out, g.Render.RenderCatalog(view))
	return nil
}
