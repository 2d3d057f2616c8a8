package main

import (
	"fmt"
	"guitarcart/cmd/gcart/render"
	"guitarcart/internal/cart"
	"io"
)

type ShowCmd struct {
	Plain bool `help:"Tab-separated output (for scripting)"`
}

func (cmd *ShowCmd) Run(g *Globals) error { //nolint:unparam // error required by kong interface
	c := g.Store.Snapshot()
	if cmd.Plain {
		writeReceipt(g.Out, c)
		return nil
	}
	fmt.Fprint(g.Out, g.Render.RenderCart(render.NewCartView(c)))
	return nil
}

func writeReceipt(w io.Writer, c cart.Cart) {
	fmt.Fprintln(w, "ID\tNAME\tQTY\tPRICE\tSUBTOTAL")
	for _, e := range c {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\n", e.ID, e.Name, e.Quantity, e.Price, e.Subtotal())
	}
	fmt.Fprintf(w, "TOTAL\t\t%d\t\t%.2f\n", c.ItemCount(), c.Total())
}
