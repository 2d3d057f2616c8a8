package main

import "fmt"

type ClearCmd struct{}

func (cmd *ClearCmd) Run(g *Globals) error {
	outcome, err := g.Store.ClearCart()
	fmt.Fprintln(g.Out, "Cart cleared.")
	return g.persisted(outcome, err)
}
