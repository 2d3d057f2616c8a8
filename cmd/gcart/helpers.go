package main

import (
	"errors"
	"fmt"
	"guitarcart/internal/cart"
	"guitarcart/internal/catalog"
	"io"
	"strings"
)

type AmbiguousMatchError struct {
	Query   string
	Matches []cart.Item
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple items match %q", e.Query)
}

func (e *AmbiguousMatchError) WriteMatches(w io.Writer) {
	fmt.Fprintln(w, "Multiple items match. Please be more specific:")
	for _, item := range e.Matches {
		fmt.Fprintf(w, "  - %s (#%s)\n", item.Name, item.ID)
	}
}

func handleFindError(w io.Writer, err error) bool {
	var ambErr *AmbiguousMatchError
	if errors.As(err, &ambErr) {
		ambErr.WriteMatches(w)
		return true
	}
	return false
}

func findItem(cat catalog.Catalog, query string) (cart.Item, error) {
	items := cat.Search(query)
	if len(items) == 0 {
		return cart.Item{}, fmt.Errorf("no item found matching: %s", query)
	}
	if len(items) > 1 {
		return cart.Item{}, &AmbiguousMatchError{Query: query, Matches: items}
	}
	return items[0], nil
}

// resolveCartID finds the cart entry a query refers to, by printed id or
// name. A query that matches nothing still yields an id so the operation
// runs as a no-op.
func resolveCartID(c cart.Cart, query string) (cart.ItemID, string, error) {
	query = strings.TrimSpace(query)
	var byName []cart.Entry
	lower := strings.ToLower(query)
	for _, e := range c {
		if e.ID.String() == query {
			return e.ID, e.Name, nil
		}
		if strings.Contains(strings.ToLower(e.Name), lower) {
			byName = append(byName, e)
		}
	}
	switch len(byName) {
	case 0:
		return cart.ParseID(query), query, nil
	case 1:
		return byName[0].ID, byName[0].Name, nil
	default:
		matches := make([]cart.Item, len(byName))
		for i, e := range byName {
			matches[i] = e.Item
		}
		return cart.ItemID{}, "", &AmbiguousMatchError{Query: query, Matches: matches}
	}
}
