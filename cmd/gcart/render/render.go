package render

import (
	"guitarcart/internal/cart"
	"strconv"
)

type Renderer interface {
	RenderCart(view CartView) string
	RenderCatalog(view CatalogView) string
}

type CartView struct {
	Lines     []CartLine
	Total     float64
	ItemCount int
}

type CartLine struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
	Subtotal float64
}

func (l CartLine) AtMax() bool { return l.Quantity >= cart.MaxItems }
func (l CartLine) AtMin() bool { return l.Quantity <= cart.MinItems }

func NewCartView(c cart.Cart) CartView {
	view := CartView{
		Lines:     make([]CartLine, 0, len(c)),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
	for _, e := range c {
		view.Lines = append(view.Lines, CartLine{
			ID:       DisplayID(e.ID),
			Name:     e.Name,
			Price:    e.Price,
			Quantity: e.Quantity,
			Subtotal: e.Subtotal(),
		})
	}
	return view
}

func (v CartView) IsEmpty() bool {
	return len(v.Lines) == 0
}

type CatalogView struct {
	Items []CatalogItem
}

type CatalogItem struct {
	ID          string
	Name        string
	Description string
	Price       float64
	InCart      int
}

// NewCatalogView lists items in catalog order, annotated with how many of
// each are already in c.
func NewCatalogView(items []cart.Item, c cart.Cart) CatalogView {
	view := CatalogView{Items: make([]CatalogItem, 0, len(items))}
	for _, item := range items {
		var inCart int
		if e, ok := c.Find(item.ID); ok {
			inCart = e.Quantity
		}
		view.Items = append(view.Items, CatalogItem{
			ID:          DisplayID(item.ID),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			InCart:      inCart,
		})
	}
	return view
}

func (v CatalogView) IsEmpty() bool {
	return len(v.Items) == 0
}

// DisplayID quotes string ids that would otherwise read as numbers, so
// "1" and 1 stay distinguishable on screen.
func DisplayID(id cart.ItemID) string {
	if !id.IsNumeric() && cart.ParseID(id.String()).IsNumeric() {
		return strconv.Quote(id.String())
	}
	return id.String()
}
