package render

import (
	"fmt"
	"guitarcart/internal/cart"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	nameStyle   lipgloss.Style
	idStyle     lipgloss.Style
	descStyle   lipgloss.Style
	priceStyle  lipgloss.Style
	boundStyle  lipgloss.Style
	inCartStyle lipgloss.Style
	totalStyle  lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:       width,
		r:           r,
		nameStyle:   r.NewStyle().Bold(true),
		idStyle:     r.NewStyle().Faint(true),
		descStyle:   r.NewStyle().Faint(true),
		priceStyle:  r.NewStyle().Foreground(lipgloss.Color("214")),
		boundStyle:  r.NewStyle().Faint(true),
		inCartStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
		totalStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderCart(view CartView) string {
	if view.IsEmpty() {
		return "The cart is empty.\n"
	}

	var sb strings.Builder
	for _, line := range view.Lines {
		sb.WriteString(r.renderCartLine(line))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	total := r.totalStyle.Render("Total " + formatPrice(view.Total))
	count := r.idStyle.Render(fmt.Sprintf("%d items", view.ItemCount))
	sb.WriteString(r.spread(count, total))
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderCartLine(line CartLine) string {
	name := r.nameStyle.Render(line.Name) + " " + r.idStyle.Render("#"+line.ID)

	qty := fmt.Sprintf("%d × %s", line.Quantity, formatPrice(line.Price))
	if line.AtMax() {
		qty += r.boundStyle.Render(fmt.Sprintf(" (max %d)", cart.MaxItems))
	}
	right := qty + "  " + r.priceStyle.Render(formatPrice(line.Subtotal))

	return r.spread(name, right)
}

func (r *LipglossRenderer) RenderCatalog(view CatalogView) string {
	if view.IsEmpty() {
		return "No items found.\n"
	}

	var sb strings.Builder
	for i, item := range view.Items {
		last := i == len(view.Items)-1
		sb.WriteString(r.renderCatalogItem(item, last))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderCatalogItem(item CatalogItem, last bool) string {
	name := r.nameStyle.Render(item.Name) + " " + r.idStyle.Render("#"+item.ID)
	price := r.priceStyle.Render(formatPrice(item.Price))

	lines := []string{r.spread(name, price)}
	if item.InCart > 0 {
		lines = append(lines, r.inCartStyle.Render(fmt.Sprintf("  in cart: %d", item.InCart)))
	}
	if item.Description != "" {
		lines = append(lines, r.descStyle.Render("  "+truncate(item.Description, r.width-2)))
	}
	if !last {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (r *LipglossRenderer) spread(left, right string) string {
	padding := max(1, r.width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", padding) + right
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}
	return string(runes) + "…"
}
