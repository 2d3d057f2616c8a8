package ui

import (
	"fmt"
	"guitarcart/internal/cart"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	activeSymbol   = "◆"
	completeSymbol = "◇"
	separator      = " · "
	borderTop      = "┌"
	borderSide     = "│"
	borderBottom   = "└"
)

func PickerTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

// ItemOptions builds select options keyed by item id. Items at
// the quantity limit are labelled so the user sees why adding does nothing.
func ItemOptions(items []cart.Item, c cart.Cart) []huh.Option[cart.ItemID] {
	opts := make([]huh.Option[cart.ItemID], 0, len(items))
	for _, item := range items {
		label := fmt.Sprintf("%s  $%.2f", item.Name, item.Price)
		if e, ok := c.Find(item.ID); ok {
			if e.Quantity >= cart.MaxItems {
				label += "  (max in cart)"
			} else {
				label += fmt.Sprintf("  (%d in cart)", e.Quantity)
			}
		}
		opts = append(opts, huh.NewOption(label, item.ID))
	}
	return opts
}

type Field struct {
	Label string
	Value string
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// RenderSummary draws completed fields inside a left border. Fields with an
// empty value are skipped.
func RenderSummary(title string, fields []Field) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(activeSymbol)
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		b.WriteString(completeSymbol)
		b.WriteString(" ")
		b.WriteString(f.Label)
		b.WriteString(separator)
		b.WriteString(f.Value)
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}
