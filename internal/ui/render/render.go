// Package render formats summaries and check reports for the terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/cookbook/internal/app"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/ui/output"
	"go.trai.ch/cookbook/internal/ui/style"
)

// Summary writes s as a titled ingredient table followed by its total cook time.
func Summary(w io.Writer, s *domain.Summary) error {
	r := output.NewRenderer(w)

	title := r.NewStyle().Bold(true).Foreground(style.Saffron)
	header := r.NewStyle().Bold(true).Foreground(style.Plum).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	quantity := cell.Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(style.Ash)).
		Headers("Ingredient", "Quantity").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 1:
				return quantity
			default:
				return cell
			}
		})
	for _, ing := range s.Ingredients {
		t.Row(ing.Name, strconv.Itoa(ing.Quantity))
	}

	var b strings.Builder
	b.WriteString(title.Render(s.Name))
	b.WriteString("\n")
	b.WriteString(t.String())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total cook time: %d\n", s.CookTime)

	_, err := io.WriteString(w, b.String())
	return err
}

// CheckReport writes one line per checked recipe and a closing tally.
func CheckReport(w io.Writer, results []app.CheckResult) error {
	r := output.NewRenderer(w)
	ok := r.NewStyle().Foreground(style.Herb)
	bad := r.NewStyle().Foreground(style.Tomato)
	dim := r.NewStyle().Foreground(style.Ash)

	var (
		b      strings.Builder
		failed int
	)
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(&b, "%s %s %s\n", bad.Render(style.Cross), res.Name, dim.Render(res.Err.Error()))
			continue
		}
		detail := fmt.Sprintf("cook time %d, %d ingredients", res.Summary.CookTime, len(res.Summary.Ingredients))
		fmt.Fprintf(&b, "%s %s %s\n", ok.Render(style.Check), res.Name, dim.Render(detail))
	}

	switch {
	case len(results) == 0:
		b.WriteString(dim.Render("no recipes to check") + "\n")
	case failed == 0:
		fmt.Fprintf(&b, "%d recipes ok\n", len(results))
	default:
		fmt.Fprintf(&b, "%d of %d recipes failed\n", failed, len(results))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
