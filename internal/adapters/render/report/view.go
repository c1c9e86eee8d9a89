package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/merchant-cli/internal/application"
	"github.com/bnema/merchant-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const missingValue = "-"

type RenderOptions struct {
	Now time.Time
	// MaxRows caps the customer table; zero shows every customer.
	MaxRows int
}

// Field is one key/value line of a create result.
type Field struct {
	Key   string
	Value string
}

func renderCustomerStats(view application.CustomerStatsView, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Customer Stats"),
		s.header.Render(fmt.Sprintf("user: %s  customers: %d  new: %d", orMissing(view.UserID), view.TotalCustomers, view.NewCustomers)),
	}

	if view.TotalCustomers > 0 {
		share := float64(view.NewCustomers) / float64(view.TotalCustomers) * 100
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.fieldKey.Render("new share:"),
			" ",
			renderProgressBar(share, 24, s),
			" ",
			s.fieldValue.Render(fmt.Sprintf("%2.0f%%", clampPercent(share))),
		))
	}

	if len(view.Customers) == 0 {
		lines = append(lines, s.empty.Render("No customers to show."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(renderCustomerTable(view.Customers, opts, s)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCustomerTable(customers []domain.CustomerMetaModel, opts RenderOptions, s styles) string {
	shown := customers
	if opts.MaxRows > 0 && len(shown) > opts.MaxRows {
		shown = shown[:opts.MaxRows]
	}

	headers := []string{"NAME", "MOBILE", "EMAIL", "JOINED"}
	rows := make([][]string, 0, len(shown))
	for _, customer := range shown {
		rows = append(rows, []string{
			orMissing(customer.Name),
			orMissing(customer.Mobile),
			orMissing(customer.Email),
			formatJoined(customer.CreatedAt, opts.Now),
		})
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := []string{renderRow(headers, widths, func(string) lipgloss.Style { return s.column })}
	for _, row := range rows {
		lines = append(lines, renderRow(row, widths, func(cell string) lipgloss.Style {
			if cell == missingValue {
				return s.missing
			}
			return s.cell
		}))
	}

	if hidden := len(customers) - len(shown); hidden > 0 {
		lines = append(lines, s.empty.Render(fmt.Sprintf("... %d more", hidden)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRow(cells []string, widths []int, styleFor func(string) lipgloss.Style) string {
	parts := make([]string, 0, len(cells)*2)
	for i, cell := range cells {
		if i > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, styleFor(cell).Width(widths[i]).Render(cell))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderResult formats the outcome of a create operation.
func RenderResult(title string, message string, fields []Field) string {
	s := newStyles()

	lines := []string{s.success.Render(title)}
	if message != "" {
		lines = append(lines, s.header.Render(message))
	}

	keyWidth := 0
	for _, field := range fields {
		keyWidth = max(keyWidth, lipgloss.Width(field.Key)+1)
	}
	for _, field := range fields {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.fieldKey.Width(keyWidth).Render(field.Key+":"),
			" ",
			s.fieldValue.Render(orMissing(field.Value)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func orMissing(value string) string {
	if strings.TrimSpace(value) == "" {
		return missingValue
	}
	return value
}

// formatJoined renders an RFC3339 timestamp relative to now. Anything the
// backend sends in another shape is shown verbatim.
func formatJoined(createdAt string, now time.Time) string {
	if strings.TrimSpace(createdAt) == "" {
		return missingValue
	}

	joined, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	if now.IsZero() || joined.After(now) {
		return joined.Format("02 Jan 2006")
	}

	elapsed := now.Sub(joined)
	switch {
	case elapsed < time.Hour:
		return "just now"
	case elapsed < 24*time.Hour:
		return plural(int(elapsed.Hours()), "hour") + " ago"
	case elapsed < 30*24*time.Hour:
		return plural(int(elapsed.Hours()/24), "day") + " ago"
	default:
		return joined.Format("02 Jan 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
