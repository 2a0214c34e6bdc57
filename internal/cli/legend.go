package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/layout"
	"github.com/matzehuels/techradar/pkg/radar/legend"
)

var legendRegions = []legend.Position{legend.Left, legend.Middle, legend.Right}

// legendCommand prints the balanced legend of a configuration.
func (c *CLI) legendCommand() *cobra.Command {
	var (
		flags  radarFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "legend <config>",
		Short: "Print the legend columns of each quadrant",
		Long: `Print the legend columns of each quadrant.

Entries are numbered and sorted the same way the layout command does it,
and each quadrant legend is split into columns according to --split-mode.
No overlap resolution is run, so the command is fast on large radars.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := runPass(cmd.Context(), cmd, args[0], &flags, layout.WithoutSimulation())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(p.Layout.Legend, "", "  ")
				if err != nil {
					return fmt.Errorf("encode legend: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}
			_, err = fmt.Fprint(out, renderLegend(p.Layout))
			return err
		},
	}

	flags.bind(cmd, false)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the legend as JSON")
	return cmd
}

// renderLegend draws one table per quadrant, grouped by region.
func renderLegend(l *layout.Layout) string {
	var b strings.Builder
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	for _, pos := range legendRegions {
		quadrants := l.Legend.Region(pos)
		if len(quadrants) == 0 {
			continue
		}
		b.WriteString(StyleDim.Render(fmt.Sprintf("%s (%s)", pos, l.Legend.Strategy)))
		b.WriteString("\n")

		for _, q := range quadrants {
			b.WriteString(StyleTitle.Render(q.Title()))
			b.WriteString(" ")
			b.WriteString(StyleDim.Render(fmt.Sprintf("split ring %d entry %d", q.Split.Ring, q.Split.Entry)))
			b.WriteString("\n")

			if len(q.Columns) == 0 {
				b.WriteString(StyleDim.Render("  no entries"))
				b.WriteString("\n\n")
				continue
			}

			headers := make([]string, len(q.Columns))
			cells := make([]string, len(q.Columns))
			for i, col := range q.Columns {
				headers[i] = fmt.Sprintf("Column %d", i+1)
				cells[i] = renderColumn(col, l.Config.Rings)
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers(headers...).
				Row(cells...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle.Padding(0, 1)
					}
					return lipgloss.NewStyle().Padding(0, 1)
				})
			b.WriteString(t.Render())
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// renderColumn renders the ring sections of one column as lines.
func renderColumn(col legend.Column, rings []radar.Ring) string {
	var lines []string
	for _, sec := range col.Sections {
		if !sec.Continued {
			style := lipgloss.NewStyle().Bold(true)
			if sec.Ring < len(rings) && rings[sec.Ring].Color != "" {
				style = style.Foreground(lipgloss.Color(rings[sec.Ring].Color))
			}
			lines = append(lines, style.Render(sec.Name))
		}
		for _, it := range sec.Items {
			lines = append(lines, StyleValue.Render(it.Text()))
		}
	}
	return strings.Join(lines, "\n")
}
