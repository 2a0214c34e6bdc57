package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/layout"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	tabActive    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabInactive  = lipgloss.NewStyle().Foreground(colorGray)
)

// inspectCommand opens an interactive browser over a computed layout.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		flags radarFlags
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <config>",
		Short: "Browse a computed layout interactively",
		Long: `Browse a computed layout interactively.

Quadrants are shown as tabs (←/→ or tab to switch), entries as a table
in legend order (↑/↓ to move). The selected entry's segment bounds are
shown below the table. Use --plain to print every quadrant once without
the interactive view.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := runPass(cmd.Context(), cmd, args[0], &flags)
			if err != nil {
				return err
			}
			m := NewRadarModel(p.Layout)
			if plain {
				for q := range p.Layout.Model.Quadrants {
					m.Quadrant = q
					fmt.Fprintln(cmd.OutOrStdout(), m.renderQuadrant(-1))
				}
				return nil
			}
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
			return err
		},
	}

	flags.bind(cmd, true)
	cmd.Flags().BoolVar(&plain, "plain", false, "print all quadrants without the interactive view")
	return cmd
}

// =============================================================================
// RadarModel - Interactive layout browser
// =============================================================================

// RadarModel is the bubbletea model of the inspect view.
type RadarModel struct {
	Layout   *layout.Layout
	Quadrant int
	Cursor   int
	Offset   int
	Height   int
}

// NewRadarModel creates a browser positioned on the first quadrant.
func NewRadarModel(l *layout.Layout) RadarModel {
	return RadarModel{Layout: l, Height: 15}
}

// entries returns the current quadrant's entries in legend order.
func (m RadarModel) entries() []*radar.Entry {
	var out []*radar.Entry
	for _, bucket := range m.Layout.Grid.Quadrant(m.Quadrant) {
		out = append(out, bucket...)
	}
	return out
}

func (m RadarModel) Init() tea.Cmd {
	return nil
}

func (m RadarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := len(m.entries())
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "tab":
			m = m.selectQuadrant(m.Quadrant + 1)
		case "left", "h", "shift+tab":
			m = m.selectQuadrant(m.Quadrant - 1)
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < n-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-12, 5)
	}
	return m, nil
}

// selectQuadrant switches quadrants, wrapping around, and resets the cursor.
func (m RadarModel) selectQuadrant(q int) RadarModel {
	count := len(m.Layout.Model.Quadrants)
	m.Quadrant = (q%count + count) % count
	m.Cursor, m.Offset = 0, 0
	return m
}

func (m RadarModel) View() string {
	var b strings.Builder

	title := m.Layout.Config.Title
	if title == "" {
		title = "Radar"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ quadrant  ↑/↓ entry  q quit"))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.Layout.Model.Quadrants))
	for q := range tabs {
		name := strconv.Itoa(q)
		if q < len(m.Layout.Config.Quadrants) && m.Layout.Config.Quadrants[q].Name != "" {
			name = m.Layout.Config.Quadrants[q].Name
		}
		if q == m.Quadrant {
			tabs[q] = tabActive.Render(name)
		} else {
			tabs[q] = tabInactive.Render(name)
		}
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n")

	b.WriteString(m.renderQuadrant(m.Cursor))
	b.WriteString("\n")
	b.WriteString(m.details())
	b.WriteString("\n")

	sim := m.Layout.Simulation
	status := fmt.Sprintf("  %d entries · %d skipped · %d ticks", len(m.Layout.Entries), len(m.Layout.Dropped), sim.Ticks)
	if sim.Converged {
		status += " · settled"
	}
	b.WriteString(listDimStyle.Render(status))
	return b.String()
}

// renderQuadrant renders the entry table of the current quadrant. A
// negative cursor renders every row without a selection.
func (m RadarModel) renderQuadrant(cursor int) string {
	entries := m.entries()
	start, end := 0, len(entries)
	if cursor >= 0 {
		start = m.Offset
		end = min(m.Offset+m.Height, len(entries))
	}

	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		e := entries[i]
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		active := ""
		if e.Active {
			active = "✓"
		}
		rows = append(rows, []string{
			marker, e.ID, m.ringName(e.Ring), e.Label, string(e.Shape()), active,
			fmt.Sprintf("%.1f", e.X), fmt.Sprintf("%.1f", e.Y),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Ring", "Label", "Moved", "Active", "X", "Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			idx := start + row
			if idx >= len(entries) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 2 {
				if c := entries[idx].Color; c != "" {
					base = base.Foreground(lipgloss.Color(c))
				}
			}
			if idx == cursor {
				return base.Bold(true)
			}
			return base
		})

	var b strings.Builder
	if cursor < 0 {
		b.WriteString(StyleTitle.Render(m.quadrantName()))
		b.WriteString("\n")
	}
	b.WriteString(t.Render())
	return b.String()
}

// details describes the selected entry and its segment.
func (m RadarModel) details() string {
	entries := m.entries()
	if m.Cursor >= len(entries) {
		return listDimStyle.Render("  no entries in this quadrant")
	}
	e := entries[m.Cursor]
	seg, err := m.Layout.Segment(e)
	if err != nil {
		return listDimStyle.Render("  " + err.Error())
	}
	line := fmt.Sprintf("  segment r %.0f–%.0f, θ %.1f°–%.1f°",
		seg.Min.R, seg.Max.R, degrees(seg.Min.T), degrees(seg.Max.T))
	if e.Link != "" {
		line += "  " + StyleLink.Render(e.Link)
	}
	return line
}

func (m RadarModel) quadrantName() string {
	if m.Quadrant < len(m.Layout.Config.Quadrants) {
		q := m.Layout.Config.Quadrants[m.Quadrant]
		if q.Symbol != "" {
			return q.Symbol + ". " + q.Name
		}
		return q.Name
	}
	return strconv.Itoa(m.Quadrant)
}

func (m RadarModel) ringName(r int) string {
	if r < len(m.Layout.Config.Rings) && m.Layout.Config.Rings[r].Name != "" {
		return m.Layout.Config.Rings[r].Name
	}
	return strconv.Itoa(r)
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
