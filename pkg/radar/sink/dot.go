package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/radar/layout"
)

// pointsPerInch converts chart pixels to Graphviz node sizes.
const pointsPerInch = 72.0

// blipSize is the blip diameter in chart pixels.
const blipSize = 16.0

var dotShapes = map[radar.Shape]string{
	radar.ShapeCircle:       "circle",
	radar.ShapeTriangleUp:   "triangle",
	radar.ShapeTriangleDown: "invtriangle",
}

// ToDOT converts a layout into a Graphviz document. Every node is pinned
// with pos="x,y!" in radar coordinates with the y axis flipped, since
// Graphviz points up where the chart points down. Rings are drawn as
// fixed-size circles around the origin and quadrant boundaries as edges
// between invisible anchor points.
func ToDOT(l *layout.Layout) string {
	cfg := l.Config
	var buf bytes.Buffer
	buf.WriteString("graph radar {\n")
	buf.WriteString("  layout=neato;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", orColor(cfg.Colors.Background, radar.DefaultBackground))
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  outputorder=nodesfirst;\n")
	buf.WriteString("  node [fontname=\"Arial\", fontsize=9, penwidth=1];\n")
	if cfg.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=24;\n", cfg.Title)
	}
	buf.WriteString("\n")

	grid := orColor(cfg.Colors.Grid, radar.DefaultGrid)
	for i := len(l.Model.Rings) - 1; i >= 0; i-- {
		r := l.Model.Rings[i]
		name := ""
		if i < len(cfg.Rings) {
			name = cfg.Rings[i].Name
		}
		fmt.Fprintf(&buf, "  %q [shape=circle, fixedsize=true, width=%.4f, label=\"\", color=%q, pos=\"0,0!\", tooltip=%q];\n",
			fmt.Sprintf("ring-%d", i), 2*r.Radius/pointsPerInch, grid, name)
	}

	buf.WriteString("\n")
	for i, line := range l.Model.BoundaryLines() {
		from, to := fmt.Sprintf("spoke-%d-from", i), fmt.Sprintf("spoke-%d-to", i)
		fmt.Fprintf(&buf, "  %q [shape=point, style=invis, pos=\"%s!\"];\n", from, pos(line.From.X, line.From.Y))
		fmt.Fprintf(&buf, "  %q [shape=point, style=invis, pos=\"%s!\"];\n", to, pos(line.To.X, line.To.Y))
		fmt.Fprintf(&buf, "  %q -- %q [color=%q];\n", from, to, grid)
	}

	buf.WriteString("\n")
	for q := range l.Model.Quadrants {
		symbol := ""
		if q < len(cfg.Quadrants) {
			symbol = cfg.Quadrants[q].Symbol
		}
		if symbol == "" {
			continue
		}
		p := l.Model.SymbolPosition(q)
		fmt.Fprintf(&buf, "  %q [shape=plaintext, fontsize=28, fontcolor=%q, label=%q, pos=\"%s!\"];\n",
			fmt.Sprintf("symbol-%d", q), grid, symbol, pos(p.X, p.Y))
	}

	buf.WriteString("\n")
	size := blipSize / pointsPerInch
	for _, e := range l.Entries {
		attrs := fmt.Sprintf("shape=%s, fixedsize=true, width=%.4f, height=%.4f, style=filled, fillcolor=%q, color=%q, fontcolor=white, label=%q, tooltip=%q, pos=\"%s!\"",
			dotShapes[e.Shape()], size, size, e.Color, e.Color, e.BlipText(cfg.Print), e.ID+". "+e.Label, pos(e.X, e.Y))
		if href := e.Href(cfg.Print); href != "" {
			attrs += fmt.Sprintf(", href=%q", href)
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", "entry-"+e.ID, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func pos(x, y float64) string {
	return fmt.Sprintf("%.2f,%.2f", x, -y)
}

func orColor(c, def string) string {
	if c == "" {
		return def
	}
	return c
}
