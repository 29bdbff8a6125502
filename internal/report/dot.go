package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/grindlemire/go-constrain"
)

// DOT converts element trees to Graphviz DOT. Elements are nodes, containment
// is a dashed edge from parent to child, and every relative constraint is an
// edge from its subject to its counterpart. Constant constraints are listed
// in the subject's label.
func DOT(roots []*constrain.Element) string {
	var buf bytes.Buffer
	buf.WriteString("digraph constraints {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	fixed := make(map[string][]string)
	var edges []string
	for _, r := range Collect(roots) {
		if r.Counterpart == "" {
			fixed[r.Subject] = append(fixed[r.Subject], fmt.Sprintf("%s %s %s", r.Attribute, r.Relation, formatFloat(r.Constant)))
			continue
		}
		label := fmt.Sprintf("%s %s %s", r.Attribute, r.Relation, r.CounterpartAttribute)
		if r.Multiplier != 1 {
			label += " * " + formatFloat(r.Multiplier)
		}
		if r.Constant != 0 {
			label += " + " + formatFloat(r.Constant)
		}
		edges = append(edges, fmt.Sprintf("  %q -> %q [label=%q, color=\"#00afaf\"];\n", r.Subject, r.Counterpart, label))
	}

	for _, root := range roots {
		root.Walk(func(e *constrain.Element) {
			label := strings.Join(append([]string{e.Name()}, fixed[e.Name()]...), "\n")
			fmt.Fprintf(&buf, "  %q [label=%q];\n", e.Name(), label)
		})
	}

	buf.WriteString("\n")
	for _, root := range roots {
		root.Walk(func(e *constrain.Element) {
			for _, child := range e.Children() {
				fmt.Fprintf(&buf, "  %q -> %q [style=dashed, arrowhead=none];\n", e.Name(), child.Name())
			}
		})
	}
	for _, edge := range edges {
		buf.WriteString(edge)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
