package moldot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/peptikit/peptigraph/pkg/smiles"
)

// Options configures molecule rendering.
type Options struct {
	// ShowIndices appends the atom's emission index to its label.
	ShowIndices bool
}

// ToDOT converts a molecule to Graphviz DOT format. Atoms become
// circular nodes labeled with their element, bonds become undirected
// edges. Double and triple bonds render with heavier pen widths, ring
// closures with dashed edges.
func ToDOT(m *Molecule, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph M {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14, fixedsize=true, width=0.45];\n")
	buf.WriteString("  edge [len=0.9];\n")
	buf.WriteString("\n")

	for _, a := range m.Atoms {
		attrs := atomAttrs(a, opts)
		fmt.Fprintf(&buf, "  a%d [%s];\n", a.Index, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, b := range m.Bonds {
		attrs := bondAttrs(b)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  a%d -- a%d;\n", b.From, b.To)
			continue
		}
		fmt.Fprintf(&buf, "  a%d -- a%d [%s];\n", b.From, b.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// elementColors follows the usual CPK scheme for the elements that
// occur in peptides.
var elementColors = map[smiles.Element]string{
	smiles.N:  "#c4d9f5",
	smiles.O:  "#f5c4c4",
	smiles.S:  "#f5eec4",
	smiles.Se: "#f5d9b0",
}

func atomAttrs(a Atom, opts Options) []string {
	label := string(a.Kind.Element)
	if a.Kind.Config != smiles.ConfigNone {
		label += "*"
	}
	if opts.ShowIndices {
		label = fmt.Sprintf("%s\n%d", label, a.Index)
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	if c, ok := elementColors[a.Kind.Element]; ok {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c))
	}
	if a.Kind.Aromatic {
		attrs = append(attrs, "color=purple")
	}
	return attrs
}

func bondAttrs(b Bond) []string {
	var attrs []string
	switch b.Kind {
	case smiles.BondDouble:
		attrs = append(attrs, "penwidth=2.5")
	case smiles.BondTriple:
		attrs = append(attrs, "penwidth=4")
	case smiles.BondAromatic:
		attrs = append(attrs, "color=purple")
	}
	if b.Closure {
		attrs = append(attrs, "style=dashed")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
