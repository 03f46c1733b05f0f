// Package production provides production integrations: visualization and
// publishing of state changes.
package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/comalice/signalx"
	"github.com/comalice/signalx/internal/schema"
)

// DefaultVisualizer renders circuits for humans and tools.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source for the circuit. Nodes in the true
// state are filled.
func (v *DefaultVisualizer) ExportDOT(c *signalx.Circuit) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", dotID(c.ID()))
	buf.WriteString(`  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	nodes := c.Nodes()
	for _, n := range nodes {
		renderNode(&buf, n)
	}
	for _, e := range collectEdges(nodes) {
		fmt.Fprintf(&buf, "  %s -> %s;\n", dotID(e.From), dotID(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the circuit, with current states as initial values.
func (v *DefaultVisualizer) ExportJSON(c *signalx.Circuit) ([]byte, error) {
	return json.MarshalIndent(schema.FromCircuit(c), "", "  ")
}

// Edge represents a wire between two nodes.
type Edge struct {
	From string
	To   string
}

// collectEdges lists every output edge in node then output order.
func collectEdges(nodes []*signalx.Node) []Edge {
	var edges []Edge
	for _, n := range nodes {
		for _, out := range n.Outputs() {
			edges = append(edges, Edge{From: n.Name(), To: out.Name()})
		}
	}
	return edges
}

func renderNode(buf *bytes.Buffer, n *signalx.Node) {
	style := ""
	if n.State() {
		style = ` style="rounded,filled" fillcolor=gold`
	}
	fmt.Fprintf(buf, "  %s [label=%s%s];\n", dotID(n.Name()), dotID(fmt.Sprintf("%s (%t)", n.Name(), n.State())), style)
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotID quotes s as a DOT string. Only quote and backslash are escaped; DOT
// has no other escapes and takes UTF-8 as is.
func dotID(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
