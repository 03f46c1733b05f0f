// Tests for DefaultVisualizer DOT and JSON export.
package production

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/comalice/signalx"
	"github.com/comalice/signalx/internal/schema"
)

func hallway(t *testing.T) *signalx.Circuit {
	t.Helper()
	b := signalx.NewCircuitBuilder("hallway")
	b.Node("switch").Drives("lamp")
	b.Node("lamp").Drives("indicator")
	c, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestDefaultVisualizer_ExportDOT_Simple(t *testing.T) {
	v := &DefaultVisualizer{}
	c := hallway(t)
	dot := v.ExportDOT(c)

	if !strings.HasPrefix(dot, `digraph "hallway" {`) {
		t.Error("Missing DOT header")
	}
	for _, name := range []string{"switch", "lamp", "indicator"} {
		if !strings.Contains(dot, `"`+name+`" [label=`) {
			t.Errorf("Missing node %s", name)
		}
	}
	if !strings.Contains(dot, `"switch" -> "lamp";`) || !strings.Contains(dot, `"lamp" -> "indicator";`) {
		t.Error("Missing edge")
	}
	if strings.Contains(dot, "fillcolor") {
		t.Error("No node should be highlighted before any change")
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("Missing closing brace")
	}
}

func TestDefaultVisualizer_ExportDOT_HighlightsTrueNodes(t *testing.T) {
	v := &DefaultVisualizer{}
	c := hallway(t)
	if err := c.Set("switch", true); err != nil {
		t.Fatal(err)
	}

	dot := v.ExportDOT(c)
	if got := strings.Count(dot, "fillcolor=gold"); got != 3 {
		t.Errorf("highlighted nodes = %d, want 3\n%s", got, dot)
	}
	if !strings.Contains(dot, `label="lamp (true)"`) {
		t.Error("Missing state in label")
	}
}

func TestDefaultVisualizer_ExportJSON(t *testing.T) {
	v := &DefaultVisualizer{}
	c := hallway(t)
	if err := c.Set("switch", true); err != nil {
		t.Fatal(err)
	}

	data, err := v.ExportJSON(c)
	if err != nil {
		t.Fatal(err)
	}

	var cfg schema.CircuitConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if cfg.ID != "hallway" || len(cfg.Nodes) != 3 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.Nodes[0].Initial {
		t.Error("switch should be exported as initially true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("exported config does not validate: %v", err)
	}
}

func TestDefaultVisualizer_ExportDOT_Quoting(t *testing.T) {
	b := signalx.NewCircuitBuilder(`hall "A"`)
	b.Node(`say "hi"`).Drives(`back\slash`)
	b.Node(`back\slash`).Drives("café\tbar")
	c, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	dot := (&DefaultVisualizer{}).ExportDOT(c)
	for _, want := range []string{
		`digraph "hall \"A\"" {`,
		`"say \"hi\"" -> "back\\slash";`,
		"\"back\\\\slash\" -> \"café\tbar\";",
		`label="say \"hi\" (false)"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s\n%s", want, dot)
		}
	}
	for _, bad := range []string{`\u`, `\x`, `\t`} {
		if strings.Contains(dot, bad) {
			t.Errorf("DOT contains Go escape %s\n%s", bad, dot)
		}
	}
}
