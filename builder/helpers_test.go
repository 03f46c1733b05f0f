package builder

import (
	"testing"

	"github.com/comalice/signalx"
)

func TestChain(t *testing.T) {
	nodes := Nodes("n", 4)
	head := Chain(nodes...)
	if head != nodes[0] {
		t.Fatal("Chain should return the head")
	}

	head.SetState(true)
	for _, n := range nodes {
		if !n.State() {
			t.Errorf("%s should be on", n.Name())
		}
	}
	if !nodes[3].HasInput(nodes[2]) || nodes[3].HasInput(nodes[1]) {
		t.Error("chain wired the wrong inputs")
	}

	if Chain() != nil {
		t.Error("empty chain should return nil")
	}
}

func TestFanOutFanIn(t *testing.T) {
	src := signalx.NewNode(signalx.WithName("src"))
	mid := Nodes("mid", 3)
	sink := signalx.NewNode(signalx.WithName("sink"))

	if FanOut(src, mid...) != src {
		t.Error("FanOut should return src")
	}
	if FanIn(sink, mid...) != sink {
		t.Error("FanIn should return dst")
	}

	if got := len(src.Outputs()); got != 3 {
		t.Errorf("src outputs = %d, want 3", got)
	}
	if got := len(sink.Inputs()); got != 3 {
		t.Errorf("sink inputs = %d, want 3", got)
	}

	src.SetState(true)
	if !sink.State() {
		t.Error("sink should be on")
	}
}

func TestNodesNamingAndOptions(t *testing.T) {
	nodes := Nodes("bit", 3, signalx.WithMode(signalx.ModeOnce), signalx.WithName("ignored"))
	for i, want := range []string{"bit0", "bit1", "bit2"} {
		if nodes[i].Name() != want {
			t.Errorf("node %d named %q, want %q", i, nodes[i].Name(), want)
		}
		if nodes[i].Mode() != signalx.ModeOnce {
			t.Errorf("node %d mode = %v", i, nodes[i].Mode())
		}
	}
	if len(Nodes("x", 0)) != 0 {
		t.Error("zero count should return no nodes")
	}
}
