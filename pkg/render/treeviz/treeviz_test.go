package treeviz

import (
	"strings"
	"testing"

	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/geom"
	"github.com/matzehuels/mleader/pkg/mleader"
)

func sharedRoots() []*mleader.LeaderRoot {
	arrow := &catalog.BlockRecord{Handle: 0x1F, Name: "_ClosedFilled"}
	dashed := &catalog.LineType{Handle: 0x14, Name: "DASHED", Pattern: []float64{0.5, -0.25}}

	r := mleader.NewLeaderRoot(0)
	r.AddBreakPair(mleader.NewStartEndPointPair(geom.Zero, geom.XAxis))
	for i := 0; i < 2; i++ {
		l := r.NewLine()
		l.AddPoint(geom.New(float64(i), 0, 0))
		l.SetArrowhead(arrow)
	}
	r.Lines[1].SetLineType(dashed)
	r.Lines[1].AddBreakPair(mleader.NewStartEndPointPair(geom.Zero, geom.YAxis))

	return []*mleader.LeaderRoot{r, r.Clone()}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sharedRoots(), Options{})

	for _, want := range []string{
		`"root0" [label="Leader 0"`,
		`"root1.line1" [label="Line 1\n1 points"]`,
		`"root0" -> "root0.break0";`,
		`"root1" -> "root1.line0";`,
		`"root0.line1" -> "root0.line1.break0";`,
		`"root1.line1" -> "linetype:14" [style=dashed, label="linetype"];`,
		`"root1.line0" -> "block:1F" [style=dashed, label="arrowhead"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s\n%s", want, dot)
		}
	}

	// The clone shares records with its source, so each appears once.
	if n := strings.Count(dot, `"block:1F" [label=`); n != 1 {
		t.Errorf("block node emitted %d times, want 1", n)
	}
	if n := strings.Count(dot, `-> "block:1F"`); n != 4 {
		t.Errorf("arrowhead edges = %d, want 4", n)
	}
}

func TestToDOTOptions(t *testing.T) {
	roots := sharedRoots()

	if strings.Contains(ToDOT(roots, Options{}), "pattern:") {
		t.Error("pattern length belongs to detailed labels only")
	}

	hidden := ToDOT(roots, Options{HideRecords: true})
	if strings.Contains(hidden, "block:") || strings.Contains(hidden, "linetype:") {
		t.Error("HideRecords should drop record nodes")
	}

	detailed := ToDOT(roots, Options{Detailed: true})
	for _, want := range []string{"landing: 0", "path: Straight", "overrides: Arrowhead", "(0, 0, 0) → (1, 0, 0)", "pattern: 0.75"} {
		if !strings.Contains(detailed, want) {
			t.Errorf("detailed DOT missing %q", want)
		}
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(nil, Options{})
	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("unexpected DOT:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("empty input should have no edges")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(sharedRoots(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.Contains(string(svg), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("SVG header not normalized: %.200s", svg)
	}
}

func TestRenderSVGInvalid(t *testing.T) {
	if _, err := RenderSVG("digraph {"); err == nil {
		t.Error("expected parse error")
	}
}
