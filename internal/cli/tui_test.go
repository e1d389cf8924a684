package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/mleader"
)

func pickerRoots() []*mleader.LeaderRoot {
	cat := catalog.New()
	_ = cat.AddLineType(&catalog.LineType{Handle: 0x14, Name: "DASHED"})
	_ = cat.AddBlockRecord(&catalog.BlockRecord{Handle: 0x1F, Name: "_ClosedFilled"})
	roots := sampleRoots(cat)
	return append(roots, nil, mleader.NewLeaderRoot(7))
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLineListModelFlattensRoots(t *testing.T) {
	m := newLineListModel(pickerRoots())
	if len(m.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(m.Items))
	}
	if m.Items[1].Root.LeaderIndex != 3 {
		t.Errorf("second item belongs to leader %d, want 3", m.Items[1].Root.LeaderIndex)
	}
}

func TestLineListModelNavigation(t *testing.T) {
	var model tea.Model = newLineListModel(pickerRoots())

	steps := []struct {
		key  string
		want int
	}{
		{"down", 1},
		{"down", 1},
		{"up", 0},
		{"up", 0},
		{"G", 1},
		{"g", 0},
		{"j", 1},
		{"k", 0},
	}
	for _, s := range steps {
		model, _ = model.Update(key(s.key))
		if got := model.(LineListModel).Cursor; got != s.want {
			t.Fatalf("after %q cursor = %d, want %d", s.key, got, s.want)
		}
	}
}

func TestLineListModelScrolls(t *testing.T) {
	r := mleader.NewLeaderRoot(0)
	for range 8 {
		r.NewLine()
	}
	m := newLineListModel([]*mleader.LeaderRoot{r})
	m.Height = 3

	var model tea.Model = m
	for range 5 {
		model, _ = model.Update(key("down"))
	}
	got := model.(LineListModel)
	if got.Cursor != 5 || got.Offset != 3 {
		t.Errorf("cursor=%d offset=%d, want 5 and 3", got.Cursor, got.Offset)
	}
}

func TestLineListModelQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		msg := key(k)
		if k == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		}
		_, cmd := newLineListModel(pickerRoots()).Update(msg)
		if cmd == nil {
			t.Fatalf("%q should quit", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q should return tea.Quit", k)
		}
	}
}

func TestLineListModelWindowSize(t *testing.T) {
	model, _ := newLineListModel(pickerRoots()).Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if h := model.(LineListModel).Height; h != 5 {
		t.Errorf("Height = %d, want minimum of 5", h)
	}
}

func TestLineListModelView(t *testing.T) {
	view := newLineListModel(pickerRoots()).View()
	for _, want := range []string{"Leader Lines", "leader 0 · line 0", "leader 3 · line 0", "DASHED", "_ClosedFilled", "[1/2]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestLineListModelEmptyView(t *testing.T) {
	view := newLineListModel(nil).View()
	if !strings.Contains(view, "[0/0]") {
		t.Errorf("unexpected empty view:\n%s", view)
	}
}
