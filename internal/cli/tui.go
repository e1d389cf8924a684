package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/mleader/pkg/mleader"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// =============================================================================
// LineListModel - Interactive leader line browser
// =============================================================================

// LineItem is one leader line together with the root that owns it.
type LineItem struct {
	Root *mleader.LeaderRoot
	Line *mleader.LeaderLine
}

// LineListModel is the bubbletea model for browsing leader lines. The
// detail pane shows the line under the cursor.
type LineListModel struct {
	Items  []LineItem
	Cursor int
	Height int
	Offset int
}

// newLineListModel flattens roots into one list, skipping nil entries.
func newLineListModel(roots []*mleader.LeaderRoot) LineListModel {
	var items []LineItem
	for _, r := range roots {
		if r == nil {
			continue
		}
		for _, l := range r.Lines {
			if l != nil {
				items = append(items, LineItem{Root: r, Line: l})
			}
		}
	}
	return LineListModel{Items: items, Height: 10}
}

func (m LineListModel) Init() tea.Cmd {
	return nil
}

func (m LineListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = max(len(m.Items)-1, 0)
			m.Offset = max(m.Cursor-m.Height+1, 0)
		}
	case tea.WindowSizeMsg:
		// Leave room for the header and the detail pane.
		m.Height = max(msg.Height-20, 5)
	}
	return m, nil
}

func (m LineListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Leader Lines"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Items))
	for i := m.Offset; i < end; i++ {
		it := m.Items[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%sleader %d · line %d  %s",
			cursor, it.Root.LeaderIndex, it.Line.Index,
			listDimStyle.Render(fmt.Sprintf("%s, %s", plural(len(it.Line.Points), "point"), it.Line.PathType)))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.Items) > 0 {
		b.WriteString("\n")
		b.WriteString(detailBoxStyle.Render(lineDetail(m.Items[m.Cursor].Line)))
		b.WriteString("\n")
	}
	pos := m.Cursor + 1
	if len(m.Items) == 0 {
		pos = 0
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", pos, len(m.Items))))
	return b.String()
}

// lineDetail renders the style fields and vertices of l as a table.
func lineDetail(l *mleader.LeaderLine) string {
	rows := [][]string{
		{"Path", l.PathType.String(), overrideMark(l, mleader.OverridePathType)},
		{"Color", l.LineColor.String(), overrideMark(l, mleader.OverrideLineColor)},
		{"Line type", lineTypeName(l.LineType), overrideMark(l, mleader.OverrideLineType)},
		{"Weight", l.LineWeight.String(), overrideMark(l, mleader.OverrideLineWeight)},
		{"Arrowhead", blockName(l.Arrowhead), overrideMark(l, mleader.OverrideArrowhead)},
		{"Size", fmt.Sprintf("%g", l.ArrowheadSize), overrideMark(l, mleader.OverrideArrowheadSize)},
		{"Segment", fmt.Sprint(l.SegmentIndex), ""},
	}
	for i, p := range l.Points {
		rows = append(rows, []string{fmt.Sprintf("Point %d", i), p.String(), ""})
	}
	for i, p := range l.StartEndPoints {
		rows = append(rows, []string{fmt.Sprintf("Break %d", i), p.String(), ""})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("Field", "Value", "Override").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

func overrideMark(l *mleader.LeaderLine, flag mleader.OverrideFlags) string {
	if l.OverrideFlags.Has(flag) {
		return StyleSuccess.Render("yes")
	}
	return listDimStyle.Render("style")
}
