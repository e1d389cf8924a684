package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/mleader"
	"github.com/matzehuels/mleader/pkg/pipeline"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the leader roots and lines of a document",
		Long: `Inspect decodes a document and prints a summary of its roots followed by a
table of all leader lines. With --interactive, browse the lines in a
terminal picker instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if interactive {
				return runLinePicker(cmd.Context(), c.Out, loaded.Roots)
			}
			printSummary(c.Out, args[0], loaded)
			fmt.Fprintln(c.Out)
			renderLinesTable(c.Out, loaded.Roots)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse lines interactively")
	return cmd
}

// load decodes path with a runner built from the current config.
func (c *CLI) load(ctx context.Context, path string) (*pipeline.Loaded, error) {
	src, err := pipeline.SourceFromFile(path)
	if err != nil {
		return nil, err
	}
	runner, ch, err := c.newRunner(ctx)
	if err != nil {
		return nil, err
	}
	defer ch.Close()
	return runner.Load(ctx, src)
}

func printSummary(w io.Writer, path string, loaded *pipeline.Loaded) {
	doc := loaded.Document
	fmt.Fprintln(w, StyleTitle.Render(doc.Name))
	printKeyValue(w, "File", path)
	if doc.ID != "" {
		printKeyValue(w, "ID", doc.ID)
	}
	printStats(w, len(loaded.Roots), doc.LineCount(), loaded.CacheHit)

	for _, r := range loaded.Roots {
		if r == nil {
			continue
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Leader %d", r.LeaderIndex)))
		printKeyValue(w, "Connection", r.ConnectionPoint.String())
		printKeyValue(w, "Direction", r.Direction.String())
		printKeyValue(w, "Landing", fmt.Sprintf("%g", r.LandingDistance))
		printKeyValue(w, "Attachment", r.TextAttachmentDirection.String())
		printKeyValue(w, "Lines", fmt.Sprint(len(r.Lines)))
		for i, p := range r.BreakPairs {
			printDetail(w, "break %d: %s", i, p)
		}
	}
}

// renderLinesTable writes one row per leader line.
func renderLinesTable(w io.Writer, roots []*mleader.LeaderRoot) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Leader", "Line", "Points", "Breaks", "Path", "Color", "Line type", "Weight", "Arrowhead", "Size", "Overrides"})

	n := 0
	for _, r := range roots {
		if r == nil {
			continue
		}
		for _, l := range r.Lines {
			if l == nil {
				continue
			}
			t.AppendRow(table.Row{
				r.LeaderIndex,
				l.Index,
				len(l.Points),
				len(l.StartEndPoints),
				l.PathType,
				l.LineColor,
				lineTypeName(l.LineType),
				l.LineWeight,
				blockName(l.Arrowhead),
				fmt.Sprintf("%g", l.ArrowheadSize),
				l.OverrideFlags,
			})
			n++
		}
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", "", "", "", "", plural(n, "line")})
	t.Render()
}

func lineTypeName(lt *catalog.LineType) string {
	switch {
	case lt == nil:
		return "-"
	case lt.Name == "":
		return lt.Handle.String()
	}
	return lt.Name
}

func blockName(b *catalog.BlockRecord) string {
	switch {
	case b == nil:
		return "-"
	case b.Name == "":
		return b.Handle.String()
	}
	return b.Name
}

func runLinePicker(ctx context.Context, w io.Writer, roots []*mleader.LeaderRoot) error {
	m := newLineListModel(roots)
	if len(m.Items) == 0 {
		printInfo(w, "No leader lines")
		return nil
	}
	_, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(w)).Run()
	return err
}
