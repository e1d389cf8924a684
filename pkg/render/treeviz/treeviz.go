// Package treeviz draws the ownership structure of leader roots as a
// Graphviz diagram: roots own lines and break pairs, lines own their own
// break pairs, and catalog records are shared nodes reached by dashed edges.
//
// The diagram shows structure, not geometry. It is meant for checking what a
// clone shares with its source.
package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/mleader"
)

// Options configures the diagram.
type Options struct {
	// Detailed adds coordinates and style values to node labels.
	Detailed bool
	// HideRecords leaves out shared catalog records and their edges.
	HideRecords bool
}

// ToDOT converts roots to Graphviz DOT. Shared records are emitted once, in
// handle order, however many lines reference them.
func ToDOT(roots []*mleader.LeaderRoot, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	lineTypes := map[catalog.Handle]*catalog.LineType{}
	blocks := map[catalog.Handle]*catalog.BlockRecord{}
	var edges []string

	for i, r := range roots {
		if r == nil {
			continue
		}
		rid := fmt.Sprintf("root%d", i)
		node(&buf, rid, rootLabel(r, opts.Detailed), "fillcolor=lightblue")

		for j, p := range r.BreakPairs {
			pid := fmt.Sprintf("%s.break%d", rid, j)
			node(&buf, pid, pairLabel(j, p, opts.Detailed), "shape=note")
			edges = append(edges, edge(rid, pid))
		}
		for j, l := range r.Lines {
			if l == nil {
				continue
			}
			lid := fmt.Sprintf("%s.line%d", rid, j)
			node(&buf, lid, lineLabel(l, opts.Detailed))
			edges = append(edges, edge(rid, lid))

			for k, p := range l.StartEndPoints {
				pid := fmt.Sprintf("%s.break%d", lid, k)
				node(&buf, pid, pairLabel(k, p, opts.Detailed), "shape=note")
				edges = append(edges, edge(lid, pid))
			}
			if opts.HideRecords {
				continue
			}
			if l.LineType != nil {
				lineTypes[l.LineType.Handle] = l.LineType
				edges = append(edges, edge(lid, lineTypeID(l.LineType), "style=dashed", `label="linetype"`))
			}
			if l.Arrowhead != nil {
				blocks[l.Arrowhead.Handle] = l.Arrowhead
				edges = append(edges, edge(lid, blockID(l.Arrowhead), "style=dashed", `label="arrowhead"`))
			}
		}
	}

	for _, h := range slices.Sorted(maps.Keys(lineTypes)) {
		lt := lineTypes[h]
		node(&buf, lineTypeID(lt), lineTypeLabel(lt, opts.Detailed), "shape=ellipse", "fillcolor=lightyellow")
	}
	for _, h := range slices.Sorted(maps.Keys(blocks)) {
		b := blocks[h]
		node(&buf, blockID(b), fmt.Sprintf("Block %s\n%s", b.Handle, b.Name), "shape=ellipse", "fillcolor=lightyellow")
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func node(buf *bytes.Buffer, id, label string, attrs ...string) {
	all := append([]string{fmt.Sprintf("label=%q", label)}, attrs...)
	fmt.Fprintf(buf, "  %q [%s];\n", id, strings.Join(all, ", "))
}

func edge(from, to string, attrs ...string) string {
	if len(attrs) == 0 {
		return fmt.Sprintf("  %q -> %q;\n", from, to)
	}
	return fmt.Sprintf("  %q -> %q [%s];\n", from, to, strings.Join(attrs, ", "))
}

func lineTypeID(lt *catalog.LineType) string { return "linetype:" + lt.Handle.String() }

func blockID(b *catalog.BlockRecord) string { return "block:" + b.Handle.String() }

func rootLabel(r *mleader.LeaderRoot, detailed bool) string {
	label := fmt.Sprintf("Leader %d", r.LeaderIndex)
	if !detailed {
		return label
	}
	return strings.Join([]string{
		label,
		"connection: " + r.ConnectionPoint.String(),
		"direction: " + r.Direction.String(),
		"landing: " + strconv.FormatFloat(r.LandingDistance, 'g', -1, 64),
		"attach: " + r.TextAttachmentDirection.String(),
	}, "\n")
}

func lineLabel(l *mleader.LeaderLine, detailed bool) string {
	label := fmt.Sprintf("Line %d\n%d points", l.Index, len(l.Points))
	if !detailed {
		return label
	}
	return strings.Join([]string{
		label,
		"path: " + l.PathType.String(),
		"color: " + l.LineColor.String(),
		"weight: " + l.LineWeight.String(),
		"overrides: " + l.OverrideFlags.String(),
	}, "\n")
}

func lineTypeLabel(lt *catalog.LineType, detailed bool) string {
	label := fmt.Sprintf("LineType %s\n%s", lt.Handle, lt.Name)
	if detailed && len(lt.Pattern) > 0 {
		label += "\npattern: " + strconv.FormatFloat(lt.PatternLength(), 'g', -1, 64)
	}
	return label
}

func pairLabel(i int, p mleader.StartEndPointPair, detailed bool) string {
	if !detailed {
		return fmt.Sprintf("break %d", i)
	}
	return fmt.Sprintf("break %d\n%s", i, p)
}

// RenderSVG renders DOT to SVG with the embedded Graphviz.
func RenderSVG(dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one
// that scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
