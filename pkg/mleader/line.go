package mleader

import (
	"slices"

	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/geom"
)

// LeaderLine is one polyline from the landing point to the content it labels.
//
// Points and StartEndPoints are owned by the line. LineType and Arrowhead
// point at shared catalog records and are never copied by [LeaderLine.Clone].
//
// The style fields (PathType through Arrowhead) are only meaningful when the
// matching bit of OverrideFlags is set; otherwise the leader style's value
// applies. The Set* methods keep the two in step. Assigning a field directly
// leaves OverrideFlags untouched, and keeping them consistent is then the
// caller's job.
type LeaderLine struct {
	Points         []geom.XYZ
	BreakInfoCount int
	SegmentIndex   int
	StartEndPoints []StartEndPointPair

	// Index identifies the line within its LeaderRoot.
	Index int

	PathType      PathType
	LineColor     catalog.Color
	LineType      *catalog.LineType
	LineWeight    catalog.LineWeight
	ArrowheadSize float64
	Arrowhead     *catalog.BlockRecord
	OverrideFlags OverrideFlags
}

// NewLeaderLine creates an empty straight line with the given index.
func NewLeaderLine(index int) *LeaderLine {
	return &LeaderLine{
		Index:      index,
		PathType:   PathStraight,
		LineColor:  catalog.ByBlock(),
		LineWeight: catalog.LineWeightByBlock,
	}
}

// AddPoint appends a vertex.
func (l *LeaderLine) AddPoint(p geom.XYZ) {
	l.Points = append(l.Points, p)
}

// Point returns the i-th vertex. It panics if i is out of range.
func (l *LeaderLine) Point(i int) geom.XYZ { return l.Points[i] }

// SetPoint replaces the i-th vertex. It panics if i is out of range.
func (l *LeaderLine) SetPoint(i int, p geom.XYZ) { l.Points[i] = p }

// PointCount returns the number of vertices.
func (l *LeaderLine) PointCount() int { return len(l.Points) }

// AddBreakPair appends a break pair.
func (l *LeaderLine) AddBreakPair(p StartEndPointPair) {
	l.StartEndPoints = append(l.StartEndPoints, p)
}

// SetPathType sets the path type as an override.
func (l *LeaderLine) SetPathType(p PathType) {
	l.PathType = p
	l.OverrideFlags = l.OverrideFlags.Set(OverridePathType)
}

// SetLineColor sets the colour as an override.
func (l *LeaderLine) SetLineColor(c catalog.Color) {
	l.LineColor = c
	l.OverrideFlags = l.OverrideFlags.Set(OverrideLineColor)
}

// SetLineType sets the line type as an override.
func (l *LeaderLine) SetLineType(lt *catalog.LineType) {
	l.LineType = lt
	l.OverrideFlags = l.OverrideFlags.Set(OverrideLineType)
}

// SetLineWeight sets the line weight as an override.
func (l *LeaderLine) SetLineWeight(w catalog.LineWeight) {
	l.LineWeight = w
	l.OverrideFlags = l.OverrideFlags.Set(OverrideLineWeight)
}

// SetArrowheadSize sets the arrowhead size as an override.
func (l *LeaderLine) SetArrowheadSize(size float64) {
	l.ArrowheadSize = size
	l.OverrideFlags = l.OverrideFlags.Set(OverrideArrowheadSize)
}

// SetArrowhead sets the arrowhead block as an override.
func (l *LeaderLine) SetArrowhead(b *catalog.BlockRecord) {
	l.Arrowhead = b
	l.OverrideFlags = l.OverrideFlags.Set(OverrideArrowhead)
}

// ClearOverride drops the given override bits. The field values are kept.
func (l *LeaderLine) ClearOverride(flag OverrideFlags) {
	l.OverrideFlags = l.OverrideFlags.Clear(flag)
}

// Clone returns a deep copy of l. Vertices and break pairs are copied into
// new slices; LineType and Arrowhead keep pointing at the same records.
// A nil line clones to nil.
func (l *LeaderLine) Clone() *LeaderLine {
	if l == nil {
		return nil
	}
	clone := *l
	clone.Points = slices.Clone(l.Points)
	clone.StartEndPoints = cloneAll(l.StartEndPoints)
	return &clone
}

// Equal reports whether l and o hold equal values. Catalog references are
// equal when they are the same record, or records with the same handle.
// Coordinates and sizes compare with ==, so a line holding NaN is not
// Equal to anything, its own clone included.
func (l *LeaderLine) Equal(o *LeaderLine) bool {
	if l == nil || o == nil {
		return l == o
	}
	return slices.Equal(l.Points, o.Points) &&
		l.BreakInfoCount == o.BreakInfoCount &&
		l.SegmentIndex == o.SegmentIndex &&
		pairsEqual(l.StartEndPoints, o.StartEndPoints) &&
		l.Index == o.Index &&
		l.PathType == o.PathType &&
		l.LineColor == o.LineColor &&
		sameLineType(l.LineType, o.LineType) &&
		l.LineWeight == o.LineWeight &&
		l.ArrowheadSize == o.ArrowheadSize &&
		sameBlock(l.Arrowhead, o.Arrowhead) &&
		l.OverrideFlags == o.OverrideFlags
}

func sameLineType(a, b *catalog.LineType) bool {
	if a == b {
		return true
	}
	return a != nil && b != nil && a.Handle == b.Handle
}

func sameBlock(a, b *catalog.BlockRecord) bool {
	if a == b {
		return true
	}
	return a != nil && b != nil && a.Handle == b.Handle
}
