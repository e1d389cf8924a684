package mleader

import (
	"slices"

	"github.com/matzehuels/mleader/pkg/geom"
)

// LeaderRoot is the geometric anchor of one leader group: where its lines
// connect, which way the landing points, and the lines and breaks that belong
// to it.
//
// LeaderIndex must be unique among the roots of one annotation context. The
// owning context enforces that; LeaderRoot does not. Direction is stored as
// given and is not renormalized.
type LeaderRoot struct {
	ContentValid    bool
	Unknown         bool
	ConnectionPoint geom.XYZ
	Direction       geom.XYZ
	BreakPairs      []StartEndPointPair
	LeaderIndex     int
	LandingDistance float64
	Lines           []*LeaderLine

	TextAttachmentDirection TextAttachmentDirection
}

// NewLeaderRoot creates a root with no lines. ContentValid and Unknown start
// out true, matching what drawing programs write.
func NewLeaderRoot(leaderIndex int) *LeaderRoot {
	return &LeaderRoot{
		ContentValid: true,
		Unknown:      true,
		Direction:    geom.XAxis,
		LeaderIndex:  leaderIndex,
	}
}

// AddLine appends a line. The line's Index is left as is.
func (r *LeaderRoot) AddLine(l *LeaderLine) {
	r.Lines = append(r.Lines, l)
}

// NewLine creates a line with the next free index and appends it.
func (r *LeaderRoot) NewLine() *LeaderLine {
	l := NewLeaderLine(r.NextLineIndex())
	r.AddLine(l)
	return l
}

// AddBreakPair appends a break pair.
func (r *LeaderRoot) AddBreakPair(p StartEndPointPair) {
	r.BreakPairs = append(r.BreakPairs, p)
}

// RemoveLine removes and returns the line at position i.
// It panics if i is out of range.
func (r *LeaderRoot) RemoveLine(i int) *LeaderLine {
	l := r.Lines[i]
	r.Lines = slices.Delete(r.Lines, i, i+1)
	return l
}

// RemoveBreakPair removes and returns the break pair at position i.
// It panics if i is out of range.
func (r *LeaderRoot) RemoveBreakPair(i int) StartEndPointPair {
	p := r.BreakPairs[i]
	r.BreakPairs = slices.Delete(r.BreakPairs, i, i+1)
	return p
}

// LineByIndex finds the line whose Index equals index.
func (r *LeaderRoot) LineByIndex(index int) (*LeaderLine, bool) {
	for _, l := range r.Lines {
		if l != nil && l.Index == index {
			return l, true
		}
	}
	return nil, false
}

// NextLineIndex returns one more than the largest line index, or 0 when the
// root has no lines.
func (r *LeaderRoot) NextLineIndex() int {
	next := 0
	for _, l := range r.Lines {
		if l != nil && l.Index >= next {
			next = l.Index + 1
		}
	}
	return next
}

// Clone returns a deep copy of r: scalars by value, every break pair and
// every line cloned into new slices. Only the catalog records referenced by
// lines are shared with r. A nil root clones to nil.
func (r *LeaderRoot) Clone() *LeaderRoot {
	if r == nil {
		return nil
	}
	clone := *r
	clone.BreakPairs = cloneAll(r.BreakPairs)
	clone.Lines = cloneAll(r.Lines)
	return &clone
}

// Equal reports whether r and o hold equal values, recursively. Floats
// compare with ==, so a root holding NaN anywhere never equals its clone.
func (r *LeaderRoot) Equal(o *LeaderRoot) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.ContentValid != o.ContentValid ||
		r.Unknown != o.Unknown ||
		r.ConnectionPoint != o.ConnectionPoint ||
		r.Direction != o.Direction ||
		r.LeaderIndex != o.LeaderIndex ||
		r.LandingDistance != o.LandingDistance ||
		r.TextAttachmentDirection != o.TextAttachmentDirection ||
		!pairsEqual(r.BreakPairs, o.BreakPairs) ||
		len(r.Lines) != len(o.Lines) {
		return false
	}
	for i := range r.Lines {
		if !r.Lines[i].Equal(o.Lines[i]) {
			return false
		}
	}
	return true
}

// CloneRoots clones every root in roots.
func CloneRoots(roots []*LeaderRoot) []*LeaderRoot {
	return cloneAll(roots)
}
