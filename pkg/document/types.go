package document

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/dxf"
	"github.com/matzehuels/mleader/pkg/geom"
	"github.com/matzehuels/mleader/pkg/mleader"
)

// =============================================================================
// Document
// =============================================================================

// Document is the canonical serialization of a set of leader roots.
type Document struct {
	ID        string    `json:"id" yaml:"id" bson:"_id"`
	Name      string    `json:"name,omitempty" yaml:"name,omitempty" bson:"name"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at" bson:"created_at"`
	Roots     []Root    `json:"roots" yaml:"roots" bson:"roots"`
}

// Point is an x, y, z triple.
type Point [3]float64

// Pair is a serialized break pair.
type Pair struct {
	Start Point `json:"start" yaml:"start" bson:"start"`
	End   Point `json:"end" yaml:"end" bson:"end"`
}

// Root is a serialized [mleader.LeaderRoot].
type Root struct {
	ContentValid    bool    `json:"content_valid" yaml:"content_valid" bson:"content_valid"`
	Unknown         bool    `json:"unknown" yaml:"unknown" bson:"unknown"`
	ConnectionPoint Point   `json:"connection_point" yaml:"connection_point" bson:"connection_point"`
	Direction       Point   `json:"direction" yaml:"direction" bson:"direction"`
	BreakPairs      []Pair  `json:"break_pairs,omitempty" yaml:"break_pairs,omitempty" bson:"break_pairs,omitempty"`
	LeaderIndex     int     `json:"leader_index" yaml:"leader_index" bson:"leader_index"`
	LandingDistance Float   `json:"landing_distance" yaml:"landing_distance" bson:"landing_distance"`
	Lines           []Line  `json:"lines,omitempty" yaml:"lines,omitempty" bson:"lines,omitempty"`
	TextAttachment  string  `json:"text_attachment" yaml:"text_attachment" bson:"text_attachment"`
}

// Line is a serialized [mleader.LeaderLine]. LineType and Arrowhead are hex
// handles, empty when the line has no reference.
type Line struct {
	Index          int     `json:"index" yaml:"index" bson:"index"`
	Points         []Point `json:"points,omitempty" yaml:"points,omitempty" bson:"points,omitempty"`
	BreakInfoCount int     `json:"break_info_count,omitempty" yaml:"break_info_count,omitempty" bson:"break_info_count,omitempty"`
	SegmentIndex   int     `json:"segment_index" yaml:"segment_index" bson:"segment_index"`
	StartEndPoints []Pair  `json:"start_end_points,omitempty" yaml:"start_end_points,omitempty" bson:"start_end_points,omitempty"`
	PathType       string  `json:"path_type" yaml:"path_type" bson:"path_type"`
	Color          uint32  `json:"color" yaml:"color" bson:"color"`
	LineType       string  `json:"line_type,omitempty" yaml:"line_type,omitempty" bson:"line_type,omitempty"`
	LineWeight     int16   `json:"line_weight" yaml:"line_weight" bson:"line_weight"`
	ArrowheadSize  Float   `json:"arrowhead_size" yaml:"arrowhead_size" bson:"arrowhead_size"`
	Arrowhead      string  `json:"arrowhead,omitempty" yaml:"arrowhead,omitempty" bson:"arrowhead,omitempty"`
	Overrides      string  `json:"overrides" yaml:"overrides" bson:"overrides"`
}

// New creates a document with a random ID and the current time.
func New(name string, roots []*mleader.LeaderRoot) Document {
	return Document{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		Roots:     FromRoots(roots),
	}
}

// LineCount returns the number of lines across all roots.
func (d Document) LineCount() int {
	n := 0
	for _, r := range d.Roots {
		n += len(r.Lines)
	}
	return n
}

// =============================================================================
// Core ↔ Document Conversion
// =============================================================================

// FromRoots converts core roots to their serialized form. Nil roots and nil
// lines are skipped.
func FromRoots(roots []*mleader.LeaderRoot) []Root {
	var out []Root
	for _, r := range roots {
		if r == nil {
			continue
		}
		out = append(out, rootFromCore(r))
	}
	return out
}

// ToRoots rebuilds core roots, resolving handles through res. A nil res
// resolves nothing, so only documents without references convert.
func (d Document) ToRoots(res catalog.Resolver) ([]*mleader.LeaderRoot, error) {
	var out []*mleader.LeaderRoot
	for i, rj := range d.Roots {
		r, err := rootToCore(rj, res)
		if err != nil {
			return nil, fmt.Errorf("root %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// =============================================================================
// Internal Helpers
// =============================================================================

func pointFrom(p geom.XYZ) Point { return Point(p.Array()) }

func (p Point) xyz() geom.XYZ { return geom.FromArray(p) }

func pairsFrom(src []mleader.StartEndPointPair) []Pair {
	var out []Pair
	for _, p := range src {
		out = append(out, Pair{Start: pointFrom(p.StartPoint()), End: pointFrom(p.EndPoint())})
	}
	return out
}

func pairsTo(src []Pair) []mleader.StartEndPointPair {
	var out []mleader.StartEndPointPair
	for _, p := range src {
		out = append(out, mleader.NewStartEndPointPair(p.Start.xyz(), p.End.xyz()))
	}
	return out
}

func rootFromCore(r *mleader.LeaderRoot) Root {
	out := Root{
		ContentValid:    r.ContentValid,
		Unknown:         r.Unknown,
		ConnectionPoint: pointFrom(r.ConnectionPoint),
		Direction:       pointFrom(r.Direction),
		BreakPairs:      pairsFrom(r.BreakPairs),
		LeaderIndex:     r.LeaderIndex,
		LandingDistance: Float(r.LandingDistance),
		TextAttachment:  r.TextAttachmentDirection.String(),
	}
	for _, l := range r.Lines {
		if l != nil {
			out.Lines = append(out.Lines, lineFromCore(l))
		}
	}
	return out
}

func lineFromCore(l *mleader.LeaderLine) Line {
	out := Line{
		Index:          l.Index,
		BreakInfoCount: l.BreakInfoCount,
		SegmentIndex:   l.SegmentIndex,
		StartEndPoints: pairsFrom(l.StartEndPoints),
		PathType:       l.PathType.String(),
		Color:          uint32(l.LineColor),
		LineWeight:     int16(l.LineWeight),
		ArrowheadSize:  Float(l.ArrowheadSize),
		Overrides:      l.OverrideFlags.String(),
	}
	for _, p := range l.Points {
		out.Points = append(out.Points, pointFrom(p))
	}
	if l.LineType != nil {
		out.LineType = l.LineType.Handle.String()
	}
	if l.Arrowhead != nil {
		out.Arrowhead = l.Arrowhead.Handle.String()
	}
	return out
}

func rootToCore(rj Root, res catalog.Resolver) (*mleader.LeaderRoot, error) {
	attach, err := mleader.ParseTextAttachmentDirection(rj.TextAttachment)
	if err != nil {
		return nil, err
	}
	r := &mleader.LeaderRoot{
		ContentValid:            rj.ContentValid,
		Unknown:                 rj.Unknown,
		ConnectionPoint:         rj.ConnectionPoint.xyz(),
		Direction:               rj.Direction.xyz(),
		BreakPairs:              pairsTo(rj.BreakPairs),
		LeaderIndex:             rj.LeaderIndex,
		LandingDistance:         float64(rj.LandingDistance),
		TextAttachmentDirection: attach,
	}
	for i, lj := range rj.Lines {
		l, err := lineToCore(lj, res)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		r.AddLine(l)
	}
	return r, nil
}

func lineToCore(lj Line, res catalog.Resolver) (*mleader.LeaderLine, error) {
	pathType, err := mleader.ParsePathType(lj.PathType)
	if err != nil {
		return nil, err
	}
	flags, err := mleader.ParseOverrideFlags(lj.Overrides)
	if err != nil {
		return nil, err
	}
	l := &mleader.LeaderLine{
		BreakInfoCount: lj.BreakInfoCount,
		SegmentIndex:   lj.SegmentIndex,
		StartEndPoints: pairsTo(lj.StartEndPoints),
		Index:          lj.Index,
		PathType:       pathType,
		LineColor:      catalog.Color(lj.Color),
		LineWeight:     catalog.LineWeight(lj.LineWeight),
		ArrowheadSize:  float64(lj.ArrowheadSize),
		OverrideFlags:  flags,
	}
	for _, p := range lj.Points {
		l.AddPoint(p.xyz())
	}
	if l.LineType, err = resolveLineType(lj.LineType, res); err != nil {
		return nil, err
	}
	if l.Arrowhead, err = resolveBlock(lj.Arrowhead, res); err != nil {
		return nil, err
	}
	return l, nil
}

func resolveLineType(s string, res catalog.Resolver) (*catalog.LineType, error) {
	h, err := catalog.ParseHandle(s)
	if err != nil || h.IsZero() {
		return nil, err
	}
	if res != nil {
		if lt, ok := res.LineType(h); ok {
			return lt, nil
		}
	}
	return nil, fmt.Errorf("%w: line type %s", dxf.ErrUnresolvedHandle, h)
}

func resolveBlock(s string, res catalog.Resolver) (*catalog.BlockRecord, error) {
	h, err := catalog.ParseHandle(s)
	if err != nil || h.IsZero() {
		return nil, err
	}
	if res != nil {
		if b, ok := res.BlockRecord(h); ok {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: block %s", dxf.ErrUnresolvedHandle, h)
}

// handleResolver resolves every handle to a record carrying only that
// handle. It is enough for encoding, which writes handles and nothing else.
type handleResolver struct{}

func (handleResolver) LineType(h catalog.Handle) (*catalog.LineType, bool) {
	return &catalog.LineType{Handle: h}, true
}

func (handleResolver) BlockRecord(h catalog.Handle) (*catalog.BlockRecord, bool) {
	return &catalog.BlockRecord{Handle: h}, true
}
