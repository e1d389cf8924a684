package dxf

import (
	"fmt"
	"io"

	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/mleader"
)

// Encoder writes leader roots to a tagged stream.
type Encoder struct {
	w *Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: NewWriter(w)}
}

// EncodeRoot writes one framed root, including its lines, and flushes.
func (e *Encoder) EncodeRoot(r *mleader.LeaderRoot) error {
	if err := e.encodeRoot(r); err != nil {
		return err
	}
	return e.w.Flush()
}

// EncodeRoots writes roots one after another and flushes once.
func (e *Encoder) EncodeRoots(roots []*mleader.LeaderRoot) error {
	for i, r := range roots {
		if err := e.encodeRoot(r); err != nil {
			return fmt.Errorf("root %d: %w", i, err)
		}
	}
	return e.w.Flush()
}

func (e *Encoder) encodeRoot(r *mleader.LeaderRoot) error {
	if r == nil {
		return ErrNilEntity
	}
	t := mleader.RootTags
	e.w.WriteString(t.Open, t.OpenMarker)
	for _, f := range t.Fields {
		switch f.Name {
		case mleader.FieldContentValid:
			e.w.WriteBool(f.Codes[0], r.ContentValid)
		case mleader.FieldUnknown:
			e.w.WriteBool(f.Codes[0], r.Unknown)
		case mleader.FieldConnectionPoint:
			e.w.WritePoint(f.Codes, r.ConnectionPoint)
		case mleader.FieldDirection:
			e.w.WritePoint(f.Codes, r.Direction)
		case mleader.FieldBreakPairs:
			e.writePairs(f.Codes, r.BreakPairs)
		case mleader.FieldLeaderIndex:
			e.w.WriteInt(f.Codes[0], int64(r.LeaderIndex))
		case mleader.FieldLandingDistance:
			e.w.WriteDouble(f.Codes[0], r.LandingDistance)
		case mleader.FieldLines:
			for i, l := range r.Lines {
				if err := e.encodeLine(l); err != nil {
					return fmt.Errorf("line %d: %w", i, err)
				}
			}
		case mleader.FieldTextAttachmentDirection:
			e.w.WriteInt(f.Codes[0], int64(r.TextAttachmentDirection))
		}
	}
	e.w.WriteString(t.Close, t.CloseMarker)
	return e.w.Err()
}

func (e *Encoder) encodeLine(l *mleader.LeaderLine) error {
	if l == nil {
		return ErrNilEntity
	}
	t := mleader.LineTags
	e.w.WriteString(t.Open, t.OpenMarker)
	for _, f := range t.Fields {
		if !f.Persisted() {
			continue
		}
		switch f.Name {
		case mleader.FieldPoints:
			for _, p := range l.Points {
				e.w.WritePoint(f.Codes, p)
			}
		case mleader.FieldStartEndPoints:
			e.writePairs(f.Codes, l.StartEndPoints)
		case mleader.FieldSegmentIndex:
			e.w.WriteInt(f.Codes[0], int64(l.SegmentIndex))
		case mleader.FieldIndex:
			e.w.WriteInt(f.Codes[0], int64(l.Index))
		case mleader.FieldPathType:
			e.w.WriteInt(f.Codes[0], int64(l.PathType))
		case mleader.FieldLineColor:
			e.w.WriteInt(f.Codes[0], int64(l.LineColor.Raw()))
		case mleader.FieldLineType:
			e.w.WriteHandle(f.Codes[0], lineTypeHandle(l.LineType))
		case mleader.FieldLineWeight:
			e.w.WriteInt(f.Codes[0], int64(l.LineWeight))
		case mleader.FieldArrowheadSize:
			e.w.WriteDouble(f.Codes[0], l.ArrowheadSize)
		case mleader.FieldArrowhead:
			e.w.WriteHandle(f.Codes[0], blockHandle(l.Arrowhead))
		case mleader.FieldOverrideFlags:
			e.w.WriteInt(f.Codes[0], int64(l.OverrideFlags))
		}
	}
	e.w.WriteString(t.Close, t.CloseMarker)
	return e.w.Err()
}

// writePairs writes each pair as its start point followed by its end point.
func (e *Encoder) writePairs(codes []int, pairs []mleader.StartEndPointPair) {
	for _, p := range pairs {
		e.w.WritePoint(codes[:3], p.StartPoint())
		e.w.WritePoint(codes[3:], p.EndPoint())
	}
}

func lineTypeHandle(lt *catalog.LineType) catalog.Handle {
	if lt == nil {
		return 0
	}
	return lt.Handle
}

func blockHandle(b *catalog.BlockRecord) catalog.Handle {
	if b == nil {
		return 0
	}
	return b.Handle
}
