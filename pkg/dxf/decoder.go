package dxf

import (
	"errors"
	"fmt"
	"io"

	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/geom"
	"github.com/matzehuels/mleader/pkg/mleader"
)

// Decoder reads leader roots from a tagged stream.
//
// Fields absent from the stream keep the defaults of [mleader.NewLeaderRoot]
// and [mleader.NewLeaderLine]. Unknown group codes inside an entity are
// skipped and passed to OnUnknown when it is set.
type Decoder struct {
	r *Reader

	// Resolver looks up line type and arrowhead handles. With a nil
	// Resolver only zero handles decode.
	Resolver catalog.Resolver

	OnUnknown func(Pair)
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, res catalog.Resolver) *Decoder {
	return &Decoder{r: NewReader(r), Resolver: res}
}

// DecodeRoot reads the next framed root. It returns io.EOF if the stream
// holds no more pairs.
func (d *Decoder) DecodeRoot() (*mleader.LeaderRoot, error) {
	t := mleader.RootTags
	p, err := d.r.Next()
	if err != nil {
		return nil, err
	}
	if p.Code != t.Open {
		return nil, syntaxErr(p, fmt.Errorf("%w: expected %d %s", ErrUnexpectedCode, t.Open, t.OpenMarker))
	}

	root := mleader.NewLeaderRoot(0)
	for {
		p, err := d.next()
		if err != nil {
			return nil, err
		}
		if p.Code == t.Close {
			return root, nil
		}
		if p.Code == t.Open {
			return nil, syntaxErr(p, fmt.Errorf("%w: nested %s", ErrUnexpectedCode, t.OpenMarker))
		}
		f, pos, ok := t.Lookup(p.Code)
		if !ok {
			d.unknown(p)
			continue
		}
		if pos != 0 {
			return nil, syntaxErr(p, fmt.Errorf("%w: %s component out of order", ErrUnexpectedCode, f.Name))
		}
		if err := d.decodeRootField(root, f, p); err != nil {
			return nil, err
		}
	}
}

// DecodeRoots reads roots until the end of the stream.
func (d *Decoder) DecodeRoots() ([]*mleader.LeaderRoot, error) {
	var roots []*mleader.LeaderRoot
	for {
		r, err := d.DecodeRoot()
		if errors.Is(err, io.EOF) {
			return roots, nil
		}
		if err != nil {
			return nil, fmt.Errorf("root %d: %w", len(roots), err)
		}
		roots = append(roots, r)
	}
}

func (d *Decoder) decodeRootField(root *mleader.LeaderRoot, f mleader.Field, p Pair) error {
	var err error
	switch f.Name {
	case mleader.FieldContentValid:
		root.ContentValid, err = p.Bool()
	case mleader.FieldUnknown:
		root.Unknown, err = p.Bool()
	case mleader.FieldConnectionPoint:
		root.ConnectionPoint, err = d.readPoint(p, f.Codes)
	case mleader.FieldDirection:
		root.Direction, err = d.readPoint(p, f.Codes)
	case mleader.FieldBreakPairs:
		var pair mleader.StartEndPointPair
		if pair, err = d.readPair(p, f.Codes); err == nil {
			root.AddBreakPair(pair)
		}
	case mleader.FieldLeaderIndex:
		var v int64
		v, err = p.IntN(32)
		root.LeaderIndex = int(v)
	case mleader.FieldLandingDistance:
		root.LandingDistance, err = p.Double()
	case mleader.FieldLines:
		var l *mleader.LeaderLine
		if l, err = d.decodeLine(); err == nil {
			root.AddLine(l)
		}
	case mleader.FieldTextAttachmentDirection:
		var v int64
		v, err = p.IntN(16)
		root.TextAttachmentDirection = mleader.TextAttachmentDirection(v)
	}
	return err
}

// decodeLine reads a line body after its open marker has been consumed.
func (d *Decoder) decodeLine() (*mleader.LeaderLine, error) {
	t := mleader.LineTags
	l := mleader.NewLeaderLine(0)
	for {
		p, err := d.next()
		if err != nil {
			return nil, err
		}
		switch p.Code {
		case t.Close:
			return l, nil
		case t.Open, mleader.RootTags.Open, mleader.RootTags.Close:
			return nil, syntaxErr(p, fmt.Errorf("%w: inside %s", ErrUnexpectedCode, t.OpenMarker))
		}
		f, pos, ok := t.Lookup(p.Code)
		if !ok {
			d.unknown(p)
			continue
		}
		if pos != 0 {
			return nil, syntaxErr(p, fmt.Errorf("%w: %s component out of order", ErrUnexpectedCode, f.Name))
		}
		if err := d.decodeLineField(l, f, p); err != nil {
			return nil, err
		}
	}
}

func (d *Decoder) decodeLineField(l *mleader.LeaderLine, f mleader.Field, p Pair) error {
	var (
		v   int64
		err error
	)
	switch f.Name {
	case mleader.FieldPoints:
		var pt geom.XYZ
		if pt, err = d.readPoint(p, f.Codes); err == nil {
			l.AddPoint(pt)
		}
	case mleader.FieldStartEndPoints:
		var pair mleader.StartEndPointPair
		if pair, err = d.readPair(p, f.Codes); err == nil {
			l.AddBreakPair(pair)
		}
	case mleader.FieldSegmentIndex:
		v, err = p.IntN(32)
		l.SegmentIndex = int(v)
	case mleader.FieldIndex:
		v, err = p.IntN(32)
		l.Index = int(v)
	case mleader.FieldPathType:
		v, err = p.IntN(16)
		l.PathType = mleader.PathType(v)
	case mleader.FieldLineColor:
		v, err = p.IntN(32)
		l.LineColor = catalog.ColorFromRaw(int32(v))
	case mleader.FieldLineType:
		l.LineType, err = d.lineType(p)
	case mleader.FieldLineWeight:
		v, err = p.IntN(16)
		l.LineWeight = catalog.LineWeight(v)
	case mleader.FieldArrowheadSize:
		l.ArrowheadSize, err = p.Double()
	case mleader.FieldArrowhead:
		l.Arrowhead, err = d.block(p)
	case mleader.FieldOverrideFlags:
		v, err = p.IntN(32)
		l.OverrideFlags = mleader.OverrideFlags(v)
	}
	return err
}

// next is Reader.Next for use inside an entity, where EOF is an error.
func (d *Decoder) next() (Pair, error) {
	p, err := d.r.Next()
	if errors.Is(err, io.EOF) {
		return Pair{}, &SyntaxError{Line: d.r.Line(), Err: ErrUnexpectedEOF}
	}
	return p, err
}

func (d *Decoder) unknown(p Pair) {
	if d.OnUnknown != nil {
		d.OnUnknown(p)
	}
}

// readPoint reads a point whose first component is in first and whose
// remaining components follow under codes[1] and codes[2].
func (d *Decoder) readPoint(first Pair, codes []int) (geom.XYZ, error) {
	var v [3]float64
	if err := d.readComponents(first, codes, v[:]); err != nil {
		return geom.XYZ{}, err
	}
	return geom.FromArray(v), nil
}

func (d *Decoder) readPair(first Pair, codes []int) (mleader.StartEndPointPair, error) {
	var v [6]float64
	if err := d.readComponents(first, codes, v[:]); err != nil {
		return mleader.StartEndPointPair{}, err
	}
	start := geom.New(v[0], v[1], v[2])
	end := geom.New(v[3], v[4], v[5])
	return mleader.NewStartEndPointPair(start, end), nil
}

func (d *Decoder) readComponents(first Pair, codes []int, out []float64) error {
	p := first
	for i := range codes {
		if i > 0 {
			var err error
			if p, err = d.next(); err != nil {
				return err
			}
		}
		if p.Code != codes[i] {
			return syntaxErr(p, fmt.Errorf("%w: expected %d", ErrUnexpectedCode, codes[i]))
		}
		v, err := p.Double()
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}

func (d *Decoder) lineType(p Pair) (*catalog.LineType, error) {
	h, err := p.Handle()
	if err != nil || h.IsZero() {
		return nil, err
	}
	if d.Resolver != nil {
		if lt, ok := d.Resolver.LineType(h); ok {
			return lt, nil
		}
	}
	return nil, syntaxErr(p, fmt.Errorf("%w: line type %s", ErrUnresolvedHandle, h))
}

func (d *Decoder) block(p Pair) (*catalog.BlockRecord, error) {
	h, err := p.Handle()
	if err != nil || h.IsZero() {
		return nil, err
	}
	if d.Resolver != nil {
		if b, ok := d.Resolver.BlockRecord(h); ok {
			return b, nil
		}
	}
	return nil, syntaxErr(p, fmt.Errorf("%w: block %s", ErrUnresolvedHandle, h))
}
