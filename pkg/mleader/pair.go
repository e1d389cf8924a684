package mleader

import "github.com/matzehuels/mleader/pkg/geom"

// StartEndPointPair delimits one visual break along a leader: the leader is
// not drawn between StartPoint and EndPoint.
//
// A pair is immutable once constructed. It is a plain value, so assignment
// copies it and == compares it.
type StartEndPointPair struct {
	start geom.XYZ
	end   geom.XYZ
}

// NewStartEndPointPair creates a break pair. The points are stored as given.
func NewStartEndPointPair(start, end geom.XYZ) StartEndPointPair {
	return StartEndPointPair{start: start, end: end}
}

// StartPoint returns where the break begins.
func (p StartEndPointPair) StartPoint() geom.XYZ { return p.start }

// EndPoint returns where the break ends.
func (p StartEndPointPair) EndPoint() geom.XYZ { return p.end }

// Clone returns p. Pairs hold no references, so a value copy is independent.
func (p StartEndPointPair) Clone() StartEndPointPair { return p }

// Equal reports whether both points are equal.
func (p StartEndPointPair) Equal(o StartEndPointPair) bool {
	return p.start == o.start && p.end == o.end
}

func (p StartEndPointPair) String() string {
	return p.start.String() + " → " + p.end.String()
}

func pairsEqual(a, b []StartEndPointPair) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
