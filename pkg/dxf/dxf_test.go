package dxf

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/geom"
	"github.com/matzehuels/mleader/pkg/mleader"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	require.NoError(t, c.AddLineType(&catalog.LineType{Handle: 0x14, Name: "DASHED", Pattern: []float64{0.5, -0.25}}))
	require.NoError(t, c.AddBlockRecord(&catalog.BlockRecord{Handle: 0x1F, Name: "_ClosedFilled"}))
	return c
}

func encode(t *testing.T, roots ...*mleader.LeaderRoot) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).EncodeRoots(roots))
	return buf.String()
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteBool(290, true)
	w.WriteInt(90, -3)
	w.WriteDouble(40, 0.1)
	w.WriteDouble(41, 1e21)
	w.WriteHandle(340, 0x1F)
	w.WritePoint([]int{10, 20, 30}, geom.New(1, 2.5, 0))
	require.NoError(t, w.Flush())

	want := "290\n1\n 90\n-3\n 40\n0.1\n 41\n1e+21\n340\n1F\n 10\n1\n 20\n2.5\n 30\n0\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeEmptyRoot(t *testing.T) {
	got := encode(t, mleader.NewLeaderRoot(0))
	want := strings.Join([]string{
		"302", "LEADER{",
		"290", "1",
		"291", "1",
		" 10", "0", " 20", "0", " 30", "0",
		" 11", "1", " 21", "0", " 31", "0",
		" 90", "0",
		" 40", "0",
		"271", "0",
		"303", "}",
	}, "\n") + "\n"
	assert.Equal(t, want, got)
}

func TestEncodeLineFieldOrder(t *testing.T) {
	r := mleader.NewLeaderRoot(0)
	l := r.NewLine()
	l.AddPoint(geom.New(1, 1, 0))
	l.AddBreakPair(mleader.NewStartEndPointPair(geom.New(1, 0, 0), geom.New(2, 0, 0)))

	var codes []int
	rd := NewReader(strings.NewReader(encode(t, r)))
	inLine := false
	for {
		p, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		switch {
		case p.Code == mleader.LineTags.Open:
			inLine = true
		case p.Code == mleader.LineTags.Close:
			inLine = false
		case inLine:
			codes = append(codes, p.Code)
		}
	}
	want := []int{10, 20, 30, 12, 22, 32, 13, 23, 33, 90, 91, 170, 92, 340, 171, 40, 341, 93}
	assert.Equal(t, want, codes)
}

func TestRoundTripBasicLeader(t *testing.T) {
	r := mleader.NewLeaderRoot(0)
	r.ConnectionPoint = geom.New(0, 0, 0)
	r.Direction = geom.New(1, 0, 0)
	r.LandingDistance = 2.5
	l := r.NewLine()
	l.PathType = mleader.PathStraight
	l.AddPoint(geom.New(0, 0, 0))
	l.AddPoint(geom.New(2, 0, 0))
	l.AddPoint(geom.New(4, 1, 0))

	got, err := NewDecoder(strings.NewReader(encode(t, r)), nil).DecodeRoot()
	require.NoError(t, err)

	assert.True(t, r.Equal(got))
	assert.Equal(t, 2.5, got.LandingDistance)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, []geom.XYZ{{X: 0}, {X: 2}, {X: 4, Y: 1}}, got.Lines[0].Points)
	assert.Equal(t, mleader.PathStraight, got.Lines[0].PathType)
}

func TestRoundTripResolvesSharedRecords(t *testing.T) {
	cat := testCatalog(t)
	dashed, _ := cat.LineType(0x14)
	arrow, _ := cat.BlockRecord(0x1F)

	r := mleader.NewLeaderRoot(2)
	r.TextAttachmentDirection = mleader.AttachVertical
	r.Direction = geom.New(0.6, 0.8, 0)
	r.ContentValid = false
	r.AddBreakPair(mleader.NewStartEndPointPair(geom.New(1, 2, 3), geom.New(4, 5, 6)))
	for i := 0; i < 2; i++ {
		l := r.NewLine()
		l.SegmentIndex = i
		l.AddPoint(geom.New(float64(i), 0.1, -7))
		l.SetPathType(mleader.PathSpline)
		l.SetLineColor(catalog.FromRGB(10, 20, 30))
		l.SetLineType(dashed)
		l.SetLineWeight(35)
		l.SetArrowheadSize(0.18)
		l.SetArrowhead(arrow)
	}
	r.Lines[1].AddBreakPair(mleader.NewStartEndPointPair(geom.New(0.25, 0, 0), geom.New(0.5, 0, 0)))

	got, err := NewDecoder(strings.NewReader(encode(t, r)), cat).DecodeRoot()
	require.NoError(t, err)

	assert.True(t, r.Equal(got))
	assert.Equal(t, r, got)
	for _, l := range got.Lines {
		assert.Same(t, arrow, l.Arrowhead)
		assert.Same(t, dashed, l.LineType)
	}
}

func TestRoundTripCloneEncodesIdentically(t *testing.T) {
	cat := testCatalog(t)
	arrow, _ := cat.BlockRecord(0x1F)
	r := mleader.NewLeaderRoot(0)
	r.NewLine().SetArrowhead(arrow)
	r.Lines[0].AddPoint(geom.New(3, 3, 3))

	assert.Equal(t, encode(t, r), encode(t, r.Clone()))
}

func TestDecodeRootsPreservesOrder(t *testing.T) {
	var roots []*mleader.LeaderRoot
	for i := 0; i < 3; i++ {
		r := mleader.NewLeaderRoot(i)
		for j := 0; j < 3; j++ {
			p := mleader.NewStartEndPointPair(geom.New(float64(j), 0, 0), geom.New(float64(j), 1, 0))
			r.AddBreakPair(p)
		}
		roots = append(roots, r)
	}

	got, err := NewDecoder(strings.NewReader(encode(t, roots...)), nil).DecodeRoots()
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range roots {
		assert.Equal(t, i, got[i].LeaderIndex)
		assert.Equal(t, roots[i].BreakPairs, got[i].BreakPairs)
	}
}

func TestDecodeRootsEmpty(t *testing.T) {
	got, err := NewDecoder(strings.NewReader("\n\n"), nil).DecodeRoots()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeToleratesCRLFAndSkipsUnknownCodes(t *testing.T) {
	in := "302\r\nLEADER{\r\n\r\n 40\r\n1.25\r\n999\r\nfuture\r\n304\r\nLEADER_LINE{\r\n 42\r\n7\r\n 91\r\n3\r\n305\r\n}\r\n303\r\n}\r\n"

	var skipped []int
	d := NewDecoder(strings.NewReader(in), nil)
	d.OnUnknown = func(p Pair) { skipped = append(skipped, p.Code) }

	r, err := d.DecodeRoot()
	require.NoError(t, err)
	assert.Equal(t, 1.25, r.LandingDistance)
	require.Len(t, r.Lines, 1)
	assert.Equal(t, 3, r.Lines[0].Index)
	assert.Equal(t, []int{999, 42}, skipped)

	// Absent fields keep constructor defaults.
	assert.True(t, r.ContentValid)
	assert.Equal(t, geom.XAxis, r.Direction)
	assert.Equal(t, mleader.PathStraight, r.Lines[0].PathType)
}

func TestDecodeZeroHandleIsNil(t *testing.T) {
	in := "302\nLEADER{\n304\nLEADER_LINE{\n340\n0\n341\n0\n305\n}\n303\n}\n"
	r, err := NewDecoder(strings.NewReader(in), nil).DecodeRoot()
	require.NoError(t, err)
	assert.Nil(t, r.Lines[0].LineType)
	assert.Nil(t, r.Lines[0].Arrowhead)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		res  catalog.Resolver
		want error
	}{
		{"missing open marker", "290\n1\n", nil, ErrUnexpectedCode},
		{"truncated entity", "302\nLEADER{\n290\n1\n", nil, ErrUnexpectedEOF},
		{"missing value", "302\nLEADER{\n290\n", nil, ErrUnexpectedEOF},
		{"bad group code", "302\nLEADER{\nxx\n1\n", nil, ErrMalformedValue},
		{"bad double", "302\nLEADER{\n 40\nabc\n303\n}\n", nil, ErrMalformedValue},
		{"bad bool", "302\nLEADER{\n290\nyes\n303\n}\n", nil, ErrMalformedValue},
		{"component out of order", "302\nLEADER{\n 21\n0\n303\n}\n", nil, ErrUnexpectedCode},
		{"incomplete point", "302\nLEADER{\n 10\n1\n 30\n0\n303\n}\n", nil, ErrUnexpectedCode},
		{"incomplete pair", "302\nLEADER{\n 12\n1\n 22\n1\n 32\n1\n303\n}\n", nil, ErrUnexpectedCode},
		{"nested root", "302\nLEADER{\n302\nLEADER{\n", nil, ErrUnexpectedCode},
		{"unclosed line", "302\nLEADER{\n304\nLEADER_LINE{\n303\n}\n", nil, ErrUnexpectedCode},
		{"unresolved arrowhead", "302\nLEADER{\n304\nLEADER_LINE{\n341\nAB\n305\n}\n303\n}\n", catalog.New(), ErrUnresolvedHandle},
		{"nil resolver", "302\nLEADER{\n304\nLEADER_LINE{\n340\n14\n305\n}\n303\n}\n", nil, ErrUnresolvedHandle},
		{"bad handle", "302\nLEADER{\n304\nLEADER_LINE{\n340\nzz\n305\n}\n303\n}\n", nil, ErrMalformedValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder(strings.NewReader(tt.in), tt.res).DecodeRoot()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var se *SyntaxError
			assert.ErrorAs(t, err, &se)
		})
	}
}

func TestSyntaxErrorLocation(t *testing.T) {
	in := "302\nLEADER{\n 40\nabc\n303\n}\n"
	_, err := NewDecoder(strings.NewReader(in), nil).DecodeRoot()

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 3, se.Line)
	assert.Equal(t, 40, se.Code)
	assert.Contains(t, err.Error(), "line 3")
}

func TestDecodeRootsWrapsIndex(t *testing.T) {
	in := encode(t, mleader.NewLeaderRoot(0)) + "302\nLEADER{\n"
	_, err := NewDecoder(strings.NewReader(in), nil).DecodeRoots()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root 1")
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestEncodeNil(t *testing.T) {
	var buf bytes.Buffer
	err := NewEncoder(&buf).EncodeRoot(nil)
	assert.ErrorIs(t, err, ErrNilEntity)

	r := mleader.NewLeaderRoot(0)
	r.AddLine(nil)
	err = NewEncoder(&buf).EncodeRoots([]*mleader.LeaderRoot{r})
	assert.ErrorIs(t, err, ErrNilEntity)
	assert.Contains(t, err.Error(), "root 0: line 0")
}

func TestReaderLines(t *testing.T) {
	r := NewReader(strings.NewReader(" 10\n1.5\n\n 20\n2\n"))
	p, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, Pair{Code: 10, Value: "1.5", Line: 1}, p)

	p, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, 4, p.Line)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecodeRejectsOutOfRangeIntegers(t *testing.T) {
	tests := []struct {
		name string
		code string
		val  string
	}{
		{"path type", "170", "65537"},
		{"line weight", "171", "-40000"},
		{"override flags", "93", "4294967296"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := strings.Join([]string{
				"302", "LEADER{",
				"304", "LEADER_LINE{",
				tt.code, tt.val,
				"305", "}",
				"303", "}",
				"",
			}, "\n")
			_, err := NewDecoder(strings.NewReader(stream), nil).DecodeRoots()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedValue)
			assert.Contains(t, err.Error(), "out of range")
		})
	}

	stream := "302\nLEADER{\n271\n70000\n303\n}\n"
	_, err := NewDecoder(strings.NewReader(stream), nil).DecodeRoots()
	assert.ErrorIs(t, err, ErrMalformedValue)
}
