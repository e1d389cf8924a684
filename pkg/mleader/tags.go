package mleader

// Kind is the value type a persisted field holds.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindDouble
	KindPoint
	KindHandle
	KindColor
	KindPair // a StartEndPointPair laid out by PairTags
	KindLine // a LeaderLine laid out by LineTags
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindPoint:
		return "point"
	case KindHandle:
		return "handle"
	case KindColor:
		return "color"
	case KindPair:
		return "pair"
	case KindLine:
		return "line"
	}
	return "unknown"
}

// Field describes how one persisted field maps onto group codes.
//
// Codes holds one code per scalar component, so a point takes three (x, y, z)
// and a pair six. A field with no codes is not carried by tagged streams.
type Field struct {
	Name     string
	Codes    []int
	Kind     Kind
	Repeated bool
}

// Arity returns the number of codes the field consumes.
func (f Field) Arity() int { return len(f.Codes) }

// Persisted reports whether the field appears in tagged streams.
func (f Field) Persisted() bool { return len(f.Codes) > 0 }

// TagTable lists the persisted fields of one entity type in stream order.
// Entities with an Open code are framed by Open/Close marker pairs.
type TagTable struct {
	Entity      string
	Open        int
	OpenMarker  string
	Close       int
	CloseMarker string
	Fields      []Field
}

// Framed reports whether the entity is wrapped in start/end markers.
func (t TagTable) Framed() bool { return t.Open != 0 }

// Lookup finds the field that consumes code and the position of code within
// that field's Codes.
func (t TagTable) Lookup(code int) (Field, int, bool) {
	for _, f := range t.Fields {
		for i, c := range f.Codes {
			if c == code {
				return f, i, true
			}
		}
	}
	return Field{}, 0, false
}

// Field finds a field by name.
func (t TagTable) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Field names shared by the tag tables and the codecs.
const (
	FieldContentValid            = "contentValid"
	FieldUnknown                 = "unknown"
	FieldConnectionPoint         = "connectionPoint"
	FieldDirection               = "direction"
	FieldBreakPairs              = "breakStartEndPointsPairs"
	FieldLeaderIndex             = "leaderIndex"
	FieldLandingDistance         = "landingDistance"
	FieldLines                   = "lines"
	FieldTextAttachmentDirection = "textAttachmentDirection"

	FieldPoints         = "points"
	FieldBreakInfoCount = "breakInfoCount"
	FieldSegmentIndex   = "segmentIndex"
	FieldStartEndPoints = "startEndPoints"
	FieldIndex          = "index"
	FieldPathType       = "pathType"
	FieldLineColor      = "lineColor"
	FieldLineType       = "lineType"
	FieldLineWeight     = "lineWeight"
	FieldArrowheadSize  = "arrowheadSize"
	FieldArrowhead      = "arrowhead"
	FieldOverrideFlags  = "overrideFlags"

	FieldStartPoint = "startPoint"
	FieldEndPoint   = "endPoint"
)

// PairTags lays out a StartEndPointPair.
var PairTags = TagTable{
	Entity: "START_END_POINT_PAIR",
	Fields: []Field{
		{Name: FieldStartPoint, Codes: []int{12, 22, 32}, Kind: KindPoint},
		{Name: FieldEndPoint, Codes: []int{13, 23, 33}, Kind: KindPoint},
	},
}

var pairCodes = []int{12, 22, 32, 13, 23, 33}

// LineTags lays out a LeaderLine.
var LineTags = TagTable{
	Entity:      "LEADER_LINE",
	Open:        304,
	OpenMarker:  "LEADER_LINE{",
	Close:       305,
	CloseMarker: "}",
	Fields: []Field{
		{Name: FieldPoints, Codes: []int{10, 20, 30}, Kind: KindPoint, Repeated: true},
		{Name: FieldBreakInfoCount, Kind: KindInt},
		{Name: FieldStartEndPoints, Codes: pairCodes, Kind: KindPair, Repeated: true},
		{Name: FieldSegmentIndex, Codes: []int{90}, Kind: KindInt},
		{Name: FieldIndex, Codes: []int{91}, Kind: KindInt},
		{Name: FieldPathType, Codes: []int{170}, Kind: KindInt},
		{Name: FieldLineColor, Codes: []int{92}, Kind: KindColor},
		{Name: FieldLineType, Codes: []int{340}, Kind: KindHandle},
		{Name: FieldLineWeight, Codes: []int{171}, Kind: KindInt},
		{Name: FieldArrowheadSize, Codes: []int{40}, Kind: KindDouble},
		{Name: FieldArrowhead, Codes: []int{341}, Kind: KindHandle},
		{Name: FieldOverrideFlags, Codes: []int{93}, Kind: KindInt},
	},
}

// RootTags lays out a LeaderRoot. Lines are nested entities introduced by
// LineTags.Open.
var RootTags = TagTable{
	Entity:      "LEADER",
	Open:        302,
	OpenMarker:  "LEADER{",
	Close:       303,
	CloseMarker: "}",
	Fields: []Field{
		{Name: FieldContentValid, Codes: []int{290}, Kind: KindBool},
		{Name: FieldUnknown, Codes: []int{291}, Kind: KindBool},
		{Name: FieldConnectionPoint, Codes: []int{10, 20, 30}, Kind: KindPoint},
		{Name: FieldDirection, Codes: []int{11, 21, 31}, Kind: KindPoint},
		{Name: FieldBreakPairs, Codes: pairCodes, Kind: KindPair, Repeated: true},
		{Name: FieldLeaderIndex, Codes: []int{90}, Kind: KindInt},
		{Name: FieldLandingDistance, Codes: []int{40}, Kind: KindDouble},
		{Name: FieldLines, Codes: []int{304}, Kind: KindLine, Repeated: true},
		{Name: FieldTextAttachmentDirection, Codes: []int{271}, Kind: KindInt},
	},
}
