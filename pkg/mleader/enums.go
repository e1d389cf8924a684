package mleader

import (
	"fmt"
	"strconv"
	"strings"
)

// PathType is the shape of a leader line.
type PathType int16

const (
	// PathInvisible hides the leader line.
	PathInvisible PathType = iota
	// PathStraight draws straight segments between vertices.
	PathStraight
	// PathSpline fits a spline through the vertices.
	PathSpline
)

func (p PathType) String() string {
	switch p {
	case PathInvisible:
		return "Invisible"
	case PathStraight:
		return "Straight"
	case PathSpline:
		return "Spline"
	}
	return fmt.Sprintf("PathType(%d)", int16(p))
}

// ParsePathType parses the output of [PathType.String], case-insensitively.
// Values outside the named set round-trip through their "PathType(N)" form.
func ParsePathType(s string) (PathType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "invisible":
		return PathInvisible, nil
	case "straight", "":
		return PathStraight, nil
	case "spline":
		return PathSpline, nil
	}
	if v, ok := parseRaw(name, "pathtype"); ok {
		return PathType(v), nil
	}
	return 0, fmt.Errorf("unknown path type %q", s)
}

// TextAttachmentDirection is how text attaches to the landing.
type TextAttachmentDirection int16

const (
	AttachHorizontal TextAttachmentDirection = iota
	AttachVertical
)

func (d TextAttachmentDirection) String() string {
	switch d {
	case AttachHorizontal:
		return "Horizontal"
	case AttachVertical:
		return "Vertical"
	}
	return fmt.Sprintf("TextAttachmentDirection(%d)", int16(d))
}

// ParseTextAttachmentDirection parses the output of
// [TextAttachmentDirection.String], case-insensitively.
func ParseTextAttachmentDirection(s string) (TextAttachmentDirection, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "horizontal", "":
		return AttachHorizontal, nil
	case "vertical":
		return AttachVertical, nil
	}
	if v, ok := parseRaw(name, "textattachmentdirection"); ok {
		return TextAttachmentDirection(v), nil
	}
	return 0, fmt.Errorf("unknown text attachment direction %q", s)
}

// parseRaw parses the "Type(N)" form String uses for unnamed values. name
// must already be lower case.
func parseRaw(name, typeName string) (int16, bool) {
	inner, ok := strings.CutPrefix(name, typeName+"(")
	if !ok {
		return 0, false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(inner, 10, 16)
	if err != nil {
		return 0, false
	}
	return int16(v), true
}

// OverrideFlags records which per-line style fields of a [LeaderLine] are
// explicit overrides rather than values inherited from the leader style.
type OverrideFlags int32

const (
	OverridePathType OverrideFlags = 1 << iota
	OverrideLineColor
	OverrideLineType
	OverrideLineWeight
	OverrideArrowheadSize
	OverrideArrowhead

	// OverrideNone is the empty set.
	OverrideNone OverrideFlags = 0
)

var overrideNames = []struct {
	flag OverrideFlags
	name string
}{
	{OverridePathType, "PathType"},
	{OverrideLineColor, "LineColor"},
	{OverrideLineType, "LineType"},
	{OverrideLineWeight, "LineWeight"},
	{OverrideArrowheadSize, "ArrowheadSize"},
	{OverrideArrowhead, "Arrowhead"},
}

// Has reports whether every bit of flag is set.
func (f OverrideFlags) Has(flag OverrideFlags) bool { return f&flag == flag }

// Set returns f with flag added.
func (f OverrideFlags) Set(flag OverrideFlags) OverrideFlags { return f | flag }

// Clear returns f with flag removed.
func (f OverrideFlags) Clear(flag OverrideFlags) OverrideFlags { return f &^ flag }

// Names returns the names of the set bits in declaration order.
func (f OverrideFlags) Names() []string {
	var names []string
	for _, n := range overrideNames {
		if f.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return names
}

func (f OverrideFlags) String() string {
	if f == OverrideNone {
		return "None"
	}
	names := f.Names()
	var known OverrideFlags
	for _, n := range overrideNames {
		known |= n.flag
	}
	if rest := f &^ known; rest != 0 {
		names = append(names, fmt.Sprintf("0x%X", int32(rest)))
	}
	return strings.Join(names, "|")
}

// ParseOverrideFlags parses a "|" or "," separated list of flag names.
// "None" and the empty string parse as the empty set. Bits without a name
// are given in hex, as String writes them.
func ParseOverrideFlags(s string) (OverrideFlags, error) {
	var f OverrideFlags
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		part = strings.TrimSpace(part)
		if part == "" || strings.EqualFold(part, "none") {
			continue
		}
		if bits, ok := parseHexBits(part); ok {
			f |= bits
			continue
		}
		found := false
		for _, n := range overrideNames {
			if strings.EqualFold(part, n.name) {
				f |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown override flag %q", part)
		}
	}
	return f, nil
}

// parseHexBits parses "0x40" and the "0x-80000000" form fmt gives a
// negative rest.
func parseHexBits(s string) (OverrideFlags, bool) {
	digits, ok := strings.CutPrefix(strings.ToLower(s), "0x")
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(digits, 16, 32)
	if err != nil {
		return 0, false
	}
	return OverrideFlags(v), true
}
