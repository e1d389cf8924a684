package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// LineWeight is a line thickness in hundredths of a millimetre, or one of the
// inherited sentinels.
type LineWeight int16

const (
	LineWeightDefault LineWeight = -3
	LineWeightByBlock LineWeight = -2
	LineWeightByLayer LineWeight = -1
)

// standardWeights lists the explicit weights drawing programs accept.
var standardWeights = []LineWeight{
	0, 5, 9, 13, 15, 18, 20, 25, 30, 35, 40, 50, 53,
	60, 70, 80, 90, 100, 106, 120, 140, 158, 200, 211,
}

// IsStandard reports whether w is a sentinel or one of the standard weights.
func (w LineWeight) IsStandard() bool {
	if w < 0 {
		return w >= LineWeightDefault
	}
	for _, s := range standardWeights {
		if s == w {
			return true
		}
	}
	return false
}

func (w LineWeight) String() string {
	switch w {
	case LineWeightDefault:
		return "Default"
	case LineWeightByBlock:
		return "ByBlock"
	case LineWeightByLayer:
		return "ByLayer"
	}
	return strconv.Itoa(int(w))
}

// ParseLineWeight parses the output of [LineWeight.String].
func ParseLineWeight(s string) (LineWeight, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default":
		return LineWeightDefault, nil
	case "byblock":
		return LineWeightByBlock, nil
	case "bylayer", "":
		return LineWeightByLayer, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("parse line weight %q: %w", s, err)
	}
	return LineWeight(v), nil
}
