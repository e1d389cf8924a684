package document

import (
	"encoding/json"
	"math"
	"strconv"
)

// Float is a float64 whose JSON form also carries NaN and the infinities,
// as the strings "NaN", "+Inf" and "-Inf". YAML and BSON encode those
// natively and see a plain float.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

func (f *Float) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = Float(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]Float{Float(p[0]), Float(p[1]), Float(p[2])})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var v [3]Float
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Point{float64(v[0]), float64(v[1]), float64(v[2])}
	return nil
}
