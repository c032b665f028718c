package store

import (
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

// Values is a float list whose JSON form keeps non-finite lanes: they are
// written as the strings "+Inf", "-Inf" and "NaN", which plain JSON numbers
// cannot express.
type Values []float64

func (v Values) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	buf := make([]byte, 0, 2+len(v)*8)
	buf = append(buf, '[')
	for i, f := range v {
		if i > 0 {
			buf = append(buf, ',')
		}
		switch {
		case math.IsNaN(f):
			buf = append(buf, `"NaN"`...)
		case math.IsInf(f, 1):
			buf = append(buf, `"+Inf"`...)
		case math.IsInf(f, -1):
			buf = append(buf, `"-Inf"`...)
		default:
			buf = strconv.AppendFloat(buf, f, 'g', -1, 64)
		}
	}
	return append(buf, ']'), nil
}

func (v *Values) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*v = nil
		return nil
	}
	out := make(Values, len(raw))
	for i, r := range raw {
		if len(r) > 0 && r[0] == '"' {
			var s string
			if err := json.Unmarshal(r, &s); err != nil {
				return err
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return err
			}
			out[i] = f
			continue
		}
		if err := json.Unmarshal(r, &out[i]); err != nil {
			return err
		}
	}
	*v = out
	return nil
}
