package api

import (
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/samcharles93/vecop/internal/vecop"
)

// maxRequestBytes bounds request bodies; the largest valid request is two
// 16-lane vectors.
const maxRequestBytes = 64 << 10

func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	dec := json.NewDecoder(io.LimitReader(r, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, newInvalidRequest("invalid JSON body: " + err.Error())
	}
	return out, nil
}

func newEvaluationID() string {
	return "eval_" + uuid.NewString()
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, newInvalidRequest("limit must be a non-negative integer")
	}
	return n, nil
}

// evaluate runs one request through the dispatcher. Single-precision
// operands are rounded to float32 before dispatch and the result is widened
// back exactly.
func evaluate(d *vecop.Dispatcher, t vecop.ElementType, op vecop.Operator, w vecop.Width, a, b []float64) ([]float64, vecop.Selection, error) {
	if t == vecop.Float64 {
		dst := make([]float64, len(a))
		sel, err := d.ApplyFloat64(op, w, dst, a, b)
		if err != nil {
			return nil, sel, err
		}
		return dst, sel, nil
	}
	a32, b32 := narrow(a), narrow(b)
	dst := make([]float32, len(a32))
	sel, err := d.ApplyFloat32(op, w, dst, a32, b32)
	if err != nil {
		return nil, sel, err
	}
	out := make([]float64, len(dst))
	for i, v := range dst {
		out[i] = float64(v)
	}
	return out, sel, nil
}

func narrow(in []float64) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}
	return out
}
