package vecop

import (
	"sync"

	"github.com/samcharles93/vecop/internal/hwcaps"
)

// Options configures a Dispatcher.
type Options struct {
	Policies Policies
	// Features is the host CPU a hardware tier must be supported by.
	Features hwcaps.Features
	// Disabled masks tiers off as if they were not compiled in.
	Disabled []Tier
	// NoSIMD disables every hardware tier.
	NoSIMD bool
}

// DefaultOptions uses the reference policies and the detected host.
func DefaultOptions() Options {
	return Options{
		Policies: DefaultPolicies(),
		Features: hwcaps.Detect(),
		NoSIMD:   hwcaps.NoSIMDEnv(),
	}
}

// Selection describes how a successful call was computed.
type Selection struct {
	Type  ElementType
	Width Width
	// Tier is the tier whose kernels ran.
	Tier Tier
	// Fallback is set when scalar code stood in for a missing tier.
	Fallback bool
}

// ScalarByDesign reports whether the pair has no hardware tier at all.
func (s Selection) ScalarByDesign() bool {
	return s.Tier == TierScalar && !s.Fallback
}

// Dispatcher routes elementwise operations to tier kernels. It is immutable
// once built.
type Dispatcher struct {
	opts   Options
	scalar Kernels
	hw     []Kernels
	table  [2][len(Widths)]route
}

// New resolves the dispatch table for opts against the compiled-in tiers.
func New(opts Options) *Dispatcher {
	return newDispatcher(opts, hardwareKernels())
}

func newDispatcher(opts Options, hw []Kernels) *Dispatcher {
	d := &Dispatcher{
		opts:   opts,
		scalar: scalarKernels(TierScalar),
		hw:     hw,
	}
	d.table = buildTable(opts, d.hw, &d.scalar)
	return d
}

var (
	defaultOnce       sync.Once
	defaultDispatcher *Dispatcher
)

// Default returns a process-wide Dispatcher built from DefaultOptions.
func Default() *Dispatcher {
	defaultOnce.Do(func() {
		defaultDispatcher = New(DefaultOptions())
	})
	return defaultDispatcher
}

// Policies returns the configured policies.
func (d *Dispatcher) Policies() Policies {
	return d.opts.Policies
}

// Routes returns the resolved dispatch table, float rows first.
func (d *Dispatcher) Routes() []Route {
	out := make([]Route, 0, 2*len(Widths))
	for t := range d.table {
		for _, r := range d.table[t] {
			out = append(out, r.Route)
		}
	}
	return out
}

// Lookup returns the route for (t, w). Unknown widths report false.
func (d *Dispatcher) Lookup(t ElementType, w Width) (Route, bool) {
	slot := widthSlot(w)
	if slot < 0 || t > Float64 {
		return Route{}, false
	}
	return d.table[t][slot].Route, true
}

// resolve validates everything except the operand lengths and returns the
// route to run and the operator's kernel index.
func (d *Dispatcher) resolve(t ElementType, op Operator, w Width) (*route, int, error) {
	if t > Float64 {
		return nil, 0, newError(ErrInvalidType, "Bad type : float | double")
	}
	slot := widthSlot(w)
	if slot < 0 {
		return nil, 0, newError(ErrInvalidWidth, "invalid size %d", w)
	}
	r := &d.table[t][slot]
	if r.Resolution == ResolveInvalid {
		return nil, 0, r.err
	}
	idx := op.index()
	if idx < 0 {
		return nil, 0, newError(ErrInvalidOperator, "invalid operator %c for vector of size %d for type %s", op, w, t)
	}
	if r.err != nil {
		return nil, 0, r.err
	}
	return r, idx, nil
}

// Check reports the selection a call with these parameters would make
// without touching any operands.
func (d *Dispatcher) Check(t ElementType, op Operator, w Width) (Selection, error) {
	r, _, err := d.resolve(t, op, w)
	if err != nil {
		return Selection{}, err
	}
	return r.sel, nil
}

func checkLengths(w Width, dst, a, b int) error {
	n := int(w)
	if dst != n || a != n || b != n {
		return newError(ErrInvalidWidth, "operand lengths (a=%d b=%d result=%d) do not match width %d", a, b, dst, n)
	}
	return nil
}

// ApplyFloat32 computes dst = a op b over w float32 lanes. On error dst is
// left untouched.
func (d *Dispatcher) ApplyFloat32(op Operator, w Width, dst, a, b []float32) (Selection, error) {
	r, idx, err := d.resolve(Float32, op, w)
	if err != nil {
		return Selection{}, err
	}
	if err := checkLengths(w, len(dst), len(a), len(b)); err != nil {
		return Selection{}, err
	}
	r.kernels.F32[idx](dst, a, b)
	return r.sel, nil
}

// ApplyFloat64 computes dst = a op b over w float64 lanes. On error dst is
// left untouched.
func (d *Dispatcher) ApplyFloat64(op Operator, w Width, dst, a, b []float64) (Selection, error) {
	r, idx, err := d.resolve(Float64, op, w)
	if err != nil {
		return Selection{}, err
	}
	if err := checkLengths(w, len(dst), len(a), len(b)); err != nil {
		return Selection{}, err
	}
	r.kernels.F64[idx](dst, a, b)
	return r.sel, nil
}

// Apply is the generic form of ApplyFloat32 and ApplyFloat64.
func Apply[T float32 | float64](d *Dispatcher, op Operator, w Width, dst, a, b []T) (Selection, error) {
	switch dst := any(dst).(type) {
	case []float32:
		return d.ApplyFloat32(op, w, dst, any(a).([]float32), any(b).([]float32))
	case []float64:
		return d.ApplyFloat64(op, w, dst, any(a).([]float64), any(b).([]float64))
	}
	panic("vecop: unreachable element type")
}
