package vecop

import (
	"math"
	"math/rand/v2"

	"github.com/samcharles93/vecop/internal/hwcaps"
)

// allHost pretends the CPU supports every tier.
var allHost = hwcaps.Features{Arch: "amd64", HasSSE2: true, HasAVX: true, HasAVX2: true, HasAVX512F: true}

// simulatedTiers registers scalar loops under every hardware tier label so
// the table logic can be exercised on builds without archsimd.
func simulatedTiers() []Kernels {
	return []Kernels{scalarKernels(Tier128), scalarKernels(Tier256), scalarKernels(Tier512)}
}

func simulated(opts Options) *Dispatcher {
	if opts.Features == (hwcaps.Features{}) {
		opts.Features = allHost
	}
	return newDispatcher(opts, simulatedTiers())
}

func randomOperands[T float32 | float64](r *rand.Rand, n int) (a, b []T) {
	a = make([]T, n)
	b = make([]T, n)
	for i := range n {
		a[i] = T((r.Float64() - 0.5) * 2000)
		// Keep divisors away from zero.
		b[i] = T(math.Copysign(0.25+r.Float64()*1000, r.Float64()-0.5))
	}
	return a, b
}

func reference[T float32 | float64](op Operator, a, b []T) []T {
	out := make([]T, len(a))
	switch op {
	case Add:
		addScalar(out, a, b)
	case Subtract:
		subScalar(out, a, b)
	case Multiply:
		mulScalar(out, a, b)
	case Divide:
		divScalar(out, a, b)
	}
	return out
}

func sameBits[T float32 | float64](x, y T) bool {
	switch x := any(x).(type) {
	case float32:
		return math.Float32bits(x) == math.Float32bits(any(y).(float32))
	case float64:
		return math.Float64bits(x) == math.Float64bits(any(y).(float64))
	}
	return false
}
