package vecop

// Scalar kernels apply the operator lane by lane. They are the fallback
// path and the reference the hardware kernels are tested against.

func addScalar[T float32 | float64](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subScalar[T float32 | float64](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulScalar[T float32 | float64](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divScalar[T float32 | float64](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// scalarKernels labels the scalar loops with tier. Only TierScalar is used
// in production; tests register other labels to simulate hardware tiers.
func scalarKernels(tier Tier) Kernels {
	return Kernels{
		Tier: tier,
		F32: [numOperators]func(dst, a, b []float32){
			addScalar[float32], subScalar[float32], mulScalar[float32], divScalar[float32],
		},
		F64: [numOperators]func(dst, a, b []float64){
			addScalar[float64], subScalar[float64], mulScalar[float64], divScalar[float64],
		},
	}
}
