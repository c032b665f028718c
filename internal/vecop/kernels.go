package vecop

// Kernels is the set of elementwise primitives one tier provides, indexed in
// Operators order. A hardware kernel operates on exactly one register, so
// every slice it receives has the tier's lane count.
type Kernels struct {
	Tier Tier
	F32  [numOperators]func(dst, a, b []float32)
	F64  [numOperators]func(dst, a, b []float64)
}

// CompiledTiers returns the hardware tiers built into this binary.
func CompiledTiers() []Tier {
	ks := hardwareKernels()
	out := make([]Tier, 0, len(ks))
	for _, k := range ks {
		out = append(out, k.Tier)
	}
	return out
}
