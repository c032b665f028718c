//go:build !(amd64 && goexperiment.simd)

package vecop

// Without GOEXPERIMENT=simd on amd64 no hardware tier is compiled in; every
// request is either served by the scalar kernels or rejected by Strict.
func hardwareKernels() []Kernels {
	return nil
}
