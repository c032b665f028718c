// Package vecop evaluates elementwise float32/float64 vector arithmetic on
// fixed-width registers.
//
// A Dispatcher maps every (element type, width) pair to the capability tier
// whose register holds exactly that many lanes:
//
//	float  x4  -> 128-bit   double x2 -> 128-bit
//	float  x8  -> 256-bit   double x4 -> 256-bit
//	float  x16 -> 512-bit   double x8 -> 512-bit
//
// float x2 has no hardware tier and double x16 is never valid. When the
// required tier is not available the per-type Policy decides: Strict returns
// ErrUnavailableCapability, Tolerant runs the scalar kernels, which are the
// reference every hardware tier must match bit for bit.
//
// Hardware tiers are compiled only for amd64 with GOEXPERIMENT=simd. The
// table is resolved once when the Dispatcher is built; Apply calls do not
// allocate and are safe for concurrent use.
package vecop
