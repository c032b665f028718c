//go:build amd64 && goexperiment.simd

package vecop

import "simd/archsimd"

// Each kernel loads one register per operand and stores the packed result
// through the destination reinterpreted as the register's array type, so
// the lanes are written with their exact bit patterns.

func hardwareKernels() []Kernels {
	return []Kernels{
		{
			Tier: Tier128,
			F32:  [numOperators]func(dst, a, b []float32){add128F32, sub128F32, mul128F32, div128F32},
			F64:  [numOperators]func(dst, a, b []float64){add128F64, sub128F64, mul128F64, div128F64},
		},
		{
			Tier: Tier256,
			F32:  [numOperators]func(dst, a, b []float32){add256F32, sub256F32, mul256F32, div256F32},
			F64:  [numOperators]func(dst, a, b []float64){add256F64, sub256F64, mul256F64, div256F64},
		},
		{
			Tier: Tier512,
			F32:  [numOperators]func(dst, a, b []float32){add512F32, sub512F32, mul512F32, div512F32},
			F64:  [numOperators]func(dst, a, b []float64){add512F64, sub512F64, mul512F64, div512F64},
		},
	}
}

// 128-bit

func add128F32(dst, a, b []float32) {
	archsimd.LoadFloat32x4Slice(a).Add(archsimd.LoadFloat32x4Slice(b)).Store((*[4]float32)(dst))
}

func sub128F32(dst, a, b []float32) {
	archsimd.LoadFloat32x4Slice(a).Sub(archsimd.LoadFloat32x4Slice(b)).Store((*[4]float32)(dst))
}

func mul128F32(dst, a, b []float32) {
	archsimd.LoadFloat32x4Slice(a).Mul(archsimd.LoadFloat32x4Slice(b)).Store((*[4]float32)(dst))
}

func div128F32(dst, a, b []float32) {
	archsimd.LoadFloat32x4Slice(a).Div(archsimd.LoadFloat32x4Slice(b)).Store((*[4]float32)(dst))
}

func add128F64(dst, a, b []float64) {
	archsimd.LoadFloat64x2Slice(a).Add(archsimd.LoadFloat64x2Slice(b)).Store((*[2]float64)(dst))
}

func sub128F64(dst, a, b []float64) {
	archsimd.LoadFloat64x2Slice(a).Sub(archsimd.LoadFloat64x2Slice(b)).Store((*[2]float64)(dst))
}

func mul128F64(dst, a, b []float64) {
	archsimd.LoadFloat64x2Slice(a).Mul(archsimd.LoadFloat64x2Slice(b)).Store((*[2]float64)(dst))
}

func div128F64(dst, a, b []float64) {
	archsimd.LoadFloat64x2Slice(a).Div(archsimd.LoadFloat64x2Slice(b)).Store((*[2]float64)(dst))
}

// 256-bit

func add256F32(dst, a, b []float32) {
	archsimd.LoadFloat32x8Slice(a).Add(archsimd.LoadFloat32x8Slice(b)).Store((*[8]float32)(dst))
}

func sub256F32(dst, a, b []float32) {
	archsimd.LoadFloat32x8Slice(a).Sub(archsimd.LoadFloat32x8Slice(b)).Store((*[8]float32)(dst))
}

func mul256F32(dst, a, b []float32) {
	archsimd.LoadFloat32x8Slice(a).Mul(archsimd.LoadFloat32x8Slice(b)).Store((*[8]float32)(dst))
}

func div256F32(dst, a, b []float32) {
	archsimd.LoadFloat32x8Slice(a).Div(archsimd.LoadFloat32x8Slice(b)).Store((*[8]float32)(dst))
}

func add256F64(dst, a, b []float64) {
	archsimd.LoadFloat64x4Slice(a).Add(archsimd.LoadFloat64x4Slice(b)).Store((*[4]float64)(dst))
}

func sub256F64(dst, a, b []float64) {
	archsimd.LoadFloat64x4Slice(a).Sub(archsimd.LoadFloat64x4Slice(b)).Store((*[4]float64)(dst))
}

func mul256F64(dst, a, b []float64) {
	archsimd.LoadFloat64x4Slice(a).Mul(archsimd.LoadFloat64x4Slice(b)).Store((*[4]float64)(dst))
}

func div256F64(dst, a, b []float64) {
	archsimd.LoadFloat64x4Slice(a).Div(archsimd.LoadFloat64x4Slice(b)).Store((*[4]float64)(dst))
}

// 512-bit

func add512F32(dst, a, b []float32) {
	archsimd.LoadFloat32x16Slice(a).Add(archsimd.LoadFloat32x16Slice(b)).Store((*[16]float32)(dst))
}

func sub512F32(dst, a, b []float32) {
	archsimd.LoadFloat32x16Slice(a).Sub(archsimd.LoadFloat32x16Slice(b)).Store((*[16]float32)(dst))
}

func mul512F32(dst, a, b []float32) {
	archsimd.LoadFloat32x16Slice(a).Mul(archsimd.LoadFloat32x16Slice(b)).Store((*[16]float32)(dst))
}

func div512F32(dst, a, b []float32) {
	archsimd.LoadFloat32x16Slice(a).Div(archsimd.LoadFloat32x16Slice(b)).Store((*[16]float32)(dst))
}

func add512F64(dst, a, b []float64) {
	archsimd.LoadFloat64x8Slice(a).Add(archsimd.LoadFloat64x8Slice(b)).Store((*[8]float64)(dst))
}

func sub512F64(dst, a, b []float64) {
	archsimd.LoadFloat64x8Slice(a).Sub(archsimd.LoadFloat64x8Slice(b)).Store((*[8]float64)(dst))
}

func mul512F64(dst, a, b []float64) {
	archsimd.LoadFloat64x8Slice(a).Mul(archsimd.LoadFloat64x8Slice(b)).Store((*[8]float64)(dst))
}

func div512F64(dst, a, b []float64) {
	archsimd.LoadFloat64x8Slice(a).Div(archsimd.LoadFloat64x8Slice(b)).Store((*[8]float64)(dst))
}
