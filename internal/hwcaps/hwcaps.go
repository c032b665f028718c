// Package hwcaps reports the vector instruction families the host CPU
// supports.
//
// Detection runs once and is cached. It answers "can this CPU execute the
// instructions", which is separate from "were kernels for them compiled into
// this binary"; the vecop dispatcher needs both.
package hwcaps

import (
	"os"
	"strconv"
	"sync"
)

// EnvNoSIMD disables every hardware tier when set to a true value.
const EnvNoSIMD = "VECOP_NO_SIMD"

// Features describes the host CPU.
type Features struct {
	Arch string `json:"arch"`

	HasSSE2    bool `json:"sse2"`
	HasAVX     bool `json:"avx"`
	HasAVX2    bool `json:"avx2"`
	HasAVX512F bool `json:"avx512f"`
}

var (
	detected   Features
	detectOnce sync.Once
)

// Detect returns the cached host features.
func Detect() Features {
	detectOnce.Do(func() {
		detected = detectFeatures()
	})
	return detected
}

// NoSIMDEnv reports whether VECOP_NO_SIMD asks for scalar-only execution.
// Any non-empty value that does not parse as a bool counts as true.
func NoSIMDEnv() bool {
	val := os.Getenv(EnvNoSIMD)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
