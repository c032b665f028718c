package vecop

import (
	"fmt"
	"strings"

	"github.com/samcharles93/vecop/internal/hwcaps"
)

// Tier is a level of hardware vector support, ordered by register width.
type Tier uint8

const (
	TierScalar Tier = iota
	Tier128
	Tier256
	Tier512
)

// Tiers lists the hardware tiers, narrowest first.
var Tiers = [...]Tier{Tier128, Tier256, Tier512}

// String returns the instruction family name used in diagnostics.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case Tier128:
		return "sse"
	case Tier256:
		return "avx"
	case Tier512:
		return "avx512"
	default:
		return fmt.Sprintf("Tier(%d)", uint8(t))
	}
}

// Bits returns the register width of the tier.
func (t Tier) Bits() int {
	switch t {
	case Tier128:
		return 128
	case Tier256:
		return 256
	case Tier512:
		return 512
	default:
		return 0
	}
}

// ParseTier accepts a tier name or its register width ("sse", "128", ...).
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "none":
		return TierScalar, nil
	case "sse", "128":
		return Tier128, nil
	case "avx", "256":
		return Tier256, nil
	case "avx512", "512":
		return Tier512, nil
	default:
		return 0, fmt.Errorf("unknown tier %q (sse, avx, avx512)", s)
	}
}

// tierFor returns the hardware tier whose register holds exactly w lanes of
// t, or false when no tier does.
func tierFor(t ElementType, w Width) (Tier, bool) {
	switch w.Bits(t) {
	case 128:
		return Tier128, true
	case 256:
		return Tier256, true
	case 512:
		return Tier512, true
	default:
		return TierScalar, false
	}
}

// hostSupports reports whether the CPU can execute a tier's kernels.
// archsimd emits VEX encodings even for 128-bit vectors, so Tier128 needs
// AVX rather than plain SSE2.
func hostSupports(f hwcaps.Features, t Tier) bool {
	switch t {
	case TierScalar:
		return true
	case Tier128, Tier256:
		return f.HasAVX
	case Tier512:
		return f.HasAVX512F
	default:
		return false
	}
}
