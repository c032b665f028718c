package vecop

import (
	"fmt"
	"strings"
)

// Policy decides what happens when the tier a request needs is missing.
type Policy uint8

const (
	// Strict fails with ErrUnavailableCapability.
	Strict Policy = iota
	// Tolerant computes the result with the scalar kernels.
	Tolerant
)

func (p Policy) String() string {
	if p == Tolerant {
		return "tolerant"
	}
	return "strict"
}

// ParsePolicy accepts "strict" or "tolerant".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "tolerant":
		return Tolerant, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (strict, tolerant)", s)
	}
}

// Policies holds one Policy per element type.
type Policies struct {
	Float32 Policy
	Float64 Policy
}

// DefaultPolicies is the reference behaviour: single precision falls back to
// scalar code, double precision requires the hardware tier.
func DefaultPolicies() Policies {
	return Policies{Float32: Tolerant, Float64: Strict}
}

// For returns the policy configured for t.
func (p Policies) For(t ElementType) Policy {
	if t == Float64 {
		return p.Float64
	}
	return p.Float32
}
