package vecop

// Resolution is how a (type, width) pair is served.
type Resolution uint8

const (
	// ResolveVector runs the required hardware tier.
	ResolveVector Resolution = iota
	// ResolveFallback runs scalar code because the tier is unavailable.
	ResolveFallback
	// ResolveScalar runs scalar code because no tier exists for the pair.
	ResolveScalar
	// ResolveUnavailable fails: the tier is missing and the policy is Strict.
	ResolveUnavailable
	// ResolveInvalid fails: the width is not valid for the type.
	ResolveInvalid
)

func (r Resolution) String() string {
	switch r {
	case ResolveVector:
		return "vector"
	case ResolveFallback:
		return "scalar-fallback"
	case ResolveScalar:
		return "scalar"
	case ResolveUnavailable:
		return "unavailable"
	case ResolveInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Route is one row of the dispatch table.
type Route struct {
	Type  ElementType
	Width Width
	// Tier is the hardware tier the pair needs, TierScalar when none fits.
	Tier   Tier
	Policy Policy

	Compiled  bool
	Supported bool
	Disabled  bool

	Resolution Resolution
}

// Available reports whether the required hardware tier can run.
func (r Route) Available() bool {
	return r.Tier != TierScalar && r.Compiled && r.Supported && !r.Disabled
}

type route struct {
	Route
	kernels *Kernels
	sel     Selection
	err     error
}

// widthSlot maps a known width to its column in the table.
func widthSlot(w Width) int {
	switch w {
	case 2:
		return 0
	case 4:
		return 1
	case 8:
		return 2
	case 16:
		return 3
	default:
		return -1
	}
}

// buildTable resolves every (type, width) pair against the available
// kernels. It runs once per Dispatcher.
func buildTable(opts Options, hw []Kernels, scalar *Kernels) [2][len(Widths)]route {
	byTier := make(map[Tier]*Kernels, len(hw))
	for i := range hw {
		byTier[hw[i].Tier] = &hw[i]
	}
	disabled := make(map[Tier]bool, len(opts.Disabled))
	for _, t := range opts.Disabled {
		disabled[t] = true
	}

	var table [2][len(Widths)]route
	for _, t := range [...]ElementType{Float32, Float64} {
		policy := opts.Policies.For(t)
		for slot, w := range Widths {
			r := route{Route: Route{Type: t, Width: w, Policy: policy}}
			r.sel = Selection{Type: t, Width: w, Tier: TierScalar}

			tier, ok := tierFor(t, w)
			switch {
			case t == Float64 && w == 16:
				r.Resolution = ResolveInvalid
				r.err = newError(ErrInvalidWidth, "invalid vector of size %d for type %s", w, t)
			case !ok:
				// float x2: narrower than any vector register.
				if policy == Tolerant {
					r.Resolution = ResolveScalar
					r.kernels = scalar
				} else {
					r.Resolution = ResolveInvalid
					r.err = newError(ErrInvalidWidth, "invalid vector of size %d for type %s", w, t)
				}
			default:
				k := byTier[tier]
				r.Tier = tier
				r.Compiled = k != nil
				r.Supported = hostSupports(opts.Features, tier)
				r.Disabled = disabled[tier] || opts.NoSIMD
				switch {
				case r.Available():
					r.Resolution = ResolveVector
					r.kernels = k
					r.sel.Tier = tier
				case policy == Tolerant:
					r.Resolution = ResolveFallback
					r.kernels = scalar
					r.sel.Fallback = true
				default:
					r.Resolution = ResolveUnavailable
					r.err = newError(ErrUnavailableCapability, "%s instruction not available", tier)
				}
			}
			table[t][slot] = r
		}
	}
	return table
}

// RouteSummary is the serializable form of a Route.
type RouteSummary struct {
	Type       string `json:"type"`
	Width      int    `json:"width"`
	Tier       string `json:"tier"`
	Bits       int    `json:"bits"`
	Policy     string `json:"policy"`
	Compiled   bool   `json:"compiled"`
	Supported  bool   `json:"supported"`
	Disabled   bool   `json:"disabled"`
	Available  bool   `json:"available"`
	Resolution string `json:"resolution"`
}

func (r Route) Summary() RouteSummary {
	return RouteSummary{
		Type:       r.Type.String(),
		Width:      int(r.Width),
		Tier:       r.Tier.String(),
		Bits:       r.Tier.Bits(),
		Policy:     r.Policy.String(),
		Compiled:   r.Compiled,
		Supported:  r.Supported,
		Disabled:   r.Disabled,
		Available:  r.Available(),
		Resolution: r.Resolution.String(),
	}
}
