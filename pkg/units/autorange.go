package units

import (
	"fmt"
	"math"
)

// AutoRangePolicy names a preferred decimal display window used to score
// candidate units during auto-ranging. The set is closed.
type AutoRangePolicy string

const (
	// PolicyPrefer1To1000 prefers magnitudes in [1, 1000).
	PolicyPrefer1To1000 AutoRangePolicy = "1-1000"
	// PolicyPrefer1To100 prefers magnitudes in [1, 100).
	PolicyPrefer1To100 AutoRangePolicy = "1-100"
	// PolicyPrefer1To10 prefers magnitudes in [1, 10).
	PolicyPrefer1To10 AutoRangePolicy = "1-10"
	// PolicyPreferTenthTo1 prefers magnitudes in [0.1, 1).
	PolicyPreferTenthTo1 AutoRangePolicy = "0.1-1"
)

// policyDecimalIndex carries each policy's preferred decimal point
// index: how many leading-digit positions above 1 the window spans.
var policyDecimalIndex = map[AutoRangePolicy]int{
	PolicyPrefer1To1000:  2,
	PolicyPrefer1To100:   1,
	PolicyPrefer1To10:    0,
	PolicyPreferTenthTo1: 0,
}

// Valid reports whether p is a member of the policy catalog.
func (p AutoRangePolicy) Valid() bool {
	_, ok := policyDecimalIndex[p]
	return ok
}

// PreferredDecimalIndex returns the number of leading-digit positions
// above 1 the policy's window spans (2 for [1,1000), 1 for [1,100), 0
// otherwise). Callers use it to pick display precision.
func (p AutoRangePolicy) PreferredDecimalIndex() int {
	return policyDecimalIndex[p]
}

func (p AutoRangePolicy) String() string {
	return string(p)
}

// AllPolicies returns the policy catalog in declaration order.
func AllPolicies() []AutoRangePolicy {
	return []AutoRangePolicy{
		PolicyPrefer1To1000,
		PolicyPrefer1To100,
		PolicyPrefer1To10,
		PolicyPreferTenthTo1,
	}
}

// ParsePolicy returns the catalog member named by s.
// Returns ErrUnknownPolicy if s is not a member.
func ParsePolicy(s string) (AutoRangePolicy, error) {
	p := AutoRangePolicy(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
	return p, nil
}

// autoRangeBin classifies an absolute magnitude into one of eight
// disjoint half-open intervals covering [0, +Inf). Magnitudes of at
// least 1000 (infinities included) land in the unbounded top bin.
type autoRangeBin int

const (
	binAbove1000 autoRangeBin = iota
	bin100To1000
	bin10To100
	bin1To10
	binTenthTo1
	binHundredthToTenth
	binThousandthToHundredth
	binBelowThousandth
)

// binBounds holds the [min, max) interval of each bounded bin, indexed
// by autoRangeBin. The top bin has no upper bound and is handled before
// the scan.
var binBounds = [...]struct{ min, max float64 }{
	binAbove1000:             {1000, math.Inf(1)},
	bin100To1000:             {100, 1000},
	bin10To100:               {10, 100},
	bin1To10:                 {1, 10},
	binTenthTo1:              {0.1, 1},
	binHundredthToTenth:      {0.01, 0.1},
	binThousandthToHundredth: {0.001, 0.01},
	binBelowThousandth:       {0, 0.001},
}

// binFor returns the bin holding |magnitude|.
// Returns ErrMagnitudeNaN for NaN, the only value outside every bin.
func binFor(magnitude float64) (autoRangeBin, error) {
	d := math.Abs(magnitude)
	if math.IsNaN(d) {
		return 0, ErrMagnitudeNaN
	}
	if d >= 1000 {
		return binAbove1000, nil
	}
	for bin := bin100To1000; bin <= binBelowThousandth; bin++ {
		if d >= binBounds[bin].min && d < binBounds[bin].max {
			return bin, nil
		}
	}
	// Unreachable: the bins cover [0, +Inf) with no gaps.
	return 0, fmt.Errorf("%w: no bin for magnitude %g", ErrCatalogInconsistent, magnitude)
}

// scoreMagnitude scores |magnitude| against the policy's preferred
// window. Magnitudes inside the window score positively in proportion to
// their size, rewarding use of the full window. Magnitudes above the
// window score negatively, attenuated by a power of ten per bin of
// distance, so a slightly-too-large candidate beats a vastly-too-large
// one. Magnitudes below 0.01 always score -|magnitude| regardless of
// policy: among too-small candidates the one closest to zero is
// penalized least.
//
// The per-bin, per-policy table is deliberate data, not a closed-form
// curve; keep it explicit.
func scoreMagnitude(policy AutoRangePolicy, magnitude float64) (float64, error) {
	if !policy.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
	m := math.Abs(magnitude)
	bin, err := binFor(m)
	if err != nil {
		return 0, err
	}
	switch bin {
	case binAbove1000:
		switch policy {
		case PolicyPrefer1To1000:
			return -m / 1000, nil
		case PolicyPrefer1To100:
			return -m / 100, nil
		case PolicyPrefer1To10:
			return -m / 10, nil
		default:
			return -m, nil
		}
	case bin100To1000:
		switch policy {
		case PolicyPrefer1To1000:
			return m, nil
		case PolicyPrefer1To100:
			return -m / 100, nil
		case PolicyPrefer1To10:
			return -m / 10, nil
		default:
			return -m, nil
		}
	case bin10To100:
		switch policy {
		case PolicyPrefer1To1000:
			return m / 10, nil
		case PolicyPrefer1To100:
			return m, nil
		case PolicyPrefer1To10:
			return -m / 10, nil
		default:
			return -m, nil
		}
	case bin1To10:
		switch policy {
		case PolicyPrefer1To1000:
			return m / 100, nil
		case PolicyPrefer1To100:
			return m / 10, nil
		case PolicyPrefer1To10:
			return m, nil
		default:
			return -m, nil
		}
	case binTenthTo1:
		if policy == PolicyPreferTenthTo1 {
			return m, nil
		}
		return -m, nil
	default:
		// The three bins below 0.1 are penalized under every policy.
		return -m, nil
	}
}

// AutoRange selects, from the candidate units plus the originating unit,
// the unit that renders the magnitude's absolute value closest to the
// policy's preferred decimal window.
//
// The originating unit's own score seeds a running maximum; every other
// candidate is converted via ConvertToUnit, scored, and kept only if it
// strictly beats the current best. Ties therefore resolve to the
// earliest-scored unit: the originating unit first, then the candidates
// in the order supplied. With strictProperty set, candidates of a
// different base property are skipped; without it, a candidate of an
// inconvertible property surfaces the conversion error.
//
// An empty or nil candidate set returns fromUnit unchanged. The round
// argument is reserved and does not affect selection. The returned unit
// is never a converted magnitude; callers re-convert as needed.
//
// Returns ErrUnknownPolicy or ErrUnknownUnit on absent inputs.
func AutoRange(
	policy AutoRangePolicy,
	magnitude float64,
	fromUnit Unit,
	toUnits []Unit,
	strictProperty bool,
	round bool,
) (Unit, error) {
	if !policy.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
	if !fromUnit.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, fromUnit)
	}
	if len(toUnits) == 0 {
		return fromUnit, nil
	}
	_ = round

	bestUnit := fromUnit
	bestScore, err := scoreMagnitude(policy, magnitude)
	if err != nil {
		return "", err
	}
	for _, toUnit := range toUnits {
		if !toUnit.Valid() {
			return "", fmt.Errorf("%w: %q", ErrUnknownUnit, toUnit)
		}
		if toUnit == fromUnit {
			continue
		}
		if strictProperty && toUnit.BaseProperty() != fromUnit.BaseProperty() {
			continue
		}
		converted, err := ConvertToUnit(magnitude, fromUnit, toUnit)
		if err != nil {
			return "", err
		}
		score, err := scoreMagnitude(policy, converted)
		if err != nil {
			return "", err
		}
		if score > bestScore {
			bestUnit = toUnit
			bestScore = score
		}
	}
	return bestUnit, nil
}
