// Package tax implements a progressive slab evaluator for Indian income tax
// with per-bucket deduction ceilings and old/new regime comparison.
package tax

import (
	"fmt"

	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/shopspring/decimal"
)

// Regime selects which slab table and deduction rules apply.
type Regime string

// Supported regimes.
const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// Deduction bucket names. Unknown buckets in a DeductionSet contribute
// nothing to taxable-income reduction.
const (
	BucketSection80C     = "80c"
	BucketSection80D     = "80d"
	BucketSection80CCD1B = "80ccd1b"
)

// DeductionSet maps deduction bucket names to the amounts claimed. Each
// bucket is capped independently at its statutory ceiling during computation.
type DeductionSet map[string]decimal.Decimal

// Slab is one bracket of a progressive slab table. A zero UpperBound marks
// the unbounded top bracket.
type Slab struct {
	UpperBound decimal.Decimal `json:"upperBound" yaml:"upperBound"`
	Rate       decimal.Decimal `json:"rate" yaml:"rate"`
}

// Policy holds the statutory parameters for one regime. Ceilings and slabs
// are data, not literals, so a different tax year can be loaded from
// configuration.
type Policy struct {
	Regime            Regime
	StandardDeduction decimal.Decimal
	CessRate          decimal.Decimal
	Slabs             []Slab
	Ceilings          map[string]decimal.Decimal
}

// NewRegimePolicy returns the default new-regime policy.
func NewRegimePolicy() Policy {
	return Policy{
		Regime:            RegimeNew,
		StandardDeduction: decimal.NewFromFloat(constants.DefaultStandardDeduction),
		CessRate:          decimal.NewFromFloat(constants.DefaultCessRate),
		Slabs: []Slab{
			{UpperBound: decimal.NewFromInt(250000), Rate: decimal.Zero},
			{UpperBound: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.05)},
			{UpperBound: decimal.NewFromInt(750000), Rate: decimal.NewFromFloat(0.10)},
			{UpperBound: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.15)},
			{UpperBound: decimal.NewFromInt(1250000), Rate: decimal.NewFromFloat(0.20)},
			{UpperBound: decimal.NewFromInt(1500000), Rate: decimal.NewFromFloat(0.25)},
			{Rate: decimal.NewFromFloat(0.30)},
		},
		Ceilings: defaultCeilings(),
	}
}

// OldRegimePolicy returns the default old-regime policy.
func OldRegimePolicy() Policy {
	return Policy{
		Regime:            RegimeOld,
		StandardDeduction: decimal.NewFromFloat(constants.DefaultStandardDeduction),
		CessRate:          decimal.NewFromFloat(constants.DefaultCessRate),
		Slabs: []Slab{
			{UpperBound: decimal.NewFromInt(250000), Rate: decimal.Zero},
			{UpperBound: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.05)},
			{UpperBound: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.20)},
			{Rate: decimal.NewFromFloat(0.30)},
		},
		Ceilings: defaultCeilings(),
	}
}

func defaultCeilings() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		BucketSection80C:     decimal.NewFromFloat(constants.Section80CCeiling),
		BucketSection80D:     decimal.NewFromFloat(constants.Section80DCeiling),
		BucketSection80CCD1B: decimal.NewFromFloat(constants.Section80CCD1BCeiling),
	}
}

// DefaultPolicy returns the default policy for the named regime.
func DefaultPolicy(regime Regime) (Policy, error) {
	switch regime {
	case RegimeOld:
		return OldRegimePolicy(), nil
	case RegimeNew:
		return NewRegimePolicy(), nil
	default:
		return Policy{}, fmt.Errorf("%w: unknown tax regime %q", finance.ErrInvalidInput, regime)
	}
}

// Validate checks the structural soundness of a policy: strictly ascending
// slab bounds, a single unbounded top slab, rates within [0, 1], and
// non-negative monetary parameters.
func (p Policy) Validate() error {
	if p.StandardDeduction.IsNegative() {
		return fmt.Errorf("%w: standard deduction must be non-negative, got %s",
			finance.ErrInvalidInput, p.StandardDeduction)
	}
	if p.CessRate.IsNegative() {
		return fmt.Errorf("%w: cess rate must be non-negative, got %s",
			finance.ErrInvalidInput, p.CessRate)
	}
	if len(p.Slabs) == 0 {
		return fmt.Errorf("%w: policy has no slabs", finance.ErrInvalidInput)
	}

	one := decimal.NewFromInt(1)
	previous := decimal.Zero
	for i, slab := range p.Slabs {
		if slab.Rate.IsNegative() || slab.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: slab %d rate must be within [0, 1], got %s",
				finance.ErrInvalidInput, i, slab.Rate)
		}
		last := i == len(p.Slabs)-1
		if last {
			if !slab.UpperBound.IsZero() {
				return fmt.Errorf("%w: top slab must be unbounded", finance.ErrInvalidInput)
			}
			continue
		}
		if !slab.UpperBound.GreaterThan(previous) {
			return fmt.Errorf("%w: slab %d upper bound %s must exceed previous bound %s",
				finance.ErrInvalidInput, i, slab.UpperBound, previous)
		}
		previous = slab.UpperBound
	}

	for bucket, ceiling := range p.Ceilings {
		if ceiling.IsNegative() {
			return fmt.Errorf("%w: ceiling for bucket %q must be non-negative, got %s",
				finance.ErrInvalidInput, bucket, ceiling)
		}
	}

	return nil
}
