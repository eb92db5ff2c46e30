package tax

import (
	"fmt"

	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Computation is the structured result of evaluating one policy against a
// gross annual income.
type Computation struct {
	Regime            Regime                     `json:"regime"`
	GrossIncome       decimal.Decimal            `json:"grossIncome"`
	StandardDeduction decimal.Decimal            `json:"standardDeduction"`
	Deductions        map[string]decimal.Decimal `json:"deductions"`
	TotalDeductions   decimal.Decimal            `json:"totalDeductions"`
	TaxableIncome     decimal.Decimal            `json:"taxableIncome"`
	TaxBeforeCess     decimal.Decimal            `json:"taxBeforeCess"`
	TaxWithCess       decimal.Decimal            `json:"taxWithCess"`
	EffectiveRate     decimal.Decimal            `json:"effectiveRate"`
}

// Comparison holds the same income evaluated under both default regimes.
type Comparison struct {
	Old         *Computation    `json:"old"`
	New         *Computation    `json:"new"`
	Recommended Regime          `json:"recommended"`
	Savings     decimal.Decimal `json:"savings"`
}

// Compute evaluates a policy against a gross annual income and a set of
// claimed deductions. Each deduction bucket is capped at its own ceiling;
// buckets the policy does not know contribute nothing. The function is pure
// and safe for concurrent use.
func Compute(grossIncome decimal.Decimal, claimed DeductionSet, policy Policy) (*Computation, error) {
	if grossIncome.IsNegative() {
		return nil, fmt.Errorf("%w: gross income must be non-negative, got %s",
			finance.ErrInvalidInput, grossIncome)
	}
	if grossIncome.IsZero() {
		return nil, fmt.Errorf("%w: effective tax rate", finance.ErrDivisionUndefined)
	}
	for bucket, amount := range claimed {
		if amount.IsNegative() {
			return nil, fmt.Errorf("%w: deduction %q must be non-negative, got %s",
				finance.ErrInvalidInput, bucket, amount)
		}
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	capped := make(map[string]decimal.Decimal, len(policy.Ceilings))
	totalDeductions := decimal.Zero
	for bucket, ceiling := range policy.Ceilings {
		amount := mathutil.Min(claimed[bucket], ceiling)
		capped[bucket] = amount
		totalDeductions = totalDeductions.Add(amount)
	}

	taxableIncome := mathutil.ClampNonNegative(
		grossIncome.Sub(policy.StandardDeduction).Sub(totalDeductions))

	taxBeforeCess := slabTax(taxableIncome, policy.Slabs)
	taxWithCess := taxBeforeCess.Mul(decimal.NewFromInt(1).Add(policy.CessRate))
	effectiveRate := mathutil.Percentage(taxWithCess, grossIncome)

	return &Computation{
		Regime:            policy.Regime,
		GrossIncome:       grossIncome,
		StandardDeduction: policy.StandardDeduction,
		Deductions:        capped,
		TotalDeductions:   totalDeductions,
		TaxableIncome:     taxableIncome,
		TaxBeforeCess:     mathutil.RoundMoney(taxBeforeCess),
		TaxWithCess:       mathutil.RoundMoney(taxWithCess),
		EffectiveRate:     mathutil.RoundMoney(effectiveRate),
	}, nil
}

// slabTax accumulates marginal tax across the portion of taxable income that
// falls within each bracket.
func slabTax(taxableIncome decimal.Decimal, slabs []Slab) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero
	for _, slab := range slabs {
		upper := taxableIncome
		if !slab.UpperBound.IsZero() {
			upper = mathutil.Min(slab.UpperBound, taxableIncome)
		}
		portion := upper.Sub(lower)
		if !portion.IsPositive() {
			break
		}
		tax = tax.Add(portion.Mul(slab.Rate))
		lower = upper
	}
	return tax
}

// CompareRegimes evaluates the same income under the default old and new
// regime policies and recommends the cheaper one. The new regime wins ties.
func CompareRegimes(grossIncome decimal.Decimal, claimed DeductionSet) (*Comparison, error) {
	return CompareWithPolicies(grossIncome, claimed, OldRegimePolicy(), NewRegimePolicy())
}

// CompareWithPolicies is CompareRegimes with explicit policies, for callers
// that override statutory defaults from configuration.
func CompareWithPolicies(grossIncome decimal.Decimal, claimed DeductionSet, oldPolicy, newPolicy Policy) (*Comparison, error) {
	oldComputation, err := Compute(grossIncome, claimed, oldPolicy)
	if err != nil {
		return nil, err
	}
	newComputation, err := Compute(grossIncome, claimed, newPolicy)
	if err != nil {
		return nil, err
	}

	comparison := &Comparison{
		Old: oldComputation,
		New: newComputation,
	}
	if oldComputation.TaxWithCess.LessThan(newComputation.TaxWithCess) {
		comparison.Recommended = RegimeOld
		comparison.Savings = newComputation.TaxWithCess.Sub(oldComputation.TaxWithCess)
	} else {
		comparison.Recommended = RegimeNew
		comparison.Savings = oldComputation.TaxWithCess.Sub(newComputation.TaxWithCess)
	}
	return comparison, nil
}
