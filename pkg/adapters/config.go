// Package adapters converts configuration structures into the inputs the
// calculation packages expect. Configuration carries plain float64 amounts;
// the calculators work in decimals.
package adapters

import (
	"github.com/iwvelando/finance-planner/internal/config"
	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/mathutil"
	"github.com/iwvelando/finance-planner/pkg/tax"
	"github.com/shopspring/decimal"
)

// ProfileToFinance converts a profile configuration into a finance.Profile.
func ProfileToFinance(profile config.ProfileConfig) finance.Profile {
	expenses := make([]finance.Expense, 0, len(profile.Expenses))
	for _, expense := range profile.Expenses {
		expenses = append(expenses, finance.Expense{
			Category: expense.Category,
			Amount:   mathutil.FromFloat(expense.Amount),
		})
	}

	return finance.Profile{
		MonthlyIncome: mathutil.FromFloat(profile.MonthlyIncome),
		Expenses:      expenses,
		Persona:       finance.Persona(profile.Persona),
	}
}

// GoalsToSpecs converts goal configurations into finance.GoalSpec values.
func GoalsToSpecs(goals []config.GoalConfig) []finance.GoalSpec {
	if goals == nil {
		return nil
	}

	specs := make([]finance.GoalSpec, 0, len(goals))
	for _, goal := range goals {
		specs = append(specs, finance.GoalSpec{
			Name:           goal.Name,
			TargetAmount:   mathutil.FromFloat(goal.TargetAmount),
			CurrentSavings: mathutil.FromFloat(goal.CurrentSavings),
			HorizonMonths:  goal.HorizonMonths,
		})
	}
	return specs
}

// DeductionsToSet converts claimed deduction amounts into a tax.DeductionSet.
func DeductionsToSet(deductions map[string]float64) tax.DeductionSet {
	if deductions == nil {
		return nil
	}

	set := make(tax.DeductionSet, len(deductions))
	for bucket, amount := range deductions {
		set[bucket] = mathutil.FromFloat(amount)
	}
	return set
}

// AnnualIncome resolves the gross annual income for tax computation: the
// explicit value when configured, otherwise twelve times the monthly income.
func AnnualIncome(taxConf config.TaxConfig, monthlyIncome float64) decimal.Decimal {
	if taxConf.AnnualIncome > 0 {
		return mathutil.FromFloat(taxConf.AnnualIncome)
	}
	return mathutil.FromFloat(monthlyIncome).Mul(decimal.NewFromInt(constants.MonthsPerYear))
}

// TaxPolicy builds the effective policy for a regime, applying any
// configured overrides on top of the regime's defaults.
func TaxPolicy(regime tax.Regime, overrides *config.PolicyConfig) (tax.Policy, error) {
	policy, err := tax.DefaultPolicy(regime)
	if err != nil {
		return tax.Policy{}, err
	}
	if overrides == nil {
		return policy, nil
	}

	if overrides.StandardDeduction != nil {
		policy.StandardDeduction = mathutil.FromFloat(*overrides.StandardDeduction)
	}
	if overrides.CessRate != nil {
		policy.CessRate = mathutil.FromFloat(*overrides.CessRate)
	}
	for bucket, ceiling := range overrides.Ceilings {
		policy.Ceilings[bucket] = mathutil.FromFloat(ceiling)
	}
	if len(overrides.Slabs) > 0 {
		slabs := make([]tax.Slab, 0, len(overrides.Slabs))
		for _, slab := range overrides.Slabs {
			slabs = append(slabs, tax.Slab{
				UpperBound: mathutil.FromFloat(slab.UpperBound),
				Rate:       mathutil.FromFloat(slab.Rate),
			})
		}
		policy.Slabs = slabs
	}

	if err := policy.Validate(); err != nil {
		return tax.Policy{}, err
	}
	return policy, nil
}
