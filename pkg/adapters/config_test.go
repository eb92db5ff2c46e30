package adapters

import (
	"errors"
	"testing"

	"github.com/iwvelando/finance-planner/internal/config"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/tax"
	"github.com/shopspring/decimal"
)

func assertDecimal(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	expected := decimal.RequireFromString(want)
	if !got.Equal(expected) {
		t.Errorf("%s = %s, expected %s", field, got, expected)
	}
}

func TestProfileToFinance(t *testing.T) {
	profile := ProfileToFinance(config.ProfileConfig{
		MonthlyIncome: 60000,
		Persona:       "professional",
		Expenses: []config.ExpenseConfig{
			{Category: "Housing", Amount: 15000},
			{Category: "Food", Amount: 10000},
		},
	})

	assertDecimal(t, "MonthlyIncome", profile.MonthlyIncome, "60000")
	if profile.Persona != finance.PersonaProfessional {
		t.Errorf("persona = %s, expected %s", profile.Persona, finance.PersonaProfessional)
	}
	if len(profile.Expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(profile.Expenses))
	}
	if profile.Expenses[0].Category != "Housing" {
		t.Errorf("expense order not preserved: got %s first", profile.Expenses[0].Category)
	}
	assertDecimal(t, "expense amount", profile.Expenses[1].Amount, "10000")
}

func TestGoalsToSpecs(t *testing.T) {
	specs := GoalsToSpecs([]config.GoalConfig{
		{Name: "Emergency Fund", TargetAmount: 120000, CurrentSavings: 20000, HorizonMonths: 12},
	})

	if len(specs) != 1 {
		t.Fatalf("expected 1 spec, got %d", len(specs))
	}
	if specs[0].Name != "Emergency Fund" || specs[0].HorizonMonths != 12 {
		t.Errorf("spec fields not carried over: %+v", specs[0])
	}
	assertDecimal(t, "TargetAmount", specs[0].TargetAmount, "120000")
	assertDecimal(t, "CurrentSavings", specs[0].CurrentSavings, "20000")

	if GoalsToSpecs(nil) != nil {
		t.Error("nil goals should convert to nil specs")
	}
}

func TestDeductionsToSet(t *testing.T) {
	set := DeductionsToSet(map[string]float64{"80c": 180000, "80d": 20000})
	assertDecimal(t, "80c", set["80c"], "180000")
	assertDecimal(t, "80d", set["80d"], "20000")

	if DeductionsToSet(nil) != nil {
		t.Error("nil deductions should convert to nil set")
	}
}

func TestAnnualIncome(t *testing.T) {
	explicit := AnnualIncome(config.TaxConfig{AnnualIncome: 1200000}, 60000)
	assertDecimal(t, "explicit annual income", explicit, "1200000")

	derived := AnnualIncome(config.TaxConfig{}, 60000)
	assertDecimal(t, "derived annual income", derived, "720000")
}

func TestTaxPolicyDefaults(t *testing.T) {
	policy, err := TaxPolicy(tax.RegimeNew, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.Regime != tax.RegimeNew {
		t.Errorf("regime = %s, expected %s", policy.Regime, tax.RegimeNew)
	}
	assertDecimal(t, "StandardDeduction", policy.StandardDeduction, "50000")
}

func TestTaxPolicyOverrides(t *testing.T) {
	stdDeduction := 75000.0
	cessRate := 0.02
	policy, err := TaxPolicy(tax.RegimeNew, &config.PolicyConfig{
		StandardDeduction: &stdDeduction,
		CessRate:          &cessRate,
		Ceilings:          map[string]float64{"80c": 200000},
		Slabs: []config.SlabConfig{
			{UpperBound: 300000, Rate: 0},
			{UpperBound: 600000, Rate: 0.05},
			{Rate: 0.20},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDecimal(t, "StandardDeduction", policy.StandardDeduction, "75000")
	assertDecimal(t, "CessRate", policy.CessRate, "0.02")
	assertDecimal(t, "80c ceiling", policy.Ceilings["80c"], "200000")
	// Untouched ceilings keep their defaults.
	assertDecimal(t, "80d ceiling", policy.Ceilings["80d"], "25000")
	if len(policy.Slabs) != 3 {
		t.Fatalf("expected 3 slabs, got %d", len(policy.Slabs))
	}
	assertDecimal(t, "top slab rate", policy.Slabs[2].Rate, "0.2")
}

func TestTaxPolicyInvalidOverrides(t *testing.T) {
	_, err := TaxPolicy(tax.RegimeOld, &config.PolicyConfig{
		Slabs: []config.SlabConfig{
			{UpperBound: 500000, Rate: 0.05},
			{UpperBound: 250000, Rate: 0.10},
			{Rate: 0.30},
		},
	})
	if !errors.Is(err, finance.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for descending bounds, got %v", err)
	}

	_, err = TaxPolicy("flat", nil)
	if !errors.Is(err, finance.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for unknown regime, got %v", err)
	}
}
