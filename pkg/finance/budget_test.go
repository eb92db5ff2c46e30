package finance

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func sampleProfile() Profile {
	return Profile{
		MonthlyIncome: decimal.NewFromInt(60000),
		Persona:       PersonaProfessional,
		Expenses: []Expense{
			{Category: "Housing", Amount: decimal.NewFromInt(15000)},
			{Category: "Food", Amount: decimal.NewFromInt(10000)},
			{Category: "Transportation", Amount: decimal.NewFromInt(5000)},
			{Category: "Utilities", Amount: decimal.NewFromInt(3500)},
			{Category: "Entertainment", Amount: decimal.NewFromInt(2500)},
			{Category: "Shopping", Amount: decimal.NewFromInt(4000)},
		},
	}
}

func assertDecimal(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	expected := decimal.RequireFromString(want)
	if !got.Equal(expected) {
		t.Errorf("%s = %s, expected %s", field, got, expected)
	}
}

func TestAnalyzeBudget(t *testing.T) {
	analysis, err := AnalyzeBudget(sampleProfile(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDecimal(t, "TotalExpenses", analysis.TotalExpenses, "40000")
	assertDecimal(t, "NetSavings", analysis.NetSavings, "20000")
	assertDecimal(t, "SavingsRate", analysis.SavingsRate, "33.33")

	expectedTop := []struct {
		category string
		amount   string
	}{
		{"Housing", "15000"},
		{"Food", "10000"},
		{"Transportation", "5000"},
	}
	if len(analysis.TopExpenses) != len(expectedTop) {
		t.Fatalf("expected %d top expenses, got %d", len(expectedTop), len(analysis.TopExpenses))
	}
	for i, want := range expectedTop {
		got := analysis.TopExpenses[i]
		if got.Category != want.category {
			t.Errorf("top expense %d category = %s, expected %s", i, got.Category, want.category)
		}
		assertDecimal(t, "top expense amount", got.Amount, want.amount)
	}

	if analysis.Persona != PersonaProfessional {
		t.Errorf("persona = %s, expected %s", analysis.Persona, PersonaProfessional)
	}
}

func TestAnalyzeBudgetNoExpenses(t *testing.T) {
	analysis, err := AnalyzeBudget(Profile{
		MonthlyIncome: decimal.NewFromInt(50000),
	}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDecimal(t, "TotalExpenses", analysis.TotalExpenses, "0")
	assertDecimal(t, "NetSavings", analysis.NetSavings, "50000")
	assertDecimal(t, "SavingsRate", analysis.SavingsRate, "100")
	if len(analysis.TopExpenses) != 0 {
		t.Errorf("expected no top expenses, got %d", len(analysis.TopExpenses))
	}
}

func TestAnalyzeBudgetOverspending(t *testing.T) {
	analysis, err := AnalyzeBudget(Profile{
		MonthlyIncome: decimal.NewFromInt(10000),
		Expenses: []Expense{
			{Category: "Rent", Amount: decimal.NewFromInt(12000)},
		},
	}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDecimal(t, "NetSavings", analysis.NetSavings, "-2000")
	assertDecimal(t, "SavingsRate", analysis.SavingsRate, "-20")
}

func TestAnalyzeBudgetBalanceInvariant(t *testing.T) {
	profiles := []Profile{
		sampleProfile(),
		{MonthlyIncome: decimal.NewFromInt(1)},
		{
			MonthlyIncome: decimal.NewFromFloat(12345.67),
			Expenses: []Expense{
				{Category: "A", Amount: decimal.NewFromFloat(0.01)},
				{Category: "B", Amount: decimal.NewFromFloat(9999.99)},
			},
		},
	}

	for _, profile := range profiles {
		analysis, err := AnalyzeBudget(profile, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sum := analysis.NetSavings.Add(analysis.TotalExpenses)
		if !sum.Equal(profile.MonthlyIncome) {
			t.Errorf("net savings + expenses = %s, expected income %s", sum, profile.MonthlyIncome)
		}
	}
}

func TestTopExpensesTiesPreserveOrder(t *testing.T) {
	analysis, err := AnalyzeBudget(Profile{
		MonthlyIncome: decimal.NewFromInt(10000),
		Expenses: []Expense{
			{Category: "First", Amount: decimal.NewFromInt(500)},
			{Category: "Second", Amount: decimal.NewFromInt(500)},
			{Category: "Small", Amount: decimal.NewFromInt(100)},
			{Category: "Third", Amount: decimal.NewFromInt(500)},
		},
	}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.TopExpenses) != 2 {
		t.Fatalf("expected 2 top expenses, got %d", len(analysis.TopExpenses))
	}
	if analysis.TopExpenses[0].Category != "First" || analysis.TopExpenses[1].Category != "Second" {
		t.Errorf("tie order not preserved: got %s, %s",
			analysis.TopExpenses[0].Category, analysis.TopExpenses[1].Category)
	}
}

func TestTopExpensesExcludesZeroAmounts(t *testing.T) {
	analysis, err := AnalyzeBudget(Profile{
		MonthlyIncome: decimal.NewFromInt(10000),
		Expenses: []Expense{
			{Category: "Unused", Amount: decimal.Zero},
			{Category: "Food", Amount: decimal.NewFromInt(2000)},
		},
	}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.TopExpenses) != 1 {
		t.Fatalf("expected 1 top expense, got %d", len(analysis.TopExpenses))
	}
	if analysis.TopExpenses[0].Category != "Food" {
		t.Errorf("top expense = %s, expected Food", analysis.TopExpenses[0].Category)
	}
}

func TestTopExpensesFewerThanRequested(t *testing.T) {
	analysis, err := AnalyzeBudget(Profile{
		MonthlyIncome: decimal.NewFromInt(10000),
		Expenses: []Expense{
			{Category: "Food", Amount: decimal.NewFromInt(2000)},
		},
	}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.TopExpenses) != 1 {
		t.Errorf("expected 1 top expense, got %d", len(analysis.TopExpenses))
	}
}

func TestAnalyzeBudgetInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		topN    int
	}{
		{
			name:    "negative income",
			profile: Profile{MonthlyIncome: decimal.NewFromInt(-1)},
			topN:    3,
		},
		{
			name: "negative expense",
			profile: Profile{
				MonthlyIncome: decimal.NewFromInt(1000),
				Expenses: []Expense{
					{Category: "Rent", Amount: decimal.NewFromInt(-500)},
				},
			},
			topN: 3,
		},
		{
			name: "duplicate category",
			profile: Profile{
				MonthlyIncome: decimal.NewFromInt(1000),
				Expenses: []Expense{
					{Category: "Rent", Amount: decimal.NewFromInt(500)},
					{Category: "Rent", Amount: decimal.NewFromInt(200)},
				},
			},
			topN: 3,
		},
		{
			name:    "negative topN",
			profile: Profile{MonthlyIncome: decimal.NewFromInt(1000)},
			topN:    -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AnalyzeBudget(tt.profile, tt.topN)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAnalyzeBudgetZeroIncome(t *testing.T) {
	_, err := AnalyzeBudget(Profile{
		MonthlyIncome: decimal.Zero,
		Expenses: []Expense{
			{Category: "Food", Amount: decimal.NewFromInt(100)},
		},
	}, 3)
	if !errors.Is(err, ErrDivisionUndefined) {
		t.Errorf("expected ErrDivisionUndefined, got %v", err)
	}
}
