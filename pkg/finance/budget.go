package finance

import (
	"fmt"
	"sort"

	"github.com/iwvelando/finance-planner/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// AnalyzeBudget computes the expense aggregation and savings rate for a
// profile. topN caps the number of top expense categories reported; pass
// constants.DefaultTopExpenses for the standard report.
//
// The function is pure: it never mutates the profile and is safe for
// concurrent use.
func AnalyzeBudget(profile Profile, topN int) (*BudgetAnalysis, error) {
	if topN < 0 {
		return nil, fmt.Errorf("%w: topN must be non-negative, got %d", ErrInvalidInput, topN)
	}
	if profile.MonthlyIncome.IsNegative() {
		return nil, fmt.Errorf("%w: monthly income must be non-negative, got %s",
			ErrInvalidInput, profile.MonthlyIncome)
	}

	seen := make(map[string]struct{}, len(profile.Expenses))
	total := decimal.Zero
	for _, expense := range profile.Expenses {
		if expense.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: expense %q must be non-negative, got %s",
				ErrInvalidInput, expense.Category, expense.Amount)
		}
		if _, dup := seen[expense.Category]; dup {
			return nil, fmt.Errorf("%w: duplicate expense category %q", ErrInvalidInput, expense.Category)
		}
		seen[expense.Category] = struct{}{}
		total = total.Add(expense.Amount)
	}

	netSavings := profile.MonthlyIncome.Sub(total)

	if profile.MonthlyIncome.IsZero() {
		return nil, fmt.Errorf("%w: savings rate", ErrDivisionUndefined)
	}
	savingsRate := mathutil.Percentage(netSavings, profile.MonthlyIncome)

	return &BudgetAnalysis{
		MonthlyIncome: profile.MonthlyIncome,
		TotalExpenses: total,
		NetSavings:    netSavings,
		SavingsRate:   mathutil.RoundMoney(savingsRate),
		TopExpenses:   topExpenses(profile.Expenses, topN),
		Persona:       profile.Persona,
	}, nil
}

// topExpenses returns the topN non-zero categories, descending by amount.
// The sort is stable so equal amounts keep their declaration order.
func topExpenses(expenses []Expense, topN int) []Expense {
	ranked := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		if expense.Amount.IsPositive() {
			ranked = append(ranked, expense)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
