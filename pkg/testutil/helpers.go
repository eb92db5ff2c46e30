// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/finance-planner/internal/planner"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/shopspring/decimal"
)

// AssertDecimal fails the test when got does not numerically equal want.
func AssertDecimal(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	expected := decimal.RequireFromString(want)
	if !got.Equal(expected) {
		t.Errorf("%s = %s, expected %s", field, got, expected)
	}
}

// FindGoal finds a goal result by name in a plan. Returns nil if absent.
func FindGoal(results []planner.GoalResult, name string) *planner.GoalResult {
	for i := range results {
		if results[i].Plan.Name == name {
			return &results[i]
		}
	}
	return nil
}

// SampleProfile returns the canonical six-category profile used across tests.
func SampleProfile() finance.Profile {
	return finance.Profile{
		MonthlyIncome: decimal.NewFromInt(60000),
		Persona:       finance.PersonaProfessional,
		Expenses: []finance.Expense{
			{Category: "Housing", Amount: decimal.NewFromInt(15000)},
			{Category: "Food", Amount: decimal.NewFromInt(10000)},
			{Category: "Transportation", Amount: decimal.NewFromInt(5000)},
			{Category: "Utilities", Amount: decimal.NewFromInt(3500)},
			{Category: "Entertainment", Amount: decimal.NewFromInt(2500)},
			{Category: "Shopping", Amount: decimal.NewFromInt(4000)},
		},
	}
}
