// Package finance defines the financial profile data structures and the pure
// calculation functions for budget analysis and goal planning.
package finance

import (
	"github.com/shopspring/decimal"
)

// Persona tags a profile with the kind of user the advice text should speak
// to. It never influences arithmetic.
type Persona string

// Supported personas.
const (
	PersonaConservative Persona = "conservative"
	PersonaProfessional Persona = "professional"
	PersonaAggressive   Persona = "aggressive"
	PersonaStudent      Persona = "student"
	PersonaGeneral      Persona = "general"
)

// KnownPersona reports whether p is one of the supported persona tags.
func KnownPersona(p Persona) bool {
	switch p {
	case PersonaConservative, PersonaProfessional, PersonaAggressive, PersonaStudent, PersonaGeneral:
		return true
	}
	return false
}

// Expense is a single spending category with its monthly amount. Expenses are
// kept as an ordered slice rather than a map so that ties in ranking resolve
// to the original declaration order.
type Expense struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Profile is the immutable input to a budget analysis.
type Profile struct {
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	Expenses      []Expense       `json:"expenses"`
	Persona       Persona         `json:"persona"`
}

// BudgetAnalysis is the structured result of analyzing a profile.
type BudgetAnalysis struct {
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetSavings    decimal.Decimal `json:"netSavings"`
	SavingsRate   decimal.Decimal `json:"savingsRate"`
	TopExpenses   []Expense       `json:"topExpenses"`
	Persona       Persona         `json:"persona"`
}

// GoalSpec describes a savings goal.
type GoalSpec struct {
	Name           string          `json:"name"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	CurrentSavings decimal.Decimal `json:"currentSavings"`
	HorizonMonths  int             `json:"horizonMonths"`
}

// Feasibility classifies how much of monthly income a goal consumes.
type Feasibility string

// Feasibility tiers.
const (
	FeasibilityEasy        Feasibility = "Easy"
	FeasibilityModerate    Feasibility = "Moderate"
	FeasibilityChallenging Feasibility = "Challenging"
)

// GoalPlan is the structured result of planning a goal against an income.
type GoalPlan struct {
	Name             string          `json:"name"`
	TargetAmount     decimal.Decimal `json:"targetAmount"`
	CurrentSavings   decimal.Decimal `json:"currentSavings"`
	RemainingAmount  decimal.Decimal `json:"remainingAmount"`
	HorizonMonths    int             `json:"horizonMonths"`
	MonthlyRequired  decimal.Decimal `json:"monthlyRequired"`
	IncomePercentage decimal.Decimal `json:"incomePercentage"`
	Feasibility      Feasibility     `json:"feasibility"`
}
