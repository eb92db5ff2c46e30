// Package planner assembles a complete financial plan from a configuration:
// budget analysis, goal feasibility, tax computation, and the rendered advice
// for each.
package planner

import (
	"fmt"

	"github.com/iwvelando/finance-planner/internal/config"
	"github.com/iwvelando/finance-planner/pkg/adapters"
	"github.com/iwvelando/finance-planner/pkg/advice"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/tax"
	"go.uber.org/zap"
)

// GoalResult pairs a computed goal plan with its rendered advice.
type GoalResult struct {
	Plan   *finance.GoalPlan `json:"plan"`
	Advice string            `json:"advice"`
}

// TaxResult holds either a single-regime computation or a regime comparison,
// depending on the configured mode.
type TaxResult struct {
	Mode        string           `json:"mode"`
	Computation *tax.Computation `json:"computation,omitempty"`
	Comparison  *tax.Comparison  `json:"comparison,omitempty"`
	Advice      string           `json:"advice"`
}

// Plan is the full structured output for one configuration.
type Plan struct {
	Persona  finance.Persona         `json:"persona"`
	Budget   *finance.BudgetAnalysis `json:"budget"`
	Insights []string                `json:"insights"`
	Goals    []GoalResult            `json:"goals,omitempty"`
	Tax      *TaxResult              `json:"tax,omitempty"`
}

// BuildPlan runs every configured calculation and renders the matching
// advice. The calculations themselves are pure; this function only sequences
// them and logs progress.
func BuildPlan(logger *zap.Logger, conf config.Configuration) (*Plan, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	profile := adapters.ProfileToFinance(conf.Profile)

	budget, err := finance.AnalyzeBudget(profile, conf.TopExpenses)
	if err != nil {
		return nil, fmt.Errorf("budget analysis failed: %w", err)
	}
	logger.Debug("budget analysis complete",
		zap.String("op", "planner.BuildPlan"),
		zap.String("savingsRate", budget.SavingsRate.String()),
		zap.Int("topExpenses", len(budget.TopExpenses)),
	)

	plan := &Plan{
		Persona:  profile.Persona,
		Budget:   budget,
		Insights: advice.BudgetInsights(budget),
	}

	for _, spec := range adapters.GoalsToSpecs(conf.Goals) {
		goalPlan, err := finance.PlanGoal(profile.MonthlyIncome, spec)
		if err != nil {
			return nil, fmt.Errorf("planning goal %q failed: %w", spec.Name, err)
		}
		logger.Debug("goal planned",
			zap.String("op", "planner.BuildPlan"),
			zap.String("goal", spec.Name),
			zap.String("feasibility", string(goalPlan.Feasibility)),
		)
		plan.Goals = append(plan.Goals, GoalResult{
			Plan:   goalPlan,
			Advice: advice.GoalAdvice(goalPlan),
		})
	}

	if conf.Tax != nil {
		taxResult, err := buildTaxResult(*conf.Tax, conf.Profile.MonthlyIncome)
		if err != nil {
			return nil, fmt.Errorf("tax computation failed: %w", err)
		}
		logger.Debug("tax computed",
			zap.String("op", "planner.BuildPlan"),
			zap.String("mode", taxResult.Mode),
		)
		plan.Tax = taxResult
	}

	return plan, nil
}

// buildTaxResult evaluates the configured tax request. An empty regime
// defaults to a regime comparison since that is the most useful answer.
func buildTaxResult(taxConf config.TaxConfig, monthlyIncome float64) (*TaxResult, error) {
	gross := adapters.AnnualIncome(taxConf, monthlyIncome)
	deductions := adapters.DeductionsToSet(taxConf.Deductions)

	mode := taxConf.Regime
	if mode == "" {
		mode = config.TaxModeCompare
	}

	if mode == config.TaxModeCompare {
		oldPolicy, err := adapters.TaxPolicy(tax.RegimeOld, taxConf.Policy)
		if err != nil {
			return nil, err
		}
		newPolicy, err := adapters.TaxPolicy(tax.RegimeNew, taxConf.Policy)
		if err != nil {
			return nil, err
		}
		comparison, err := tax.CompareWithPolicies(gross, deductions, oldPolicy, newPolicy)
		if err != nil {
			return nil, err
		}
		return &TaxResult{
			Mode:       mode,
			Comparison: comparison,
			Advice:     advice.TaxAdvice(comparison),
		}, nil
	}

	policy, err := adapters.TaxPolicy(tax.Regime(mode), taxConf.Policy)
	if err != nil {
		return nil, err
	}
	computation, err := tax.Compute(gross, deductions, policy)
	if err != nil {
		return nil, err
	}
	return &TaxResult{
		Mode:        mode,
		Computation: computation,
		Advice:      advice.TaxSummary(computation),
	}, nil
}
