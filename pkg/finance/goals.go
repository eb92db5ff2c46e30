package finance

import (
	"fmt"

	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/iwvelando/finance-planner/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// PlanGoal computes the monthly contribution required to reach a goal within
// its horizon and classifies how feasible that contribution is against the
// given monthly income.
//
// A goal that is already fully funded yields a zero required contribution and
// is Easy regardless of horizon. Zero income never causes a failure here: the
// plan classifies directly instead of dividing.
func PlanGoal(income decimal.Decimal, goal GoalSpec) (*GoalPlan, error) {
	if income.IsNegative() {
		return nil, fmt.Errorf("%w: income must be non-negative, got %s", ErrInvalidInput, income)
	}
	if !goal.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("%w: goal %q target amount must be positive, got %s",
			ErrInvalidInput, goal.Name, goal.TargetAmount)
	}
	if goal.CurrentSavings.IsNegative() {
		return nil, fmt.Errorf("%w: goal %q current savings must be non-negative, got %s",
			ErrInvalidInput, goal.Name, goal.CurrentSavings)
	}
	if goal.HorizonMonths < 1 {
		return nil, fmt.Errorf("%w: goal %q horizon must be at least one month, got %d",
			ErrInvalidInput, goal.Name, goal.HorizonMonths)
	}

	remaining := mathutil.ClampNonNegative(goal.TargetAmount.Sub(goal.CurrentSavings))
	monthlyRequired := remaining.Div(decimal.NewFromInt(int64(goal.HorizonMonths)))

	var incomePercentage decimal.Decimal
	var feasibility Feasibility
	switch {
	case income.IsZero() && monthlyRequired.IsZero():
		feasibility = FeasibilityEasy
	case income.IsZero():
		// Any required contribution against no income is out of reach.
		feasibility = FeasibilityChallenging
	default:
		incomePercentage = mathutil.Percentage(monthlyRequired, income)
		feasibility = classifyFeasibility(incomePercentage)
	}

	return &GoalPlan{
		Name:             goal.Name,
		TargetAmount:     goal.TargetAmount,
		CurrentSavings:   goal.CurrentSavings,
		RemainingAmount:  remaining,
		HorizonMonths:    goal.HorizonMonths,
		MonthlyRequired:  mathutil.RoundMoney(monthlyRequired),
		IncomePercentage: mathutil.RoundMoney(incomePercentage),
		Feasibility:      feasibility,
	}, nil
}

// classifyFeasibility buckets an exact, unrounded income percentage. Rounding
// first would misclassify values just under a boundary.
func classifyFeasibility(incomePercentage decimal.Decimal) Feasibility {
	moderate := decimal.NewFromFloat(constants.FeasibilityModerateThreshold)
	challenging := decimal.NewFromFloat(constants.FeasibilityChallengingThreshold)

	switch {
	case incomePercentage.LessThan(moderate):
		return FeasibilityEasy
	case incomePercentage.LessThan(challenging):
		return FeasibilityModerate
	default:
		return FeasibilityChallenging
	}
}
