package advice

import (
	"fmt"

	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/format"
	"github.com/iwvelando/finance-planner/pkg/tax"
	"github.com/shopspring/decimal"
)

// PersonaContext returns the framing line used ahead of generated guidance
// for a persona and intent. Personas only shape prose, never numbers.
func PersonaContext(persona finance.Persona, intent Intent) string {
	contexts, ok := personaContexts[intent]
	if !ok {
		contexts = personaContexts[IntentGeneral]
	}
	if context, ok := contexts[persona]; ok {
		return context
	}
	return contexts[finance.PersonaGeneral]
}

var personaContexts = map[Intent]map[finance.Persona]string{
	IntentBudget: {
		finance.PersonaStudent:      "The user is a student with limited income. Focus on budgeting basics and smart spending.",
		finance.PersonaProfessional: "The user is a working professional. Focus on investment opportunities and wealth building.",
		finance.PersonaConservative: "The user prefers low-risk choices. Focus on stability and predictable savings.",
		finance.PersonaAggressive:   "The user is comfortable with risk. Focus on growth and higher-yield opportunities.",
		finance.PersonaGeneral:      "Provide general financial advice suitable for most people.",
	},
	IntentGoal: {
		finance.PersonaStudent:      "The user is a student. Focus on achievable small steps and building habits.",
		finance.PersonaProfessional: "The user is a working professional. Focus on strategic planning and optimization.",
		finance.PersonaConservative: "The user prefers low-risk choices. Focus on guaranteed progress over speed.",
		finance.PersonaAggressive:   "The user is comfortable with risk. Focus on ambitious timelines and growth assets.",
		finance.PersonaGeneral:      "Provide practical financial planning advice.",
	},
	IntentTax: {
		finance.PersonaStudent:      "The user is a student with limited income. Focus on basic tax concepts.",
		finance.PersonaProfessional: "The user is a salaried professional. Focus on maximizing deductions and investments.",
		finance.PersonaConservative: "The user prefers low-risk choices. Focus on PPF, EPF, and insurance-linked savings.",
		finance.PersonaAggressive:   "The user is comfortable with risk. Focus on ELSS and equity-linked options.",
		finance.PersonaGeneral:      "Provide general tax advice for Indian taxpayers.",
	},
	IntentGeneral: {
		finance.PersonaGeneral: "Provide general financial advice suitable for most people.",
	},
}

// BudgetInsights renders short, actionable observations from a budget
// analysis.
func BudgetInsights(analysis *finance.BudgetAnalysis) []string {
	var insights []string

	healthyRate := decimal.NewFromInt(20)
	if analysis.SavingsRate.LessThan(healthyRate) {
		insights = append(insights, fmt.Sprintf(
			"Your savings rate is %s. Aim for at least 20%% to build financial security.",
			format.Percent(analysis.SavingsRate)))
	} else {
		insights = append(insights, fmt.Sprintf(
			"Great job! Your savings rate of %s is healthy.",
			format.Percent(analysis.SavingsRate)))
	}

	if len(analysis.TopExpenses) > 0 {
		top := analysis.TopExpenses[0]
		insights = append(insights, fmt.Sprintf(
			"Your highest expense is %s at %s. Look for ways to optimize this.",
			top.Category, format.Currency(top.Amount)))
	}

	insights = append(insights, "Consider the 50/30/20 rule: 50% needs, 30% wants, 20% savings.")

	return insights
}

// GoalAdvice renders a savings strategy for a goal plan, tiered by its
// feasibility classification.
func GoalAdvice(plan *finance.GoalPlan) string {
	switch plan.Feasibility {
	case finance.FeasibilityChallenging:
		return fmt.Sprintf(`Your goal of %s is ambitious. You'll need to save %s monthly (%s of income).

Consider:
- Extending the timeline to make it more manageable
- Finding additional income sources
- Breaking the goal into smaller milestones

Start with what you can save today and increase gradually.`,
			plan.Name, format.Currency(plan.MonthlyRequired), format.Percent(plan.IncomePercentage))

	case finance.FeasibilityModerate:
		return fmt.Sprintf(`Your goal of %s is achievable with discipline. You'll need to save %s monthly.

Strategies:
- Automate your savings on payday
- Cut one major expense category
- Track your progress weekly

Stay consistent and you'll reach your goal!`,
			plan.Name, format.Currency(plan.MonthlyRequired))

	default:
		return fmt.Sprintf(`Your goal of %s is very achievable! You only need to save %s monthly (%s of income).

Tips:
- Set up automatic transfers to a separate savings account
- Treat this savings as a non-negotiable expense
- Celebrate milestones along the way

You've got this!`,
			plan.Name, format.Currency(plan.MonthlyRequired), format.Percent(plan.IncomePercentage))
	}
}

// TaxAdvice renders educational tax guidance for a regime comparison, tiered
// by gross income.
func TaxAdvice(comparison *tax.Comparison) string {
	header := fmt.Sprintf(
		"Estimated liability: %s (old regime) vs %s (new regime). The %s regime saves you %s.",
		format.Currency(comparison.Old.TaxWithCess),
		format.Currency(comparison.New.TaxWithCess),
		comparison.Recommended,
		format.Currency(comparison.Savings))

	return header + taxTierBody(comparison.New.GrossIncome)
}

// TaxSummary renders the same educational guidance for a single-regime
// computation.
func TaxSummary(computation *tax.Computation) string {
	header := fmt.Sprintf(
		"Under the %s regime you'd pay %s on %s (effective rate %s).",
		computation.Regime,
		format.Currency(computation.TaxWithCess),
		format.Currency(computation.GrossIncome),
		format.Percent(computation.EffectiveRate))

	return header + taxTierBody(computation.GrossIncome)
}

func taxTierBody(gross decimal.Decimal) string {
	switch {
	case gross.LessThan(decimal.NewFromInt(500000)):
		return `

**Tax Planning Tips:**

For income under ₹5 lakhs, you're likely in a lower tax bracket.

**Section 80C Deductions (up to ₹1.5 lakhs):**
- Public Provident Fund (PPF)
- Employee Provident Fund (EPF)
- Equity Linked Savings Scheme (ELSS)
- Life Insurance premiums
- National Savings Certificate (NSC)

**Other Deductions:**
- Section 80D: Health insurance premiums
- Section 80E: Education loan interest

*This is educational information, not professional tax advice.*`

	case gross.LessThan(decimal.NewFromInt(1000000)):
		return `

**Tax Planning Strategies:**

For your income range (₹5-10 lakhs), tax planning is crucial.

**Priority Investments:**
1. **Section 80C (₹1.5L limit):** Max out EPF/PPF, ELSS funds
2. **Section 80D:** Health insurance for self and parents
3. **NPS (Section 80CCD(1B)):** Additional ₹50,000 deduction

**Smart Tips:**
- Invest early in the financial year
- Keep medical bills and rent receipts
- Review investments annually

*Consult a tax professional for personalized advice.*`

	default:
		return `

**Advanced Tax Planning:**

For higher income brackets (₹10L+), strategic tax planning is essential.

**Key Strategies:**
1. **Maximize Deductions:**
   - Section 80C: ₹1.5 lakhs
   - NPS additional: ₹50,000 (80CCD(1B))
   - Health insurance: ₹25,000+ (80D)

2. **Smart Investments:**
   - ELSS for 80C + equity exposure
   - PPF for long-term, tax-free returns
   - NPS for retirement + tax benefits

**Important:** For complex situations, hire a CA.

*This is general guidance only.*`
	}
}
