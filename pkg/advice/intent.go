// Package advice renders deterministic, template-based guidance from the
// structured calculator results. There is no model call here: every function
// is pure string interpolation so the output is reproducible.
package advice

import "strings"

// Intent identifies which planning topic a free-text question is about.
type Intent string

// Supported intents.
const (
	IntentBudget  Intent = "budget"
	IntentGoal    Intent = "goal"
	IntentTax     Intent = "tax"
	IntentGeneral Intent = "general"
)

var (
	goalKeywords   = []string{"goal", "save", "saving", "target", "plan", "planning", "achieve", "buy", "purchase"}
	taxKeywords    = []string{"tax", "deduction", "exemption", "80c", "itr", "income tax", "tax saving"}
	budgetKeywords = []string{"budget", "spend", "spending", "expense", "expenses", "cost", "money"}
)

// RouteIntent determines which planning topic should handle the question.
// Goal keywords take priority over tax, which takes priority over budget.
func RouteIntent(question string) Intent {
	lowered := strings.ToLower(question)

	if containsAny(lowered, goalKeywords) {
		return IntentGoal
	}
	if containsAny(lowered, taxKeywords) {
		return IntentTax
	}
	if containsAny(lowered, budgetKeywords) {
		return IntentBudget
	}
	return IntentGeneral
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// FallbackResponse is returned for questions that do not match any planning
// topic.
func FallbackResponse() string {
	return `I'm your personal finance assistant. I can help you with:

- **Budget Analysis**: Analyze your spending and provide insights
- **Goal Planning**: Create savings plans for your financial goals
- **Tax Advice**: Get tips on tax-saving investments

Please ask me about budgeting, financial goals, or tax planning, and I'll be happy to help!`
}
