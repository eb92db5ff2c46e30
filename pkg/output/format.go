// Package output provides utilities for formatting and displaying plan results.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iwvelando/finance-planner/internal/planner"
	"github.com/iwvelando/finance-planner/pkg/format"
	"github.com/iwvelando/finance-planner/pkg/mathutil"
	"github.com/iwvelando/finance-planner/pkg/tax"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(plan *planner.Plan) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Budget analysis (persona %s) ---\n", plan.Persona)
	_, _ = p.Printf("Monthly income  | %s\n", format.Currency(plan.Budget.MonthlyIncome))
	_, _ = p.Printf("Total expenses  | %s\n", format.Currency(plan.Budget.TotalExpenses))
	_, _ = p.Printf("Net savings     | %s\n", format.Currency(plan.Budget.NetSavings))
	_, _ = p.Printf("Savings rate    | %s\n", format.Percent(plan.Budget.SavingsRate))

	if len(plan.Budget.TopExpenses) > 0 {
		fmt.Printf("\nTop expenses:\n")
		fmt.Printf("Category        | Amount        | Share\n")
		fmt.Printf("________        | ______        | _____\n")
		for _, expense := range plan.Budget.TopExpenses {
			_, _ = p.Printf("%-15s | %-13s | %s\n",
				expense.Category,
				format.Currency(expense.Amount),
				format.Percent(expenseShare(expense.Amount, plan.Budget.TotalExpenses)))
		}
	}

	if len(plan.Insights) > 0 {
		fmt.Printf("\nInsights:\n")
		for _, insight := range plan.Insights {
			fmt.Printf("- %s\n", insight)
		}
	}

	for _, goal := range plan.Goals {
		fmt.Printf("\n--- Goal: %s ---\n", goal.Plan.Name)
		_, _ = p.Printf("Target          | %s\n", format.Currency(goal.Plan.TargetAmount))
		_, _ = p.Printf("Saved so far    | %s\n", format.Currency(goal.Plan.CurrentSavings))
		_, _ = p.Printf("Remaining       | %s\n", format.Currency(goal.Plan.RemainingAmount))
		_, _ = p.Printf("Monthly needed  | %s over %d months\n",
			format.Currency(goal.Plan.MonthlyRequired), goal.Plan.HorizonMonths)
		_, _ = p.Printf("Share of income | %s\n", format.Percent(goal.Plan.IncomePercentage))
		fmt.Printf("Feasibility     | %s\n", goal.Plan.Feasibility)
	}

	if plan.Tax != nil {
		fmt.Printf("\n--- Tax (%s) ---\n", plan.Tax.Mode)
		if plan.Tax.Comparison != nil {
			printComputation(p, plan.Tax.Comparison.Old)
			fmt.Printf("\n")
			printComputation(p, plan.Tax.Comparison.New)
			_, _ = p.Printf("\nRecommended     | %s regime (saves %s)\n",
				plan.Tax.Comparison.Recommended, format.Currency(plan.Tax.Comparison.Savings))
		} else if plan.Tax.Computation != nil {
			printComputation(p, plan.Tax.Computation)
		}
	}
}

func printComputation(p *message.Printer, computation *tax.Computation) {
	_, _ = p.Printf("Regime          | %s\n", computation.Regime)
	_, _ = p.Printf("Gross income    | %s\n", format.Currency(computation.GrossIncome))
	_, _ = p.Printf("Deductions      | %s (plus standard %s)\n",
		format.Currency(computation.TotalDeductions),
		format.Currency(computation.StandardDeduction))
	_, _ = p.Printf("Taxable income  | %s\n", format.Currency(computation.TaxableIncome))
	_, _ = p.Printf("Tax before cess | %s\n", format.Currency(computation.TaxBeforeCess))
	_, _ = p.Printf("Tax with cess   | %s\n", format.Currency(computation.TaxWithCess))
	_, _ = p.Printf("Effective rate  | %s\n", format.Percent(computation.EffectiveRate))
}

func expenseShare(amount, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return mathutil.RoundMoney(mathutil.Percentage(amount, total))
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(plan *planner.Plan) {
	fmt.Print(CsvString(plan))
}

// CsvString renders the plan as CSV rows of (section, field, value).
func CsvString(plan *planner.Plan) string {
	var builder strings.Builder
	builder.WriteString("\"section\",\"field\",\"value\"\n")

	writeRow := func(section, field, value string) {
		builder.WriteString(fmt.Sprintf("%q,%q,%q\n", section, field, value))
	}

	writeRow("budget", "monthly_income", plan.Budget.MonthlyIncome.StringFixed(2))
	writeRow("budget", "total_expenses", plan.Budget.TotalExpenses.StringFixed(2))
	writeRow("budget", "net_savings", plan.Budget.NetSavings.StringFixed(2))
	writeRow("budget", "savings_rate", plan.Budget.SavingsRate.StringFixed(2))
	for _, expense := range plan.Budget.TopExpenses {
		writeRow("top_expense", expense.Category, expense.Amount.StringFixed(2))
	}

	for _, goal := range plan.Goals {
		section := "goal:" + goal.Plan.Name
		writeRow(section, "target_amount", goal.Plan.TargetAmount.StringFixed(2))
		writeRow(section, "current_savings", goal.Plan.CurrentSavings.StringFixed(2))
		writeRow(section, "remaining_amount", goal.Plan.RemainingAmount.StringFixed(2))
		writeRow(section, "monthly_required", goal.Plan.MonthlyRequired.StringFixed(2))
		writeRow(section, "income_percentage", goal.Plan.IncomePercentage.StringFixed(2))
		writeRow(section, "feasibility", string(goal.Plan.Feasibility))
	}

	if plan.Tax != nil {
		if plan.Tax.Comparison != nil {
			writeComputationRows(writeRow, plan.Tax.Comparison.Old)
			writeComputationRows(writeRow, plan.Tax.Comparison.New)
			writeRow("tax", "recommended_regime", string(plan.Tax.Comparison.Recommended))
			writeRow("tax", "savings", plan.Tax.Comparison.Savings.StringFixed(2))
		} else if plan.Tax.Computation != nil {
			writeComputationRows(writeRow, plan.Tax.Computation)
		}
	}

	return builder.String()
}

func writeComputationRows(writeRow func(section, field, value string), computation *tax.Computation) {
	section := "tax:" + string(computation.Regime)
	writeRow(section, "gross_income", computation.GrossIncome.StringFixed(2))
	writeRow(section, "standard_deduction", computation.StandardDeduction.StringFixed(2))

	buckets := make([]string, 0, len(computation.Deductions))
	for bucket := range computation.Deductions {
		buckets = append(buckets, bucket)
	}
	sort.Strings(buckets)
	for _, bucket := range buckets {
		writeRow(section, "deduction_"+bucket, computation.Deductions[bucket].StringFixed(2))
	}

	writeRow(section, "taxable_income", computation.TaxableIncome.StringFixed(2))
	writeRow(section, "tax_before_cess", computation.TaxBeforeCess.StringFixed(2))
	writeRow(section, "tax_with_cess", computation.TaxWithCess.StringFixed(2))
	writeRow(section, "effective_rate", computation.EffectiveRate.StringFixed(2))
}
