// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/iwvelando/finance-planner/pkg/tax"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateRegime checks if the regime is one of the supported tax regimes.
func ValidateRegime(regime string) error {
	if regime != string(tax.RegimeOld) && regime != string(tax.RegimeNew) {
		return fmt.Errorf("expected tax regime of %s or %s, got %s",
			tax.RegimeOld, tax.RegimeNew, regime)
	}
	return nil
}
