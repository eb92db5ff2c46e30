// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/tax"
	"github.com/spf13/viper"
)

// TaxModeCompare requests a side-by-side evaluation of both regimes instead
// of a single one.
const TaxModeCompare = "compare"

// Configuration holds all configuration for finance-planner.
type Configuration struct {
	Profile     ProfileConfig
	Goals       []GoalConfig
	Tax         *TaxConfig
	TopExpenses int           `mapstructure:"topExpenses" yaml:"topExpenses,omitempty"`
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"`
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ProfileConfig describes the financial profile being planned.
type ProfileConfig struct {
	MonthlyIncome float64 `mapstructure:"monthlyIncome" yaml:"monthlyIncome"`
	Persona       string  `yaml:"persona,omitempty"`
	Expenses      []ExpenseConfig
}

// ExpenseConfig is one spending category. Order matters: ranking ties
// resolve to declaration order.
type ExpenseConfig struct {
	Category string
	Amount   float64
}

// GoalConfig describes a savings goal.
type GoalConfig struct {
	Name           string
	TargetAmount   float64 `mapstructure:"targetAmount" yaml:"targetAmount"`
	CurrentSavings float64 `mapstructure:"currentSavings" yaml:"currentSavings,omitempty"`
	HorizonMonths  int     `mapstructure:"horizonMonths" yaml:"horizonMonths"`
}

// TaxConfig describes the tax computation request. Regime may be "old",
// "new", or "compare". AnnualIncome defaults to twelve times the monthly
// income when omitted.
type TaxConfig struct {
	Regime       string
	AnnualIncome float64            `mapstructure:"annualIncome" yaml:"annualIncome,omitempty"`
	Deductions   map[string]float64 `yaml:"deductions,omitempty"`
	Policy       *PolicyConfig      `yaml:"policy,omitempty"`
}

// PolicyConfig overrides statutory defaults for a tax year. Nil pointer
// fields fall back to the regime's default policy.
type PolicyConfig struct {
	StandardDeduction *float64           `mapstructure:"standardDeduction" yaml:"standardDeduction,omitempty"`
	CessRate          *float64           `mapstructure:"cessRate" yaml:"cessRate,omitempty"`
	Ceilings          map[string]float64 `yaml:"ceilings,omitempty"`
	Slabs             []SlabConfig       `yaml:"slabs,omitempty"`
}

// SlabConfig is one bracket of a configured slab table. A zero upper bound
// marks the unbounded top bracket.
type SlabConfig struct {
	UpperBound float64 `mapstructure:"upperBound" yaml:"upperBound,omitempty"`
	Rate       float64 `yaml:"rate"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory reader. This is the path the HTTP server uses.
func LoadConfigurationFromReader(reader io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if configuration.TopExpenses == 0 {
		configuration.TopExpenses = constants.DefaultTopExpenses
	}
	if configuration.Profile.Persona == "" {
		configuration.Profile.Persona = string(finance.PersonaGeneral)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard failures (negative amounts, bad horizons) surface
// later from the calculator itself; warnings cover the softer issues a user
// probably wants to know about before reading results.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if !finance.KnownPersona(finance.Persona(c.Profile.Persona)) {
		warnings = append(warnings, fmt.Sprintf(
			"unknown persona %q; advice will use the general persona", c.Profile.Persona))
	}
	if c.Profile.MonthlyIncome == 0 {
		warnings = append(warnings, "monthly income is zero; savings rate cannot be computed")
	}
	if len(c.Profile.Expenses) == 0 {
		warnings = append(warnings, "no expense categories configured")
	}

	seen := make(map[string]struct{}, len(c.Profile.Expenses))
	for _, expense := range c.Profile.Expenses {
		if _, dup := seen[expense.Category]; dup {
			warnings = append(warnings, fmt.Sprintf(
				"duplicate expense category %q; budget analysis will fail", expense.Category))
		}
		seen[expense.Category] = struct{}{}
	}

	for _, goal := range c.Goals {
		if goal.HorizonMonths > 50*constants.MonthsPerYear {
			warnings = append(warnings, fmt.Sprintf(
				"goal %q has a horizon of %d months; confirm this is intended", goal.Name, goal.HorizonMonths))
		}
		if goal.CurrentSavings >= goal.TargetAmount && goal.TargetAmount > 0 {
			warnings = append(warnings, fmt.Sprintf(
				"goal %q is already fully funded", goal.Name))
		}
	}

	if c.Tax != nil {
		switch c.Tax.Regime {
		case string(tax.RegimeOld), string(tax.RegimeNew), TaxModeCompare, "":
		default:
			warnings = append(warnings, fmt.Sprintf(
				"unknown tax regime %q; expected old, new, or compare", c.Tax.Regime))
		}
		if c.Tax.AnnualIncome == 0 && c.Profile.MonthlyIncome > 0 {
			warnings = append(warnings, fmt.Sprintf(
				"tax annual income not set; using monthly income x %d", constants.MonthsPerYear))
		}
	}

	return warnings
}
