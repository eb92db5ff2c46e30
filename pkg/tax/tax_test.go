package tax

import (
	"errors"
	"testing"

	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/shopspring/decimal"
)

func assertDecimal(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	expected := decimal.RequireFromString(want)
	if !got.Equal(expected) {
		t.Errorf("%s = %s, expected %s", field, got, expected)
	}
}

func TestComputeNewRegime(t *testing.T) {
	computation, err := Compute(
		decimal.NewFromInt(1200000),
		DeductionSet{BucketSection80C: decimal.NewFromInt(150000)},
		NewRegimePolicy(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDecimal(t, "TaxableIncome", computation.TaxableIncome, "1000000")
	// 0 + 5% of 250k + 10% of 250k + 15% of 250k
	assertDecimal(t, "TaxBeforeCess", computation.TaxBeforeCess, "75000")
	assertDecimal(t, "TaxWithCess", computation.TaxWithCess, "78000")
	assertDecimal(t, "EffectiveRate", computation.EffectiveRate, "6.5")
}

func TestComputeOldRegime(t *testing.T) {
	computation, err := Compute(
		decimal.NewFromInt(1200000),
		DeductionSet{BucketSection80C: decimal.NewFromInt(150000)},
		OldRegimePolicy(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDecimal(t, "TaxableIncome", computation.TaxableIncome, "1000000")
	// 0 + 5% of 250k + 20% of 500k
	assertDecimal(t, "TaxBeforeCess", computation.TaxBeforeCess, "112500")
	assertDecimal(t, "TaxWithCess", computation.TaxWithCess, "117000")
}

func TestComputeCapsDeductionsPerBucket(t *testing.T) {
	computation, err := Compute(
		decimal.NewFromInt(1200000),
		DeductionSet{
			BucketSection80C: decimal.NewFromInt(500000),
			BucketSection80D: decimal.NewFromInt(100000),
		},
		NewRegimePolicy(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDecimal(t, "80c capped", computation.Deductions[BucketSection80C], "150000")
	assertDecimal(t, "80d capped", computation.Deductions[BucketSection80D], "25000")
	assertDecimal(t, "TotalDeductions", computation.TotalDeductions, "175000")
	// 1200000 - 50000 - 175000
	assertDecimal(t, "TaxableIncome", computation.TaxableIncome, "975000")
}

func TestComputeUnknownBucketContributesNothing(t *testing.T) {
	computation, err := Compute(
		decimal.NewFromInt(400000),
		DeductionSet{"80zz": decimal.NewFromInt(100000)},
		NewRegimePolicy(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDecimal(t, "TotalDeductions", computation.TotalDeductions, "0")
	assertDecimal(t, "TaxableIncome", computation.TaxableIncome, "350000")
	if _, present := computation.Deductions["80zz"]; present {
		t.Error("unknown bucket should not appear in capped deductions")
	}
}

func TestComputeBelowFirstSlab(t *testing.T) {
	computation, err := Compute(decimal.NewFromInt(280000), nil, NewRegimePolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDecimal(t, "TaxableIncome", computation.TaxableIncome, "230000")
	assertDecimal(t, "TaxBeforeCess", computation.TaxBeforeCess, "0")
	assertDecimal(t, "TaxWithCess", computation.TaxWithCess, "0")
	assertDecimal(t, "EffectiveRate", computation.EffectiveRate, "0")
}

func TestComputeDeductionsNeverGoNegative(t *testing.T) {
	computation, err := Compute(
		decimal.NewFromInt(100000),
		DeductionSet{BucketSection80C: decimal.NewFromInt(150000)},
		NewRegimePolicy(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDecimal(t, "TaxableIncome", computation.TaxableIncome, "0")
	assertDecimal(t, "TaxWithCess", computation.TaxWithCess, "0")
}

func TestComputeMonotonicInIncome(t *testing.T) {
	deductions := DeductionSet{BucketSection80C: decimal.NewFromInt(150000)}
	incomes := []int64{200000, 300000, 500000, 750000, 1000000, 1200000, 1500000, 2500000}

	previous := decimal.Zero
	for _, income := range incomes {
		computation, err := Compute(decimal.NewFromInt(income), deductions, NewRegimePolicy())
		if err != nil {
			t.Fatalf("unexpected error at income %d: %v", income, err)
		}
		if computation.TaxWithCess.LessThan(previous) {
			t.Errorf("tax decreased at income %d: %s < %s", income, computation.TaxWithCess, previous)
		}
		previous = computation.TaxWithCess
	}
}

func TestComputeInvalidInput(t *testing.T) {
	policy := NewRegimePolicy()

	_, err := Compute(decimal.NewFromInt(-1), nil, policy)
	if !errors.Is(err, finance.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for negative income, got %v", err)
	}

	_, err = Compute(decimal.NewFromInt(100000),
		DeductionSet{BucketSection80C: decimal.NewFromInt(-5)}, policy)
	if !errors.Is(err, finance.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for negative deduction, got %v", err)
	}
}

func TestComputeZeroIncome(t *testing.T) {
	_, err := Compute(decimal.Zero, nil, NewRegimePolicy())
	if !errors.Is(err, finance.ErrDivisionUndefined) {
		t.Errorf("expected ErrDivisionUndefined, got %v", err)
	}
}

func TestCompareRegimes(t *testing.T) {
	comparison, err := CompareRegimes(
		decimal.NewFromInt(1200000),
		DeductionSet{BucketSection80C: decimal.NewFromInt(150000)},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if comparison.Old.Regime != RegimeOld || comparison.New.Regime != RegimeNew {
		t.Fatal("comparison regimes mislabeled")
	}
	assertDecimal(t, "old TaxWithCess", comparison.Old.TaxWithCess, "117000")
	assertDecimal(t, "new TaxWithCess", comparison.New.TaxWithCess, "78000")
	if comparison.Recommended != RegimeNew {
		t.Errorf("recommended = %s, expected %s", comparison.Recommended, RegimeNew)
	}
	assertDecimal(t, "Savings", comparison.Savings, "39000")
}

func TestCompareRegimesTieGoesToNew(t *testing.T) {
	// Below both first slabs: both regimes owe zero.
	comparison, err := CompareRegimes(decimal.NewFromInt(250000), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comparison.Recommended != RegimeNew {
		t.Errorf("recommended = %s, expected %s on tie", comparison.Recommended, RegimeNew)
	}
	assertDecimal(t, "Savings", comparison.Savings, "0")
}
