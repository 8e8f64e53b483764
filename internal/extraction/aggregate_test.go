package extraction

import (
	"testing"
	"time"
)

func ptr(v float64) *float64 { return &v }

func month(y int, m time.Month) *time.Time {
	t := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAggregateMeanIncomeSkipsUnresolved(t *testing.T) {
	profiles := []DocumentProfile{
		{NetIncome: ptr(9000), IdentityNumber: "123456789"},
		{NetIncome: ptr(9500), IdentityNumber: "123456789"},
		{IdentityNumber: "123456789"},
	}
	agg := Aggregate(profiles, 3)
	if agg.NetIncome != 9250 {
		t.Fatalf("NetIncome = %v, want 9250", agg.NetIncome)
	}
}

func TestAggregateNegativeIncomeLowersMean(t *testing.T) {
	profiles := []DocumentProfile{
		{NetIncome: ptr(9000)},
		{NetIncome: ptr(-1200)},
	}
	agg := Aggregate(profiles, 3)
	if agg.NetIncome != 3900 {
		t.Fatalf("NetIncome = %v, want 3900", agg.NetIncome)
	}
}

func TestAggregateMaxima(t *testing.T) {
	profiles := []DocumentProfile{
		{ChildCount: 1, SeniorityYears: 2.5, PensionGross: 9000, PensionDeduction: 0.06},
		{ChildCount: 3, SeniorityYears: 2.51, PensionGross: 11000, PensionDeduction: 0.07},
		{ChildCount: 2, SeniorityYears: 1.0, PensionGross: 10000, PensionDeduction: 0.05},
	}
	agg := Aggregate(profiles, 3)
	if agg.ChildCount != 3 {
		t.Fatalf("ChildCount = %d, want 3", agg.ChildCount)
	}
	if agg.SeniorityYears != 2.5 {
		t.Fatalf("SeniorityYears = %v, want 2.5 after rounding", agg.SeniorityYears)
	}
	if agg.PensionGross != 11000 {
		t.Fatalf("PensionGross = %v, want 11000", agg.PensionGross)
	}
	if agg.PensionDeductionPercent != 7 {
		t.Fatalf("PensionDeductionPercent = %v, want 7", agg.PensionDeductionPercent)
	}
}

func TestAggregateMarriedInference(t *testing.T) {
	tests := []struct {
		name      string
		profiles  []DocumentProfile
		batchSize int
		want      bool
	}{
		{"explicit marital status", []DocumentProfile{{Married: true}}, 3, true},
		{"children imply married", []DocumentProfile{{ChildCount: 1}}, 3, true},
		{"couple batch implies married", []DocumentProfile{{}}, 6, true},
		{"single with no children", []DocumentProfile{{}}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := Aggregate(tt.profiles, tt.batchSize)
			if agg.Married != tt.want {
				t.Fatalf("Married = %v, want %v", agg.Married, tt.want)
			}
		})
	}
}

func TestAggregateDistinctIdentitiesAndPeriods(t *testing.T) {
	profiles := []DocumentProfile{
		{IdentityNumber: "123456789", PayPeriod: month(2024, 3)},
		{IdentityNumber: "123456789", PayPeriod: month(2024, 1)},
		{IdentityNumber: "987654321", PayPeriod: month(2024, 2)},
	}
	agg := Aggregate(profiles, 3)

	if len(agg.IdentityNumbers) != 2 {
		t.Fatalf("IdentityNumbers = %v, want 2 distinct", agg.IdentityNumbers)
	}
	if len(agg.PayPeriods) != 3 {
		t.Fatalf("PayPeriods = %v, want 3 distinct", agg.PayPeriods)
	}
	for i := 1; i < len(agg.PayPeriods); i++ {
		if !agg.PayPeriods[i-1].Before(agg.PayPeriods[i]) {
			t.Fatalf("PayPeriods not ascending: %v", agg.PayPeriods)
		}
	}
	if agg.IdentityMissing {
		t.Fatal("IdentityMissing = true, want false")
	}
}

func TestAggregateFlagsMissingIdentity(t *testing.T) {
	profiles := []DocumentProfile{
		{IdentityNumber: "123456789"},
		{},
	}
	agg := Aggregate(profiles, 3)
	if !agg.IdentityMissing {
		t.Fatal("IdentityMissing = false, want true")
	}
}

func TestAggregateIncomeRounding(t *testing.T) {
	profiles := []DocumentProfile{
		{NetIncome: ptr(9000.005)},
		{NetIncome: ptr(9000.005)},
		{NetIncome: ptr(9000.01)},
	}
	agg := Aggregate(profiles, 3)
	if agg.NetIncome != 9000.01 {
		t.Fatalf("NetIncome = %v, want 9000.01", agg.NetIncome)
	}
}
