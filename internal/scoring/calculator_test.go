package scoring

import (
	"testing"

	"tenant_rating_backend/internal/extraction"
)

func defaultCalc() *Calculator { return NewCalculator(DefaultPolicy()) }

func TestAdjustedIncome(t *testing.T) {
	tests := []struct {
		name    string
		profile extraction.ApplicantProfile
		want    float64
	}{
		{
			name: "worked example",
			profile: extraction.ApplicantProfile{
				NetIncome:      10000,
				ChildCount:     2,
				Married:        true,
				SeniorityYears: 10,
				PensionGross:   800,
			},
			// 10000 - 800 - 300 + 350 + 50
			want: 9300,
		},
		{
			name:    "bare income",
			profile: extraction.ApplicantProfile{NetIncome: 5000},
			want:    5000,
		},
		{
			name: "mid seniority tier",
			profile: extraction.ApplicantProfile{
				NetIncome:      8000,
				SeniorityYears: 5,
			},
			want: 8125,
		},
		{
			name: "low seniority tier",
			profile: extraction.ApplicantProfile{
				NetIncome:      8000,
				SeniorityYears: 2,
			},
			want: 8030,
		},
		{
			name: "lower pension tier",
			profile: extraction.ApplicantProfile{
				NetIncome:    8000,
				PensionGross: 500,
			},
			want: 8020,
		},
		{
			name: "pension below all tiers",
			profile: extraction.ApplicantProfile{
				NetIncome:    8000,
				PensionGross: 300,
			},
			want: 8000,
		},
		{
			name: "clamped at zero",
			profile: extraction.ApplicantProfile{
				NetIncome:  500,
				ChildCount: 4,
				Married:    true,
			},
			want: 0,
		},
	}

	calc := defaultCalc()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.AdjustedIncome(tt.profile)
			if got != tt.want {
				t.Fatalf("AdjustedIncome = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFinalScore(t *testing.T) {
	tests := []struct {
		name      string
		tempScore float64
		rent      float64
		want      float64
	}{
		{"clamped high", 9300, 3000, 100},
		{"non-positive rent fallback", 0, 0, 100},
		{"negative rent fallback", 9300, -50, 100},
		{"mid range", 8000, 4000, 70},
		{"zero income", 0, 3000, 0},
	}

	calc := defaultCalc()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.FinalScore(tt.tempScore, tt.rent)
			if got != tt.want {
				t.Fatalf("FinalScore(%v, %v) = %v, want %v", tt.tempScore, tt.rent, got, tt.want)
			}
		})
	}
}

func TestBreakdownMatchesHeadlineNumbers(t *testing.T) {
	calc := defaultCalc()
	profile := extraction.ApplicantProfile{
		NetIncome:      10000,
		ChildCount:     2,
		Married:        true,
		SeniorityYears: 10,
		PensionGross:   800,
	}

	bd := calc.Breakdown(profile, 3000)

	if bd.TempScore != calc.AdjustedIncome(profile) {
		t.Fatalf("TempScore = %v, AdjustedIncome = %v", bd.TempScore, calc.AdjustedIncome(profile))
	}
	if bd.FinalScore != calc.FinalScore(bd.TempScore, 3000) {
		t.Fatalf("FinalScore = %v, want %v", bd.FinalScore, calc.FinalScore(bd.TempScore, 3000))
	}
	if last := bd.Terms[len(bd.Terms)-1]; last.Subtotal != bd.FinalScore {
		t.Fatalf("last term subtotal = %v, want final score %v", last.Subtotal, bd.FinalScore)
	}
	if bd.Formula == "" {
		t.Fatal("empty formula")
	}

	again := calc.Breakdown(profile, 3000)
	if again.TempScore != bd.TempScore || again.FinalScore != bd.FinalScore || again.Formula != bd.Formula {
		t.Fatal("breakdown is not deterministic for identical inputs")
	}
}

func TestBreakdownClampTerm(t *testing.T) {
	calc := defaultCalc()
	profile := extraction.ApplicantProfile{NetIncome: 500, ChildCount: 4, Married: true}

	bd := calc.Breakdown(profile, 3000)
	if bd.TempScore != 0 {
		t.Fatalf("TempScore = %v, want 0 after clamp", bd.TempScore)
	}
	if bd.FinalScore != 0 {
		t.Fatalf("FinalScore = %v, want 0", bd.FinalScore)
	}
}

func TestPensionDeductionRateMode(t *testing.T) {
	policy := DefaultPolicy()
	policy.PensionBonus.Mode = PensionModeDeductionRate
	calc := NewCalculator(policy)

	tests := []struct {
		name    string
		percent float64
		want    float64
	}{
		{"at baseline", 6, 8000},
		{"below baseline", 4, 8000},
		{"two points over", 8, 8050},
		{"capped", 15, 8100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := extraction.ApplicantProfile{NetIncome: 8000, PensionDeductionPercent: tt.percent}
			got := calc.AdjustedIncome(profile)
			if got != tt.want {
				t.Fatalf("AdjustedIncome = %v, want %v", got, tt.want)
			}
		})
	}
}
