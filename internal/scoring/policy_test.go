package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"tenant_rating_backend/internal/extraction"
)

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write policy file: %v", err)
	}
	return path
}

func TestLoadPolicyEmptyPathReturnsDefaults(t *testing.T) {
	policy, err := LoadPolicy("")
	if err != nil {
		t.Fatalf("LoadPolicy: %v", err)
	}
	if policy.ChildHaircut != 400 || policy.SpouseHaircut != 300 {
		t.Fatalf("unexpected defaults: %+v", policy)
	}
	if policy.DateRule != extraction.ContinuityCalendarMonth {
		t.Fatalf("DateRule = %s, want calendar-month", policy.DateRule)
	}
}

func TestLoadPolicyPartialOverlay(t *testing.T) {
	path := writePolicy(t, "child_haircut: 500\ndate_rule: day-window\n")

	policy, err := LoadPolicy(path)
	if err != nil {
		t.Fatalf("LoadPolicy: %v", err)
	}
	if policy.ChildHaircut != 500 {
		t.Fatalf("ChildHaircut = %v, want 500", policy.ChildHaircut)
	}
	if policy.DateRule != extraction.ContinuityDayWindow {
		t.Fatalf("DateRule = %s, want day-window", policy.DateRule)
	}
	// Untouched fields keep their defaults.
	if policy.SpouseHaircut != 300 || policy.RentToIncomeRatio != 0.35 {
		t.Fatalf("defaults lost: %+v", policy)
	}
}

func TestLoadPolicyTierOrdering(t *testing.T) {
	path := writePolicy(t, `
seniority_tiers:
  - {min_years: 0, per_year: 15}
  - {min_years: 9, per_year: 35}
  - {min_years: 4, per_year: 25}
`)
	policy, err := LoadPolicy(path)
	if err != nil {
		t.Fatalf("LoadPolicy: %v", err)
	}
	calc := NewCalculator(policy)
	got := calc.AdjustedIncome(extraction.ApplicantProfile{NetIncome: 8000, SeniorityYears: 10})
	if got != 8350 {
		t.Fatalf("AdjustedIncome = %v, want 8350 with top tier applied", got)
	}
}

func TestLoadPolicyRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad ratio", "rent_to_income_ratio: 1.5\n"},
		{"bad pension mode", "pension_bonus:\n  mode: lottery\n"},
		{"bad date rule", "date_rule: whenever\n"},
		{"malformed yaml", "child_haircut: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePolicy(t, tt.content)
			if _, err := LoadPolicy(path); err == nil {
				t.Fatal("LoadPolicy accepted invalid policy")
			}
		})
	}
}

func TestLoadPolicyMissingFile(t *testing.T) {
	if _, err := LoadPolicy(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadPolicy accepted missing file")
	}
}
