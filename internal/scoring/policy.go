// Package scoring computes the rentability score: an adjusted-income figure
// derived from the applicant profile, normalized against the requested rent.
// The formula constants live in a Policy so the business rules can be tuned
// without touching the pipeline.
package scoring

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"tenant_rating_backend/internal/extraction"
)

// PensionMode selects how the pension-responsibility bonus is computed.
type PensionMode string

const (
	// PensionModeAbsolute awards a fixed bonus when the pension gross
	// amount crosses configured thresholds.
	PensionModeAbsolute PensionMode = "absolute"
	// PensionModeDeductionRate awards a bonus proportional to how far the
	// pension deduction percentage exceeds a baseline, capped.
	PensionModeDeductionRate PensionMode = "deduction-rate"
)

// SeniorityTier maps a minimum tenure to a per-year income bonus. Tiers are
// evaluated from the highest MinYears down; the first match wins.
type SeniorityTier struct {
	MinYears float64 `yaml:"min_years"`
	PerYear  float64 `yaml:"per_year"`
}

// PensionTier maps a minimum pension gross amount to a flat bonus.
type PensionTier struct {
	MinGross float64 `yaml:"min_gross"`
	Bonus    float64 `yaml:"bonus"`
}

// PensionBonusPolicy configures both pension bonus variants; Mode picks
// which one runs.
type PensionBonusPolicy struct {
	Mode          PensionMode   `yaml:"mode"`
	AbsoluteTiers []PensionTier `yaml:"absolute_tiers"`

	BaselinePercent float64 `yaml:"baseline_percent"`
	PerPointBonus   float64 `yaml:"per_point_bonus"`
	MaxBonus        float64 `yaml:"max_bonus"`
}

// Policy holds every tunable constant of the scoring formula plus the
// pay-period continuity rule the batch validator should apply.
type Policy struct {
	ChildHaircut      float64 `yaml:"child_haircut"`
	SpouseHaircut     float64 `yaml:"spouse_haircut"`
	RentToIncomeRatio float64 `yaml:"rent_to_income_ratio"`

	SeniorityTiers []SeniorityTier    `yaml:"seniority_tiers"`
	PensionBonus   PensionBonusPolicy `yaml:"pension_bonus"`

	DateRule extraction.ContinuityRule `yaml:"date_rule"`
}

// DefaultPolicy returns the production formula: child haircut 400, spouse
// haircut 300, 35% rent-to-income ratio, three seniority tiers, absolute
// pension thresholds, and exact calendar-month continuity.
func DefaultPolicy() Policy {
	return Policy{
		ChildHaircut:      400,
		SpouseHaircut:     300,
		RentToIncomeRatio: 0.35,
		SeniorityTiers: []SeniorityTier{
			{MinYears: 9, PerYear: 35},
			{MinYears: 4, PerYear: 25},
			{MinYears: 0, PerYear: 15},
		},
		PensionBonus: PensionBonusPolicy{
			Mode: PensionModeAbsolute,
			AbsoluteTiers: []PensionTier{
				{MinGross: 700, Bonus: 50},
				{MinGross: 400, Bonus: 20},
			},
			BaselinePercent: 6,
			PerPointBonus:   25,
			MaxBonus:        100,
		},
		DateRule: extraction.ContinuityCalendarMonth,
	}
}

// LoadPolicy reads a YAML policy file, layering it over the defaults so a
// partial file only overrides what it names. An empty path returns the
// defaults unchanged.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read scoring policy %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return Policy{}, fmt.Errorf("parse scoring policy %s: %w", path, err)
	}
	if err := policy.validate(); err != nil {
		return Policy{}, fmt.Errorf("scoring policy %s: %w", path, err)
	}

	sort.Slice(policy.SeniorityTiers, func(i, j int) bool {
		return policy.SeniorityTiers[i].MinYears > policy.SeniorityTiers[j].MinYears
	})
	sort.Slice(policy.PensionBonus.AbsoluteTiers, func(i, j int) bool {
		return policy.PensionBonus.AbsoluteTiers[i].MinGross > policy.PensionBonus.AbsoluteTiers[j].MinGross
	})

	return policy, nil
}

func (p Policy) validate() error {
	if p.RentToIncomeRatio <= 0 || p.RentToIncomeRatio > 1 {
		return fmt.Errorf("rent_to_income_ratio %v out of (0,1]", p.RentToIncomeRatio)
	}
	if len(p.SeniorityTiers) == 0 {
		return fmt.Errorf("seniority_tiers is empty")
	}
	switch p.PensionBonus.Mode {
	case PensionModeAbsolute, PensionModeDeductionRate:
	default:
		return fmt.Errorf("unknown pension bonus mode %q", p.PensionBonus.Mode)
	}
	switch p.DateRule {
	case extraction.ContinuityCalendarMonth, extraction.ContinuityDayWindow:
	default:
		return fmt.Errorf("unknown date_rule %q", p.DateRule)
	}
	return nil
}
