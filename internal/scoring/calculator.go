package scoring

import (
	"fmt"
	"math"
	"strings"

	"tenant_rating_backend/internal/extraction"
)

// Term is one labeled step of the score computation with its running total.
type Term struct {
	Label    string  `json:"label"`
	Delta    float64 `json:"delta"`
	Subtotal float64 `json:"subtotal"`
}

// Breakdown is the audit view of a scoring call. Its numbers are produced by
// the same computation as AdjustedIncome and FinalScore, so they always
// agree with the headline results.
type Breakdown struct {
	Terms             []Term  `json:"terms"`
	TempScore         float64 `json:"tempScore"`
	MaxAffordableRent float64 `json:"maxAffordableRent"`
	FinalScore        float64 `json:"finalScore"`
	Formula           string  `json:"formula"`
}

// Calculator scores applicant profiles under a fixed policy. All methods
// are pure.
type Calculator struct {
	policy Policy
}

func NewCalculator(policy Policy) *Calculator {
	return &Calculator{policy: policy}
}

// AdjustedIncome computes the "temp score": net income after risk haircuts
// and quality bonuses, clamped to be non-negative.
func (c *Calculator) AdjustedIncome(profile extraction.ApplicantProfile) float64 {
	terms := c.incomeTerms(profile)
	return terms[len(terms)-1].Subtotal
}

// FinalScore normalizes the adjusted income against the requested rent: the
// rent affordable at the policy's rent-to-income ratio, as a percentage of
// what was asked, clamped to [0,100]. Non-positive rent yields 100 since no
// meaningful ratio exists.
func (c *Calculator) FinalScore(tempScore, requestedRent float64) float64 {
	if requestedRent <= 0 {
		return 100
	}
	maxAffordable := tempScore * c.policy.RentToIncomeRatio
	return math.Min(math.Max(maxAffordable/requestedRent*100, 0), 100)
}

// MaxAffordableRent is the rent the applicant can carry at the policy ratio.
func (c *Calculator) MaxAffordableRent(tempScore float64) float64 {
	return tempScore * c.policy.RentToIncomeRatio
}

// Breakdown re-derives every term of the computation for audit. The totals
// are taken from the same term sequence AdjustedIncome sums and the same
// FinalScore arithmetic, so they match those results exactly.
func (c *Calculator) Breakdown(profile extraction.ApplicantProfile, requestedRent float64) Breakdown {
	terms := c.incomeTerms(profile)
	tempScore := terms[len(terms)-1].Subtotal
	maxAffordable := c.MaxAffordableRent(tempScore)
	final := c.FinalScore(tempScore, requestedRent)

	terms = append(terms,
		Term{Label: "max affordable rent", Delta: maxAffordable, Subtotal: maxAffordable},
		Term{Label: "final score", Delta: final, Subtotal: final},
	)

	return Breakdown{
		Terms:             terms,
		TempScore:         tempScore,
		MaxAffordableRent: maxAffordable,
		FinalScore:        final,
		Formula:           formatFormula(terms[:len(terms)-2], tempScore, maxAffordable, final),
	}
}

// incomeTerms is the single source of truth for the adjusted-income
// computation. The last term's subtotal is the temp score.
func (c *Calculator) incomeTerms(profile extraction.ApplicantProfile) []Term {
	var (
		terms []Term
		total float64
	)
	add := func(label string, delta float64) {
		total += delta
		terms = append(terms, Term{Label: label, Delta: delta, Subtotal: total})
	}

	add("net income", profile.NetIncome)
	add("child haircut", -float64(profile.ChildCount)*c.policy.ChildHaircut)
	if profile.Married {
		add("spouse haircut", -c.policy.SpouseHaircut)
	}
	add("seniority bonus", c.seniorityBonus(profile.SeniorityYears))
	add("pension bonus", c.pensionBonus(profile))
	if total < 0 {
		add("non-negative clamp", -total)
	}

	return terms
}

func (c *Calculator) seniorityBonus(years float64) float64 {
	for _, tier := range c.policy.SeniorityTiers {
		if years >= tier.MinYears {
			return years * tier.PerYear
		}
	}
	return 0
}

func (c *Calculator) pensionBonus(profile extraction.ApplicantProfile) float64 {
	p := c.policy.PensionBonus
	if p.Mode == PensionModeDeductionRate {
		excess := profile.PensionDeductionPercent - p.BaselinePercent
		if excess <= 0 {
			return 0
		}
		return math.Min(excess*p.PerPointBonus, p.MaxBonus)
	}
	for _, tier := range p.AbsoluteTiers {
		if profile.PensionGross >= tier.MinGross {
			return tier.Bonus
		}
	}
	return 0
}

func formatFormula(terms []Term, tempScore, maxAffordable, final float64) string {
	var b strings.Builder
	for i, t := range terms {
		switch {
		case i == 0:
			fmt.Fprintf(&b, "%.2f", t.Delta)
		case t.Delta < 0:
			fmt.Fprintf(&b, " - %.2f", -t.Delta)
		default:
			fmt.Fprintf(&b, " + %.2f", t.Delta)
		}
	}
	fmt.Fprintf(&b, " = %.2f; maxAffordable = %.2f; finalScore = %.2f", tempScore, maxAffordable, final)
	return b.String()
}
