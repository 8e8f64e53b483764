package extraction

import (
	"math"
	"sort"
	"time"
)

// ApplicantProfile is the batch-level view of an applicant, built by folding
// the per-document profiles together.
type ApplicantProfile struct {
	NetIncome               float64 // mean over documents that resolved it, rounded to 2 decimals
	ChildCount              int
	SeniorityYears          float64 // rounded to 1 decimal
	PensionGross            float64
	PensionDeductionPercent float64
	Married                 bool

	IdentityNumbers []string    // distinct, in first-seen order
	PayPeriods      []time.Time // distinct, ascending
	IdentityMissing bool        // at least one document resolved no identity number
}

// fullBatchSize is the batch size at which both halves of a couple are
// assumed present, implying a married applicant.
const fullBatchSize = 6

// Aggregate folds per-document profiles into one applicant profile.
// Net income averages over the documents that resolved it; child count,
// seniority and the pension figures take the maximum seen; marriage is
// inferred when any document says so, when children are present, or when
// the batch covers two earners.
func Aggregate(profiles []DocumentProfile, batchSize int) ApplicantProfile {
	var (
		agg         ApplicantProfile
		incomeSum   float64
		incomeCount int
		seenIDs     = make(map[string]struct{})
		seenPeriods = make(map[time.Time]struct{})
	)

	for _, p := range profiles {
		if p.NetIncome != nil {
			incomeSum += *p.NetIncome
			incomeCount++
		}

		if p.IdentityNumber == "" {
			agg.IdentityMissing = true
		} else if _, dup := seenIDs[p.IdentityNumber]; !dup {
			seenIDs[p.IdentityNumber] = struct{}{}
			agg.IdentityNumbers = append(agg.IdentityNumbers, p.IdentityNumber)
		}

		if p.PayPeriod != nil {
			if _, dup := seenPeriods[*p.PayPeriod]; !dup {
				seenPeriods[*p.PayPeriod] = struct{}{}
				agg.PayPeriods = append(agg.PayPeriods, *p.PayPeriod)
			}
		}

		agg.ChildCount = max(agg.ChildCount, p.ChildCount)
		agg.SeniorityYears = math.Max(agg.SeniorityYears, p.SeniorityYears)
		agg.PensionGross = math.Max(agg.PensionGross, p.PensionGross)
		agg.PensionDeductionPercent = math.Max(agg.PensionDeductionPercent, p.PensionDeduction*100)

		if p.Married {
			agg.Married = true
		}
	}

	if incomeCount > 0 {
		agg.NetIncome = round2(incomeSum / float64(incomeCount))
	}
	agg.SeniorityYears = round1(agg.SeniorityYears)

	if agg.ChildCount > 0 || batchSize == fullBatchSize {
		agg.Married = true
	}

	sort.Slice(agg.PayPeriods, func(i, j int) bool {
		return agg.PayPeriods[i].Before(agg.PayPeriods[j])
	})

	return agg
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
