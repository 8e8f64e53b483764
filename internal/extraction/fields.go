// Package extraction turns raw document-intelligence output into a validated
// applicant profile: per-document field resolution, batch aggregation, and
// batch-level consistency checks.
package extraction

// FieldSpec describes how one semantic field is located in a document's raw
// field set: an ordered list of acceptable labels (highest priority first)
// and whether low-confidence candidates may be used as a fallback.
type FieldSpec struct {
	Name    string
	Aliases []string
	// AllowLowConfidence admits candidates at or below the confidence floor
	// when no confident candidate exists. Used for fields feeding hard
	// equality checks downstream, where recall matters more than precision.
	AllowLowConfidence bool
}

// confidenceFloor is the minimum confidence for a field to be trusted.
// Candidates must score strictly above it unless the spec allows fallback.
const confidenceFloor = 0.8

// Payslip field labels as produced by the trained analysis model (Hebrew).
var (
	netIncomeSpec = FieldSpec{
		Name:    "netIncome",
		Aliases: []string{"שכר נטו", "נטו לתשלום"},
	}

	minusMarkerSpec = FieldSpec{
		Name:    "minusMarker",
		Aliases: []string{"מינוס"},
	}

	identityNumberSpec = FieldSpec{
		Name:               "identityNumber",
		Aliases:            []string{"מספר זהות", "תעודת זהות", "ת.ז"},
		AllowLowConfidence: true,
	}

	childCountSpec = FieldSpec{
		Name:    "childCount",
		Aliases: []string{"מספר ילדים", "ילדים"},
	}

	senioritySpec = FieldSpec{
		Name:    "seniority",
		Aliases: []string{"וותק", "ותק"},
	}

	employmentStartSpec = FieldSpec{
		Name:    "employmentStart",
		Aliases: []string{"תאריך תחילת עבודה", "תחילת עבודה"},
	}

	pensionGrossSpec = FieldSpec{
		Name:    "pensionGross",
		Aliases: []string{"ברוטו לפנסיה"},
	}

	pensionDeductionSpec = FieldSpec{
		Name:    "pensionDeduction",
		Aliases: []string{"ניכויים לפנסיה", "הפרשה לפנסיה"},
	}

	maritalStatusSpec = FieldSpec{
		Name:    "maritalStatus",
		Aliases: []string{"מצב משפחתי"},
	}

	payPeriodSpec = FieldSpec{
		Name:               "payPeriod",
		Aliases:            []string{"חודש ושנה", "חודש שנה"},
		AllowLowConfidence: true,
	}
)
