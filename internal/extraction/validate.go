package extraction

// Batch consistency rules. They run in a fixed order and the first failure
// wins, so callers always see the most fundamental problem first.

// FailureKind identifies which batch rule a payslip set violated.
type FailureKind string

const (
	FailureIDMissing           FailureKind = "id_missing"
	FailureIDCountMismatch     FailureKind = "id_count_mismatch"
	FailureDateCountMismatch   FailureKind = "date_count_mismatch"
	FailureNonConsecutiveDates FailureKind = "non_consecutive_dates"
)

// ContinuityRule selects how consecutive pay periods are checked.
type ContinuityRule string

const (
	// ContinuityCalendarMonth requires each period to be exactly one
	// calendar month after the previous one.
	ContinuityCalendarMonth ContinuityRule = "calendar-month"
	// ContinuityDayWindow accepts gaps of 25 to 35 days between periods,
	// tolerating payroll runs that drift around month boundaries.
	ContinuityDayWindow ContinuityRule = "day-window"
)

// ValidationError reports a failed batch rule with a message suitable for
// showing to the applicant.
type ValidationError struct {
	Kind    FailureKind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

const (
	perPersonSlips = 3
	dayWindowMin   = 25
	dayWindowMax   = 35
)

// Validate checks a batch for internal consistency: identity numbers must be
// present and match the expected earner count, and the pay periods of a
// single-earner batch must form a run of consecutive months.
func Validate(profile ApplicantProfile, batchSize int, rule ContinuityRule) *ValidationError {
	if profile.IdentityMissing || len(profile.IdentityNumbers) == 0 {
		return &ValidationError{
			Kind:    FailureIDMissing,
			Message: "לא מצליחים לזהות את מספר הזהות באחד או יותר מהתלושים.",
		}
	}

	switch batchSize {
	case perPersonSlips:
		if len(profile.IdentityNumbers) != 1 {
			return &ValidationError{
				Kind:    FailureIDCountMismatch,
				Message: "מספרי הזהות בתלושים אינם תואמים.",
			}
		}
	case fullBatchSize:
		if len(profile.IdentityNumbers) > 2 {
			return &ValidationError{
				Kind:    FailureIDCountMismatch,
				Message: "יותר מדי מספרי זהות שונים בתלושים.",
			}
		}
	}

	// A single-earner batch must cover three distinct months; a couple's
	// six slips overlap in pairs, so only the distinct run is checked.
	if batchSize == perPersonSlips && len(profile.PayPeriods) != perPersonSlips {
		return &ValidationError{
			Kind:    FailureDateCountMismatch,
			Message: "נדרשים 3 תאריכי תלוש שונים ומזוהים.",
		}
	}
	if !consecutive(profile, rule) {
		return &ValidationError{
			Kind:    FailureNonConsecutiveDates,
			Message: "תאריכי התלושים אינם סמוכים.",
		}
	}

	return nil
}

func consecutive(profile ApplicantProfile, rule ContinuityRule) bool {
	periods := profile.PayPeriods
	for i := 1; i < len(periods); i++ {
		prev, cur := periods[i-1], periods[i]
		switch rule {
		case ContinuityDayWindow:
			days := int(cur.Sub(prev).Hours() / 24)
			if days < dayWindowMin || days > dayWindowMax {
				return false
			}
		default:
			months := (cur.Year()-prev.Year())*12 + int(cur.Month()) - int(prev.Month())
			if months != 1 {
				return false
			}
		}
	}
	return true
}
