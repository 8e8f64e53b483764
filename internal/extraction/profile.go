package extraction

import (
	"time"

	"tenant_rating_backend/platform/docintel"
)

// DocumentProfile holds the normalized fields of a single payslip. Pointer
// fields distinguish "absent" from a genuine zero; value fields treat zero
// as absent, matching how they are aggregated.
type DocumentProfile struct {
	NetIncome        *float64
	IdentityNumber   string
	ChildCount       int
	SeniorityYears   float64
	PensionGross     float64
	PensionDeduction float64 // fraction of gross, 0 when either side is absent
	Married          bool
	PayPeriod        *time.Time
}

const daysPerYear = 365.25

// BuildProfile resolves every semantic field of one analyzed payslip. now
// anchors the seniority fallback computed from the employment start date.
func BuildProfile(doc docintel.Document, now time.Time) DocumentProfile {
	var p DocumentProfile

	if net, ok := resolveDecimal(doc.Fields, netIncomeSpec); ok {
		// A minus marker on the slip means the net amount is owed, not paid.
		if _, negative := resolveText(doc.Fields, minusMarkerSpec); negative {
			net = -net
		}
		p.NetIncome = &net
	}

	if id, ok := resolveIdentity(doc.Fields); ok {
		p.IdentityNumber = id
	}

	if children, ok := resolveDecimal(doc.Fields, childCountSpec); ok && children > 0 {
		p.ChildCount = int(children)
	}

	if years, ok := resolveDecimal(doc.Fields, senioritySpec); ok {
		p.SeniorityYears = years
	} else if start, ok := resolveDate(doc.Fields, employmentStartSpec); ok {
		if d := now.Sub(start); d > 0 {
			p.SeniorityYears = d.Hours() / 24 / daysPerYear
		}
	}

	gross, hasGross := resolveDecimal(doc.Fields, pensionGrossSpec)
	if hasGross {
		p.PensionGross = gross
	}
	if deduction, ok := resolveDecimal(doc.Fields, pensionDeductionSpec); ok && hasGross && gross > 0 {
		p.PensionDeduction = deduction / gross
	}

	if married, ok := resolveMarried(doc.Fields); ok {
		p.Married = married
	}

	if period, ok := resolveDate(doc.Fields, payPeriodSpec); ok {
		p.PayPeriod = &period
	}

	return p
}
