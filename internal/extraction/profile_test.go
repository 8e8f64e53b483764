package extraction

import (
	"math"
	"testing"
	"time"

	"tenant_rating_backend/platform/docintel"
)

var testNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestBuildProfileNetIncome(t *testing.T) {
	doc := docintel.Document{Fields: map[string]docintel.Field{
		"שכר נטו": currencyField(9500, 0.9),
	}}
	p := BuildProfile(doc, testNow)
	if p.NetIncome == nil || *p.NetIncome != 9500 {
		t.Fatalf("NetIncome = %v, want 9500", p.NetIncome)
	}
}

func TestBuildProfileMinusMarker(t *testing.T) {
	doc := docintel.Document{Fields: map[string]docintel.Field{
		"שכר נטו": currencyField(1200, 0.9),
		"מינוס":   textField("מינוס", 0.9),
	}}
	p := BuildProfile(doc, testNow)
	if p.NetIncome == nil || *p.NetIncome != -1200 {
		t.Fatalf("NetIncome = %v, want -1200", p.NetIncome)
	}
}

func TestBuildProfileUnresolvedIncomeIsNil(t *testing.T) {
	p := BuildProfile(docintel.Document{Fields: map[string]docintel.Field{}}, testNow)
	if p.NetIncome != nil {
		t.Fatalf("NetIncome = %v, want nil", *p.NetIncome)
	}
}

func TestBuildProfileSeniorityDirect(t *testing.T) {
	doc := docintel.Document{Fields: map[string]docintel.Field{
		"וותק": numberField(7.5, 0.9),
	}}
	p := BuildProfile(doc, testNow)
	if p.SeniorityYears != 7.5 {
		t.Fatalf("SeniorityYears = %v, want 7.5", p.SeniorityYears)
	}
}

func TestBuildProfileSeniorityFromStartDate(t *testing.T) {
	doc := docintel.Document{Fields: map[string]docintel.Field{
		"תאריך תחילת עבודה": textField("1/6/2020", 0.9),
	}}
	p := BuildProfile(doc, testNow)
	// Four years from June 2020 to June 2024.
	if math.Abs(p.SeniorityYears-4.0) > 0.02 {
		t.Fatalf("SeniorityYears = %v, want ~4.0", p.SeniorityYears)
	}
}

func TestBuildProfilePensionFraction(t *testing.T) {
	doc := docintel.Document{Fields: map[string]docintel.Field{
		"ברוטו לפנסיה":  currencyField(10000, 0.9),
		"ניכויים לפנסיה": currencyField(700, 0.9),
	}}
	p := BuildProfile(doc, testNow)
	if p.PensionGross != 10000 {
		t.Fatalf("PensionGross = %v, want 10000", p.PensionGross)
	}
	if p.PensionDeduction != 0.07 {
		t.Fatalf("PensionDeduction = %v, want 0.07", p.PensionDeduction)
	}
}

func TestBuildProfilePensionDeductionWithoutGross(t *testing.T) {
	doc := docintel.Document{Fields: map[string]docintel.Field{
		"ניכויים לפנסיה": currencyField(700, 0.9),
	}}
	p := BuildProfile(doc, testNow)
	if p.PensionDeduction != 0 {
		t.Fatalf("PensionDeduction = %v, want 0 when gross is absent", p.PensionDeduction)
	}
}

func TestBuildProfileFullSlip(t *testing.T) {
	doc := docintel.Document{Fields: map[string]docintel.Field{
		"שכר נטו":      currencyField(9500, 0.9),
		"מספר זהות":    textField("123456789", 0.5),
		"מספר ילדים":   numberField(2, 0.9),
		"מצב משפחתי":   textField("נשוי", 0.9),
		"חודש ושנה":    textField("03/2024", 0.6),
		"ברוטו לפנסיה": currencyField(11000, 0.9),
	}}
	p := BuildProfile(doc, testNow)

	if p.IdentityNumber != "123456789" {
		t.Fatalf("IdentityNumber = %q", p.IdentityNumber)
	}
	if p.ChildCount != 2 {
		t.Fatalf("ChildCount = %d, want 2", p.ChildCount)
	}
	if !p.Married {
		t.Fatal("Married = false, want true")
	}
	if p.PayPeriod == nil || !p.PayPeriod.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("PayPeriod = %v, want 2024-03-01", p.PayPeriod)
	}
}
