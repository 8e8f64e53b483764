package notification

import (
	"strings"
	"testing"
)

func TestRenderWelcomeEmail(t *testing.T) {
	content, err := renderEmailTemplate("welcome.html", welcomeEmailData{
		baseEmailData: baseEmailData{Title: subjectWelcome, Heading: "ברוכים הבאים"},
		FirstName:     "דנה",
	})
	if err != nil {
		t.Fatalf("renderEmailTemplate: %v", err)
	}
	if !strings.Contains(content, "דנה") {
		t.Fatal("expected the first name in the rendered email")
	}
	if !strings.Contains(content, `dir="rtl"`) {
		t.Fatal("expected a right-to-left layout")
	}
}

func TestRenderScoreEmail(t *testing.T) {
	content, err := renderEmailTemplate("score.html", scoreEmailData{
		baseEmailData: baseEmailData{Title: "ציון הדירוג שלך", Heading: "ציון הדירוג שלך מוכן"},
		FirstName:     "יוסי",
		FinalScore:    formatScore(87),
		CityName:      "תל אביב",
		DesiredRent:   formatShekels(4500),
		StatusLabel:   statusLabel("pending"),
	})
	if err != nil {
		t.Fatalf("renderEmailTemplate: %v", err)
	}
	for _, want := range []string{"יוסי", "87", "תל אביב", "₪4500", "בבדיקה"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in the rendered email", want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	cases := map[string]string{
		"approved": "אושרה",
		"rejected": "נדחתה",
		"pending":  "בבדיקה",
		"other":    "בבדיקה",
	}
	for status, want := range cases {
		if got := statusLabel(status); got != want {
			t.Fatalf("statusLabel(%q) = %q, want %q", status, got, want)
		}
	}
}
