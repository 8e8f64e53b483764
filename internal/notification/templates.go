package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title   string
	Heading string
}

type welcomeEmailData struct {
	baseEmailData
	FirstName string
}

type scoreEmailData struct {
	baseEmailData
	FirstName   string
	FinalScore  string
	CityName    string
	DesiredRent string
	StatusLabel string
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.0f", score)
}

func formatShekels(amount float64) string {
	return fmt.Sprintf("₪%.0f", amount)
}

func statusLabel(status string) string {
	switch status {
	case "approved":
		return "אושרה"
	case "rejected":
		return "נדחתה"
	default:
		return "בבדיקה"
	}
}
