package extraction

import (
	"testing"
	"time"

	"tenant_rating_backend/platform/docintel"
)

func currencyField(amount float64, confidence float64) docintel.Field {
	return docintel.Field{
		Type:          docintel.FieldTypeCurrency,
		Confidence:    confidence,
		ValueCurrency: &docintel.CurrencyValue{Amount: amount, Symbol: "₪"},
	}
}

func numberField(v float64, confidence float64) docintel.Field {
	return docintel.Field{Type: docintel.FieldTypeNumber, Confidence: confidence, ValueNumber: &v}
}

func textField(content string, confidence float64) docintel.Field {
	return docintel.Field{Type: docintel.FieldTypeString, Confidence: confidence, Content: content}
}

func TestResolveDecimal(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]docintel.Field
		want   float64
		ok     bool
	}{
		{
			name:   "currency payload",
			fields: map[string]docintel.Field{"שכר נטו": currencyField(9500.50, 0.95)},
			want:   9500.50,
			ok:     true,
		},
		{
			name:   "number payload",
			fields: map[string]docintel.Field{"שכר נטו": numberField(8200, 0.9)},
			want:   8200,
			ok:     true,
		},
		{
			name:   "text with currency symbol and separators",
			fields: map[string]docintel.Field{"שכר נטו": textField("₪ 9,500.25", 0.9)},
			want:   9500.25,
			ok:     true,
		},
		{
			name:   "low confidence rejected",
			fields: map[string]docintel.Field{"שכר נטו": currencyField(9500, 0.8)},
			ok:     false,
		},
		{
			name:   "secondary alias",
			fields: map[string]docintel.Field{"נטו לתשלום": currencyField(7000, 0.9)},
			want:   7000,
			ok:     true,
		},
		{
			name:   "primary alias wins over secondary",
			fields: map[string]docintel.Field{"שכר נטו": currencyField(7000, 0.9), "נטו לתשלום": currencyField(9000, 0.99)},
			want:   7000,
			ok:     true,
		},
		{
			name:   "no digits in text",
			fields: map[string]docintel.Field{"שכר נטו": textField("לא זמין", 0.9)},
			ok:     false,
		},
		{
			name:   "missing field",
			fields: map[string]docintel.Field{},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveDecimal(tt.fields, netIncomeSpec)
			if ok != tt.ok {
				t.Fatalf("resolveDecimal ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("resolveDecimal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveIdentity(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]docintel.Field
		want   string
		ok     bool
	}{
		{
			name:   "clean nine digits",
			fields: map[string]docintel.Field{"מספר זהות": textField("123456789", 0.9)},
			want:   "123456789",
			ok:     true,
		},
		{
			name:   "spaces and dashes stripped",
			fields: map[string]docintel.Field{"מספר זהות": textField("123-45 6789", 0.9)},
			want:   "123456789",
			ok:     true,
		},
		{
			name:   "low confidence still accepted",
			fields: map[string]docintel.Field{"מספר זהות": textField("123456789", 0.4)},
			want:   "123456789",
			ok:     true,
		},
		{
			name:   "too short",
			fields: map[string]docintel.Field{"מספר זהות": textField("12345678", 0.9)},
			ok:     false,
		},
		{
			name:   "non-digit residue",
			fields: map[string]docintel.Field{"מספר זהות": textField("12345678X", 0.9)},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveIdentity(tt.fields)
			if ok != tt.ok {
				t.Fatalf("resolveIdentity ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Fatalf("resolveIdentity = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    time.Time
		ok      bool
	}{
		{"month and short year", "03/24", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"month and full year", "03/2024", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"full date", "15/3/2024", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"full date short year", "15/3/24", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"month out of range", "13/2024", time.Time{}, false},
		{"year out of range", "03/2500", time.Time{}, false},
		{"garbage", "חודש", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]docintel.Field{"חודש ושנה": textField(tt.content, 0.9)}
			got, ok := resolveDate(fields, payPeriodSpec)
			if ok != tt.ok {
				t.Fatalf("resolveDate(%q) ok = %v, want %v", tt.content, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Fatalf("resolveDate(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestResolveDateTypedPayload(t *testing.T) {
	date := "2024-03-15"
	fields := map[string]docintel.Field{
		"חודש ושנה": {Type: docintel.FieldTypeDate, Confidence: 0.95, Content: "garbage", ValueDate: &date},
	}
	got, ok := resolveDate(fields, payPeriodSpec)
	if !ok {
		t.Fatal("resolveDate failed on typed date payload")
	}
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("resolveDate = %v, want %v", got, want)
	}
}

func TestResolveMarried(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"נ", true},
		{"ר", false},
		{"נשוי", true},
		{"נשואה", true},
		{"רווק", false},
		{"גרוש", false},
	}

	for _, tt := range tests {
		fields := map[string]docintel.Field{"מצב משפחתי": textField(tt.content, 0.9)}
		got, ok := resolveMarried(fields)
		if !ok {
			t.Fatalf("resolveMarried(%q) did not resolve", tt.content)
		}
		if got != tt.want {
			t.Fatalf("resolveMarried(%q) = %v, want %v", tt.content, got, tt.want)
		}
	}
}
