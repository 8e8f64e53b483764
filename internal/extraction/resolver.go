package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tenant_rating_backend/platform/docintel"
)

var (
	nonNumericRe   = regexp.MustCompile(`[^0-9.]`)
	identityRe     = regexp.MustCompile(`^\d{9}$`)
	identityCleanRe = regexp.MustCompile(`[\s-]`)
)

// lookup walks the spec's aliases in priority order and returns the first
// field whose confidence clears the floor. When the spec allows it, a
// low-confidence match is kept as a fallback and returned only if no
// confident candidate exists.
func lookup(fields map[string]docintel.Field, spec FieldSpec) (docintel.Field, string, bool) {
	var (
		fallback      docintel.Field
		fallbackAlias string
		haveFallback  bool
	)
	for _, alias := range spec.Aliases {
		f, ok := fields[alias]
		if !ok {
			continue
		}
		if f.Confidence > confidenceFloor {
			return f, alias, true
		}
		if spec.AllowLowConfidence && !haveFallback {
			fallback, fallbackAlias, haveFallback = f, alias, true
		}
	}
	if haveFallback {
		return fallback, fallbackAlias, true
	}
	return docintel.Field{}, "", false
}

// resolveDecimal extracts a numeric value from a field. Currency and number
// payloads are used directly; anything else falls back to parsing the raw
// content with non-numeric characters stripped.
func resolveDecimal(fields map[string]docintel.Field, spec FieldSpec) (float64, bool) {
	f, _, ok := lookup(fields, spec)
	if !ok {
		return 0, false
	}
	return decimalValue(f)
}

func decimalValue(f docintel.Field) (float64, bool) {
	switch {
	case f.ValueCurrency != nil:
		return f.ValueCurrency.Amount, true
	case f.ValueNumber != nil:
		return *f.ValueNumber, true
	}
	cleaned := nonNumericRe.ReplaceAllString(f.Content, "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// resolveText returns the trimmed raw content of a field.
func resolveText(fields map[string]docintel.Field, spec FieldSpec) (string, bool) {
	f, _, ok := lookup(fields, spec)
	if !ok {
		return "", false
	}
	s := strings.TrimSpace(f.Content)
	if s == "" {
		return "", false
	}
	return s, true
}

// resolveIdentity returns a cleaned national identity number. Whitespace and
// dashes are stripped; the result must be exactly nine digits.
func resolveIdentity(fields map[string]docintel.Field) (string, bool) {
	raw, ok := resolveText(fields, identityNumberSpec)
	if !ok {
		return "", false
	}
	cleaned := identityCleanRe.ReplaceAllString(raw, "")
	if !identityRe.MatchString(cleaned) {
		return "", false
	}
	return cleaned, true
}

// resolveDate extracts a calendar date, preferring the model's typed date
// payload over the raw text. The result is normalized to the first day of
// its month in UTC.
func resolveDate(fields map[string]docintel.Field, spec FieldSpec) (time.Time, bool) {
	f, _, ok := lookup(fields, spec)
	if !ok {
		return time.Time{}, false
	}
	if f.ValueDate != nil {
		if t, err := time.Parse("2006-01-02", *f.ValueDate); err == nil {
			return firstOfMonth(t), true
		}
	}
	t, err := parseFlexibleDate(strings.TrimSpace(f.Content))
	if err != nil {
		return time.Time{}, false
	}
	return firstOfMonth(t), true
}

// parseFlexibleDate accepts the date shapes seen on Israeli payslips:
// month/two-digit-year, month/four-digit-year, and full day/month/year
// with either year width.
func parseFlexibleDate(s string) (time.Time, error) {
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 2:
		month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || month < 1 || month > 12 {
			return time.Time{}, fmt.Errorf("parse date %q: bad month", s)
		}
		year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return time.Time{}, fmt.Errorf("parse date %q: bad year", s)
		}
		switch {
		case year < 100:
			year += 2000
		case year < 1900 || year > 2100:
			return time.Time{}, fmt.Errorf("parse date %q: year out of range", s)
		}
		return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
	case 3:
		for _, layout := range []string{"2/1/2006", "2/1/06"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("parse date %q: unrecognized day/month/year form", s)
	}
	return time.Time{}, fmt.Errorf("parse date %q: unrecognized form", s)
}

// resolveMarried interprets the marital status field. A lone "נ" means
// married; longer strings count as married when they contain the "נש"
// prefix of "נשוי"/"נשואה".
func resolveMarried(fields map[string]docintel.Field) (bool, bool) {
	raw, ok := resolveText(fields, maritalStatusSpec)
	if !ok {
		return false, false
	}
	runes := []rune(raw)
	if len(runes) == 1 {
		return string(runes) == "נ", true
	}
	return strings.Contains(raw, "נש"), true
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
