package extraction

import (
	"testing"
	"time"
)

func months(ms ...time.Time) []time.Time { return ms }

func m(y int, mo time.Month) time.Time {
	return time.Date(y, mo, 1, 0, 0, 0, 0, time.UTC)
}

func TestValidateOrdering(t *testing.T) {
	tests := []struct {
		name      string
		profile   ApplicantProfile
		batchSize int
		wantKind  FailureKind
	}{
		{
			name:      "missing identity reported first",
			profile:   ApplicantProfile{IdentityMissing: true, IdentityNumbers: []string{"123456789", "987654321"}},
			batchSize: 3,
			wantKind:  FailureIDMissing,
		},
		{
			name:      "no identities at all",
			profile:   ApplicantProfile{},
			batchSize: 3,
			wantKind:  FailureIDMissing,
		},
		{
			name: "two identities in a single earner batch",
			profile: ApplicantProfile{
				IdentityNumbers: []string{"123456789", "987654321"},
				PayPeriods:      months(m(2024, 1), m(2024, 2), m(2024, 3)),
			},
			batchSize: 3,
			wantKind:  FailureIDCountMismatch,
		},
		{
			name: "three identities in a couple batch",
			profile: ApplicantProfile{
				IdentityNumbers: []string{"111111111", "222222222", "333333333"},
			},
			batchSize: 6,
			wantKind:  FailureIDCountMismatch,
		},
		{
			name: "too few distinct months",
			profile: ApplicantProfile{
				IdentityNumbers: []string{"123456789"},
				PayPeriods:      months(m(2024, 1), m(2024, 2)),
			},
			batchSize: 3,
			wantKind:  FailureDateCountMismatch,
		},
		{
			name: "gap in months",
			profile: ApplicantProfile{
				IdentityNumbers: []string{"123456789"},
				PayPeriods:      months(m(2024, 1), m(2024, 2), m(2024, 4)),
			},
			batchSize: 3,
			wantKind:  FailureNonConsecutiveDates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.profile, tt.batchSize, ContinuityCalendarMonth)
			if err == nil {
				t.Fatal("Validate returned nil, want error")
			}
			if err.Kind != tt.wantKind {
				t.Fatalf("Kind = %s, want %s", err.Kind, tt.wantKind)
			}
			if err.Message == "" {
				t.Fatal("empty validation message")
			}
		})
	}
}

func TestValidatePasses(t *testing.T) {
	single := ApplicantProfile{
		IdentityNumbers: []string{"123456789"},
		PayPeriods:      months(m(2023, 12), m(2024, 1), m(2024, 2)),
	}
	if err := Validate(single, 3, ContinuityCalendarMonth); err != nil {
		t.Fatalf("single earner batch rejected: %v", err)
	}

	couple := ApplicantProfile{
		IdentityNumbers: []string{"123456789", "987654321"},
		PayPeriods:      months(m(2024, 1), m(2024, 2), m(2024, 3)),
	}
	if err := Validate(couple, 6, ContinuityCalendarMonth); err != nil {
		t.Fatalf("couple batch rejected: %v", err)
	}
}

func TestValidateYearBoundary(t *testing.T) {
	profile := ApplicantProfile{
		IdentityNumbers: []string{"123456789"},
		PayPeriods:      months(m(2023, 11), m(2023, 12), m(2024, 1)),
	}
	if err := Validate(profile, 3, ContinuityCalendarMonth); err != nil {
		t.Fatalf("year boundary rejected: %v", err)
	}
}

func TestValidateDayWindowRule(t *testing.T) {
	consecutive := ApplicantProfile{
		IdentityNumbers: []string{"123456789"},
		PayPeriods:      months(m(2024, 1), m(2024, 2), m(2024, 3)),
	}
	if err := Validate(consecutive, 3, ContinuityDayWindow); err != nil {
		t.Fatalf("consecutive months rejected under day window: %v", err)
	}

	gapped := ApplicantProfile{
		IdentityNumbers: []string{"123456789"},
		PayPeriods:      months(m(2024, 1), m(2024, 2), m(2024, 4)),
	}
	err := Validate(gapped, 3, ContinuityDayWindow)
	if err == nil || err.Kind != FailureNonConsecutiveDates {
		t.Fatalf("gapped months under day window: %v", err)
	}
}
