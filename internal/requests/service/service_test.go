package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"tenant_rating_backend/internal/extraction"
	"tenant_rating_backend/internal/requests/transport"
	"tenant_rating_backend/internal/scoring"
	"tenant_rating_backend/platform/apperr"
	"tenant_rating_backend/platform/docintel"
	"tenant_rating_backend/platform/logger"

	"github.com/google/uuid"
)

// fakeAnalyzer returns a canned result per file, keyed by the file content.
type fakeAnalyzer struct {
	results map[string]*docintel.AnalyzeResult
	errs    map[string]error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, content []byte) (*docintel.AnalyzeResult, error) {
	key := string(content)
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	if result, ok := f.results[key]; ok {
		return result, nil
	}
	return nil, fmt.Errorf("no canned result for %q", key)
}

func payslipDoc(identity, period string) docintel.Document {
	return docintel.Document{
		DocType:    "payslip",
		Confidence: 0.99,
		Fields: map[string]docintel.Field{
			"שכר נטו": {
				Type: docintel.FieldTypeCurrency, Content: "9,000",
				Confidence: 0.95, ValueCurrency: &docintel.CurrencyValue{Amount: 9000},
			},
			"מספר זהות": {
				Type: docintel.FieldTypeString, Content: identity, Confidence: 0.95,
			},
			"חודש ושנה": {
				Type: docintel.FieldTypeString, Content: period, Confidence: 0.95,
			},
		},
	}
}

func singleDocResult(doc docintel.Document) *docintel.AnalyzeResult {
	return &docintel.AnalyzeResult{ModelID: "payslips-v3", Documents: []docintel.Document{doc}}
}

func newTestService(analyzer Analyzer) *Service {
	return New(nil, analyzer, scoring.DefaultPolicy(), time.Millisecond, logger.New("test"))
}

func uploads(contents ...string) []transport.UploadedFile {
	files := make([]transport.UploadedFile, 0, len(contents))
	for i, content := range contents {
		files = append(files, transport.UploadedFile{
			FileName:    fmt.Sprintf("slip%d.pdf", i+1),
			ContentType: "application/pdf",
			Content:     []byte(content),
		})
	}
	return files
}

func TestCreateRejectsWrongFileCount(t *testing.T) {
	svc := newTestService(&fakeAnalyzer{})
	form := transport.CreateRequestForm{DesiredRent: 3000, CityName: "חיפה"}

	for _, count := range []int{0, 1, 2, 4, 5, 7} {
		contents := make([]string, count)
		for i := range contents {
			contents[i] = fmt.Sprintf("file%d", i)
		}

		_, err := svc.Create(context.Background(), testUserID(), form, uploads(contents...))
		var appErr *apperr.Error
		if !errors.As(err, &appErr) {
			t.Fatalf("count %d: expected apperr, got %v", count, err)
		}
		if appErr.Kind != apperr.KindValidation {
			t.Fatalf("count %d: expected validation kind, got %v", count, appErr.Kind)
		}
		if appErr.Message != msgWrongFileCount {
			t.Fatalf("count %d: unexpected message %q", count, appErr.Message)
		}
	}
}

func TestCreateRejectsMismatchedIdentities(t *testing.T) {
	analyzer := &fakeAnalyzer{results: map[string]*docintel.AnalyzeResult{
		"a": singleDocResult(payslipDoc("123456789", "01/2024")),
		"b": singleDocResult(payslipDoc("123456789", "02/2024")),
		"c": singleDocResult(payslipDoc("987654321", "03/2024")),
	}}
	svc := newTestService(analyzer)

	_, err := svc.Create(context.Background(), testUserID(),
		transport.CreateRequestForm{DesiredRent: 3000, CityName: "חיפה"},
		uploads("a", "b", "c"))

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperr, got %v", err)
	}
	if appErr.Kind != apperr.KindValidation {
		t.Fatalf("expected validation kind, got %v", appErr.Kind)
	}
	if appErr.Message != "מספרי הזהות בתלושים אינם תואמים." {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
	if appErr.Details == nil {
		t.Fatal("expected the debug trace in details")
	}
}

func TestCreateRecordsAnalyzerFailureInTrace(t *testing.T) {
	analyzer := &fakeAnalyzer{
		results: map[string]*docintel.AnalyzeResult{
			"a": singleDocResult(payslipDoc("123456789", "01/2024")),
			"b": singleDocResult(payslipDoc("123456789", "02/2024")),
		},
		errs: map[string]error{
			"c": errors.New("service timeout"),
		},
	}
	svc := newTestService(analyzer)

	_, err := svc.Create(context.Background(), testUserID(),
		transport.CreateRequestForm{DesiredRent: 3000, CityName: "חיפה"},
		uploads("a", "b", "c"))

	// With one slip unreadable only two pay periods survive, so the batch
	// fails date-count validation instead of crashing on the bad file.
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperr, got %v", err)
	}
	if appErr.Message != "נדרשים 3 תאריכי תלוש שונים ומזוהים." {
		t.Fatalf("unexpected message %q", appErr.Message)
	}

	trace, ok := appErr.Details.(extraction.DebugTrace)
	if !ok {
		t.Fatalf("expected a debug trace in details, got %T", appErr.Details)
	}
	foundError := false
	for key := range trace {
		if strings.HasPrefix(key, "Error_") {
			foundError = true
		}
	}
	if !foundError {
		t.Fatal("expected an Error_ entry for the failed file in the trace")
	}
}

func testUserID() uuid.UUID {
	return uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
}
