package extraction

import (
	"fmt"

	"tenant_rating_backend/platform/docintel"
)

// DebugTrace accumulates the raw evidence behind a batch analysis so a
// reviewer can audit what the model saw: every label/content pair per
// document, plus any per-file analysis failures.
type DebugTrace map[string]any

// AddDocument records the raw fields of one analyzed document under the
// originating file name.
func (t DebugTrace) AddDocument(fileName string, docIndex int, doc docintel.Document) {
	raw := make(map[string]string, len(doc.Fields))
	for label, f := range doc.Fields {
		raw[label] = f.Content
	}
	t[fmt.Sprintf("File_%s_Doc_%d", fileName, docIndex)] = raw
}

// AddError records a per-file analysis failure without aborting the batch.
func (t DebugTrace) AddError(fileName string, err error) {
	t[fmt.Sprintf("Error_%s", fileName)] = err.Error()
}
