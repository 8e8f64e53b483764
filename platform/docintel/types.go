package docintel

// FieldType is the value type reported by the service for an extracted field.
type FieldType string

const (
	FieldTypeCurrency FieldType = "currency"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeString   FieldType = "string"
)

// CurrencyValue is the parsed currency payload of a currency-typed field.
type CurrencyValue struct {
	Amount float64 `json:"amount"`
	Symbol string  `json:"currencySymbol,omitempty"`
}

// Field is one extracted field of an analyzed document: its reported type,
// the raw text content, a 0..1 confidence, and the typed value when the
// service managed to parse one.
type Field struct {
	Type          FieldType      `json:"type"`
	Content       string         `json:"content"`
	Confidence    float64        `json:"confidence"`
	ValueCurrency *CurrencyValue `json:"valueCurrency,omitempty"`
	ValueNumber   *float64       `json:"valueNumber,omitempty"`
	ValueDate     *string        `json:"valueDate,omitempty"` // YYYY-MM-DD
}

// Document is one recognized document instance within an analyzed file.
type Document struct {
	DocType    string           `json:"docType"`
	Confidence float64          `json:"confidence"`
	Fields     map[string]Field `json:"fields"`
}

// AnalyzeResult is the final output of a completed analysis operation.
type AnalyzeResult struct {
	ModelID   string     `json:"modelId"`
	Documents []Document `json:"documents"`
}
