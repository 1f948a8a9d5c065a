package mapping

import (
	"math"
	"strconv"
	"strings"
	"time"

	"vendor_registration/internal/domain/entities"
)

// ValueKind selects how a form value is converted before it is written to
// the CRM record.
type ValueKind string

const (
	KindString  ValueKind = "string"
	KindNumber  ValueKind = "number"
	KindBoolean ValueKind = "boolean"
)

// FieldMapping projects one form field onto one CRM field.
type FieldMapping struct {
	FormField   string
	RemoteField string
	Kind        ValueKind
}

// DerivedFields names the metadata fields set on every record.
type DerivedFields struct {
	SourceField          string
	SourceValue          string
	SubmittedAtField     string
	StatusField          string
	StatusValue          string
	EstimatedValueField  string
	UnitPriceField       string
	MinimumQuantityField string
}

// Mapper converts a canonical submission into the CRM field schema.
type Mapper struct {
	table   []FieldMapping
	derived DerivedFields
	now     func() time.Time
}

func NewMapper(table []FieldMapping, derived DerivedFields, now func() time.Time) *Mapper {
	if now == nil {
		now = time.Now
	}
	if derived.UnitPriceField == "" {
		derived.UnitPriceField = entities.FieldUnitPrice
	}
	if derived.MinimumQuantityField == "" {
		derived.MinimumQuantityField = entities.FieldMinimumOrderQuantity
	}
	return &Mapper{table: table, derived: derived, now: now}
}

// MapToRemoteSchema never fails: malformed or non-finite numbers become 0,
// and the estimated order value is omitted unless both operands parse and
// their product is finite.
func (m *Mapper) MapToRemoteSchema(s entities.VendorSubmission) map[string]any {
	values := s.Values()
	out := make(map[string]any, len(m.table)+4)

	for _, fm := range m.table {
		raw, ok := values[fm.FormField]
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		out[fm.RemoteField] = convert(raw, fm.Kind)
	}

	if m.derived.SourceField != "" {
		out[m.derived.SourceField] = m.derived.SourceValue
	}
	if m.derived.SubmittedAtField != "" {
		out[m.derived.SubmittedAtField] = m.now().UTC().Format(time.RFC3339)
	}
	if m.derived.StatusField != "" {
		out[m.derived.StatusField] = m.derived.StatusValue
	}

	if m.derived.EstimatedValueField != "" {
		price, okPrice := parseNumber(values[m.derived.UnitPriceField])
		qty, okQty := parseNumber(values[m.derived.MinimumQuantityField])
		if okPrice && okQty {
			if v := price * qty; isFinite(v) {
				out[m.derived.EstimatedValueField] = v
			}
		}
	}

	return out
}

func convert(raw string, kind ValueKind) any {
	switch kind {
	case KindNumber:
		f, ok := parseNumber(raw)
		if !ok {
			return float64(0)
		}
		return f
	case KindBoolean:
		return parseBool(raw)
	default:
		return raw
	}
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
