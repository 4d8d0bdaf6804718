package convert

import (
	"github.com/google/uuid"

	"github.com/solidata/solidata/pkg/schema"
)

// AddIdentifiers returns a same-schema conversion that fills an empty
// identifier field with a fresh UUID. Rows that already carry an
// identifier pass through untouched, so re-running the step is safe.
func AddIdentifiers(s *schema.Schema, idField schema.FieldID, opts ...Option) *Converter {
	transform := func(rec schema.Record) ([]schema.Record, error) {
		if rec.Value(idField) == "" {
			rec = rec.Clone()
			rec.Set(idField, uuid.NewString())
		}
		return []schema.Record{rec}, nil
	}
	opts = append([]Option{WithRequired(idField)}, opts...)
	return New(s, s, transform, opts...)
}
