// Package schema defines declarative CSV schemas: ordered collections of
// named, header-labeled fields, with header-based validation and
// bidirectional conversion between positional row data and field-ID-keyed
// records. Schemas are the building blocks for source→target conversion
// pipelines (see pkg/convert).
package schema

import (
	stderrors "errors"
	"fmt"
	"sort"

	"github.com/solidata/solidata/pkg/errors"
)

// Schema is an ordered collection of Fields. It validates externally
// supplied header rows and maps between positional rows and Records.
//
// Field order is significant only for positional row emission; for
// header-based input the header text is authoritative, not the position.
type Schema struct {
	id          string
	name        string
	version     int
	description string
	comment     string
	fields      []Field

	// Pre-computed at construction. Callers must not mutate.
	fieldIDs     []FieldID
	fieldHeaders []string
}

// Option configures optional schema attributes.
type Option func(*Schema)

// WithVersion sets the schema version.
func WithVersion(version int) Option {
	return func(s *Schema) { s.version = version }
}

// WithDescription sets the schema description.
func WithDescription(description string) Option {
	return func(s *Schema) { s.description = description }
}

// WithComment sets the schema comment.
func WithComment(comment string) Option {
	return func(s *Schema) { s.comment = comment }
}

// New constructs a Schema from field declarations. Indexes are assigned by
// declaration order. Fails with a SchemaError naming the offending field
// position if any field is malformed, or if field IDs or headers collide.
func New(id, name string, fields []Field, opts ...Option) (*Schema, error) {
	if id == "" {
		return nil, errors.NewSchemaError(id, -1, "schema id must not be empty")
	}
	if name == "" {
		name = id
	}
	if len(fields) == 0 {
		return nil, errors.NewSchemaError(id, -1, "schema has no fields")
	}

	s := &Schema{
		id:           id,
		name:         name,
		fields:       make([]Field, 0, len(fields)),
		fieldIDs:     make([]FieldID, 0, len(fields)),
		fieldHeaders: make([]string, 0, len(fields)),
	}
	for _, opt := range opts {
		opt(s)
	}

	seenIDs := make(map[FieldID]bool, len(fields))
	seenHeaders := make(map[string]bool, len(fields))
	for ix, field := range fields {
		if msg := field.validate(); msg != "" {
			return nil, errors.NewSchemaError(id, ix, msg)
		}
		if seenIDs[field.ID] {
			return nil, errors.NewSchemaError(id, ix, fmt.Sprintf("duplicate field id %q", field.ID))
		}
		if seenHeaders[field.Header] {
			return nil, errors.NewSchemaError(id, ix, fmt.Sprintf("duplicate field header %q", field.Header))
		}
		seenIDs[field.ID] = true
		seenHeaders[field.Header] = true

		s.fields = append(s.fields, field.WithIndex(ix))
		s.fieldIDs = append(s.fieldIDs, field.ID)
		s.fieldHeaders = append(s.fieldHeaders, field.Header)
	}

	return s, nil
}

// MustNew constructs a Schema and panics on error. For static declarations.
func MustNew(id, name string, fields []Field, opts ...Option) *Schema {
	s, err := New(id, name, fields, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// ID returns the schema identifier.
func (s *Schema) ID() string { return s.id }

// Name returns the schema display name.
func (s *Schema) Name() string { return s.name }

// Version returns the schema version.
func (s *Schema) Version() int { return s.version }

// Description returns the schema description.
func (s *Schema) Description() string { return s.description }

// Fields returns the declared fields in order. Callers must not mutate.
func (s *Schema) Fields() []Field { return s.fields }

// FieldIDs returns the field IDs in declaration order. Callers must not mutate.
func (s *Schema) FieldIDs() []FieldID { return s.fieldIDs }

// FieldHeaders returns the header texts in declaration order. Callers must
// not mutate.
func (s *Schema) FieldHeaders() []string { return s.fieldHeaders }

// Field returns the declared field for an ID.
func (s *Schema) Field(id FieldID) (Field, bool) {
	for _, field := range s.fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}

// HeaderOf returns the header text for a field ID, or "" when the schema
// does not declare it.
func (s *Schema) HeaderOf(id FieldID) string {
	field, _ := s.Field(id)
	return field.Header
}

// HasField reports whether the schema declares the given field ID.
func (s *Schema) HasField(id FieldID) bool {
	for _, fid := range s.fieldIDs {
		if fid == id {
			return true
		}
	}
	return false
}

// ValidateHeaders matches an externally supplied header row against the
// schema's declared headers by exact text.
//
// Headers may arrive in any order; extra headers not referenced by the
// schema are permitted and ignored. A header that is missing, or that
// appears more than once (ambiguous), is an error — all such problems are
// collected into one HeaderError.
//
// The returned slice has one entry per schema field, in schema order,
// giving the positional index of that field's data in an incoming row.
func (s *Schema) ValidateHeaders(headers []string) ([]int, error) {
	var problems []string
	fieldMap := make([]int, len(s.fields))

	for ix, field := range s.fields {
		first := -1
		dup := false
		for hix, h := range headers {
			if h != field.Header {
				continue
			}
			if first < 0 {
				first = hix
			} else {
				dup = true
				break
			}
		}
		switch {
		case first < 0:
			problems = append(problems, fmt.Sprintf("%q is missing", field.Header))
		case dup:
			problems = append(problems, fmt.Sprintf("%q is duplicated", field.Header))
		default:
			fieldMap[ix] = first
		}
	}

	if len(problems) > 0 {
		return nil, errors.NewHeaderError(s.id, headers, problems)
	}
	return fieldMap, nil
}

// IDHash turns one positional data row into a Record keyed by field ID,
// using the field map produced by ValidateHeaders.
//
// Fails with a RowShapeError if the row length doesn't match the field map,
// if a mapped index is out of range, or if two schema fields map to the
// same input index (unreachable given ValidateHeaders, but checked).
func (s *Schema) IDHash(row []string, fieldMap []int) (Record, error) {
	if len(fieldMap) != len(s.fields) {
		return nil, errors.NewRowShapeError(s.id, "field map must have %d elements, not %d",
			len(s.fields), len(fieldMap))
	}
	if len(row) != len(fieldMap) {
		return nil, errors.NewRowShapeError(s.id, "row must have %d elements, not %d",
			len(fieldMap), len(row))
	}

	rec := make(Record, len(s.fields))
	used := make(map[int]bool, len(fieldMap))
	for ix, field := range s.fields {
		datumIx := fieldMap[ix]
		if datumIx < 0 || datumIx >= len(row) {
			return nil, errors.NewRowShapeError(s.id, "invalid field index %d", datumIx)
		}
		if used[datumIx] {
			return nil, errors.NewRowShapeError(s.id, "duplicate field index %d", datumIx)
		}
		used[datumIx] = true
		rec[field.ID] = row[datumIx]
	}

	return rec, nil
}

// Row turns a Record into an ordered value slice keyed against this
// schema's own field order. The inverse of IDHash, used for writing output.
//
// Every absent field ID and every key not declared by the schema is
// collected, so a mistaken transform is reported in full rather than one
// field at a time.
func (s *Schema) Row(rec Record) ([]string, error) {
	var missing []string
	row := make([]string, 0, len(s.fields))
	for _, field := range s.fields {
		val, ok := rec[field.ID]
		if !ok {
			missing = append(missing, string(field.ID))
			continue
		}
		row = append(row, val)
	}

	var unknown []string
	if len(rec) > len(s.fields)-len(missing) {
		for key := range rec {
			if !s.HasField(key) {
				unknown = append(unknown, string(key))
			}
		}
		// Map iteration order would otherwise make error messages
		// nondeterministic.
		sort.Strings(unknown)
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, &errors.MissingFieldError{SchemaID: s.id, IDs: missing})
	}
	if len(unknown) > 0 {
		errs = append(errs, &errors.UnknownFieldError{SchemaID: s.id, Keys: unknown})
	}
	if len(errs) > 0 {
		return nil, stderrors.Join(errs...)
	}

	return row, nil
}
