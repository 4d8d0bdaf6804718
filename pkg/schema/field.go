package schema

// FieldID identifies a field within a schema. Code addresses data by field
// ID rather than by header text, so header wording can change between
// schema versions without breaking callers.
type FieldID string

// Field defines a single named, header-labeled data slot in a schema.
type Field struct {
	// ID is the field's identity. Unique within a schema.
	ID FieldID

	// Index is the field's position within its schema. Assigned by the
	// schema constructor; a Field outside a schema has index -1.
	Index int

	// Header is the exact column header text. Unique within a schema.
	Header string

	// Desc describes the field for documentation purposes.
	Desc string

	// Comment carries free-form notes about the field.
	Comment string
}

// NewField returns a Field with no position assigned yet.
func NewField(id FieldID, header string) Field {
	return Field{ID: id, Index: -1, Header: header}
}

// WithIndex returns a copy of the field with the given index. The receiver
// is not mutated; schemas recompute positions on construction.
func (f Field) WithIndex(index int) Field {
	f.Index = index
	return f
}

// validate reports why the field cannot join a schema, or "".
func (f Field) validate() string {
	switch {
	case f.ID == "":
		return "field id must not be empty"
	case f.Header == "":
		return "field header must not be empty"
	default:
		return ""
	}
}
