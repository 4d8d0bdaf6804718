package schema

// Record maps field IDs to string values. It is transient: one Record is
// produced by parsing one input row against a schema and consumed to
// produce zero or more output rows against another schema.
type Record map[FieldID]string

// Get returns the value for a field ID. Unknown IDs report absent rather
// than failing, so transforms can probe optional fields safely.
func (r Record) Get(id FieldID) (string, bool) {
	val, ok := r[id]
	return val, ok
}

// Value returns the value for a field ID, or "" when absent.
func (r Record) Value(id FieldID) string {
	return r[id]
}

// Set stores a value.
func (r Record) Set(id FieldID, val string) {
	r[id] = val
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
