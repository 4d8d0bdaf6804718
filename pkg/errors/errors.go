// Package errors provides custom error types for the solidata pipeline.
// These errors enable programmatic error checking and carry the field-level
// diagnostics needed to debug schema and conversion mistakes quickly.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the solidata pipeline
var (
	// ErrInvalidSchema indicates a malformed schema or field declaration
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrInvalidHeaders indicates that an input header row does not satisfy a schema
	ErrInvalidHeaders = errors.New("invalid headers")

	// ErrRowShape indicates that a data row is inconsistent with its schema
	ErrRowShape = errors.New("row shape mismatch")

	// ErrTransformContract indicates a transform whose fields don't match its schemas
	ErrTransformContract = errors.New("transform contract mismatch")

	// ErrFieldMismatch indicates record keys that don't match schema field IDs
	ErrFieldMismatch = errors.New("field mismatch")

	// ErrIndexInvariant indicates an internal index inconsistency (a bug)
	ErrIndexInvariant = errors.New("index invariant violated")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// SchemaError reports a malformed field or schema declaration. It is fatal
// and raised before any row is processed.
type SchemaError struct {
	SchemaID string
	Position int // positional index of the offending field, -1 if not field-specific
	Message  string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("schema %q: field at index %d cannot be normalised: %s", e.SchemaID, e.Position, e.Message)
	}
	return fmt.Sprintf("schema %q: %s", e.SchemaID, e.Message)
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(schemaID string, position int, message string) *SchemaError {
	return &SchemaError{SchemaID: schemaID, Position: position, Message: message}
}

// HeaderError reports missing or duplicated headers found while validating
// an input header row against a schema. All problems are collected, not just
// the first.
type HeaderError struct {
	SchemaID string
	Headers  []string
	Problems []string
}

// Error implements the error interface
func (e *HeaderError) Error() string {
	return fmt.Sprintf("schema %q: invalid header fields %v: %s",
		e.SchemaID, e.Headers, strings.Join(e.Problems, "; "))
}

// Is implements errors.Is support
func (e *HeaderError) Is(target error) bool {
	return target == ErrInvalidHeaders
}

// NewHeaderError creates a new HeaderError
func NewHeaderError(schemaID string, headers, problems []string) *HeaderError {
	return &HeaderError{SchemaID: schemaID, Headers: headers, Problems: problems}
}

// RowShapeError reports a data row inconsistent with its declared schema.
// Conversion aborts rather than skipping the row, since skipping would
// silently drop data.
type RowShapeError struct {
	SchemaID string
	Message  string
}

// Error implements the error interface
func (e *RowShapeError) Error() string {
	return fmt.Sprintf("schema %q: %s", e.SchemaID, e.Message)
}

// Is implements errors.Is support
func (e *RowShapeError) Is(target error) bool {
	return target == ErrRowShape
}

// NewRowShapeError creates a new RowShapeError
func NewRowShapeError(schemaID, format string, args ...any) *RowShapeError {
	return &RowShapeError{SchemaID: schemaID, Message: fmt.Sprintf(format, args...)}
}

// TransformContractError reports a transform function whose required field
// IDs are not provided by the source schema, or whose output keys don't
// match the target schema. The field IDs are named explicitly so author
// mistakes are immediately diagnosable.
type TransformContractError struct {
	SchemaID string
	IDs      []string
	Err      error
}

// Error implements the error interface
func (e *TransformContractError) Error() string {
	if len(e.IDs) > 0 {
		return fmt.Sprintf("transform fields do not match %q schema field ids: %s",
			e.SchemaID, strings.Join(e.IDs, ", "))
	}
	return fmt.Sprintf("transform contract mismatch for schema %q: %v", e.SchemaID, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *TransformContractError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TransformContractError) Is(target error) bool {
	return target == ErrTransformContract
}

// NewTransformContractError creates a new TransformContractError
func NewTransformContractError(schemaID string, ids []string, err error) *TransformContractError {
	return &TransformContractError{SchemaID: schemaID, IDs: ids, Err: err}
}

// MissingFieldError reports every schema field ID absent from a record
// being serialized to a row.
type MissingFieldError struct {
	SchemaID string
	IDs      []string
}

// Error implements the error interface
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("no value for schema %q fields: %s", e.SchemaID, strings.Join(e.IDs, ", "))
}

// Is implements errors.Is support
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrFieldMismatch
}

// UnknownFieldError reports every record key that matches no declared field
// ID of the schema.
type UnknownFieldError struct {
	SchemaID string
	Keys     []string
}

// Error implements the error interface
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("keys do not match schema %q field ids: %s", e.SchemaID, strings.Join(e.Keys, ", "))
}

// Is implements errors.Is support
func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrFieldMismatch
}

// IndexInvariantError reports a row referenced by a duplicate cluster that
// cannot be found in the canonical index. This is an internal bug, fatal and
// not retried: aborting beats silently producing wrong output.
type IndexInvariantError struct {
	Key    string
	Detail string
}

// Error implements the error interface
func (e *IndexInvariantError) Error() string {
	return fmt.Sprintf("can't find index entry for key %q: %s", e.Key, e.Detail)
}

// Is implements errors.Is support
func (e *IndexInvariantError) Is(target error) bool {
	return target == ErrIndexInvariant
}

// NewIndexInvariantError creates a new IndexInvariantError
func NewIndexInvariantError(key, detail string) *IndexInvariantError {
	return &IndexInvariantError{Key: key, Detail: detail}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "json", "csv"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}

// Helper functions for error checking

// IsSchemaError checks if an error is a schema declaration error
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrInvalidSchema)
}

// IsHeaderError checks if an error is a header validation error
func IsHeaderError(err error) bool {
	return errors.Is(err, ErrInvalidHeaders)
}

// IsRowShapeError checks if an error is a row shape error
func IsRowShapeError(err error) bool {
	return errors.Is(err, ErrRowShape)
}

// IsTransformContractError checks if an error is a transform contract error
func IsTransformContractError(err error) bool {
	return errors.Is(err, ErrTransformContract)
}

// IsFieldMismatch checks if an error reports missing or unknown fields
func IsFieldMismatch(err error) bool {
	return errors.Is(err, ErrFieldMismatch)
}

// IsIndexInvariant checks if an error is an internal index invariant violation
func IsIndexInvariant(err error) bool {
	return errors.Is(err, ErrIndexInvariant)
}
