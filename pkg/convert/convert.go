// Package convert implements streaming CSV conversion between schemas: read
// rows against a source schema, apply a per-record transform, and write the
// results against a target schema. Conversions stream row by row in bounded
// memory; multi-stage work composes via Pipeline.
package convert

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/solidata/solidata/pkg/errors"
	"github.com/solidata/solidata/pkg/logging"
	"github.com/solidata/solidata/pkg/schema"
)

// ErrStop terminates a conversion early. A transform returns it to stop
// reading the stream; rows already written stay written and Convert reports
// success.
var ErrStop = stderrors.New("convert: stop")

// Transform maps one source record to zero or more target records.
//
// Returning (nil, nil) drops the row. Returning multiple records fans one
// input row out into several output rows. Returning ErrStop (or an error
// wrapping it) ends the stream early without failing the conversion.
type Transform func(rec schema.Record) ([]schema.Record, error)

// Identity passes records through unchanged. Useful for re-ordering or
// re-labelling columns between two schemas that share field IDs.
func Identity(rec schema.Record) ([]schema.Record, error) {
	return []schema.Record{rec}, nil
}

// Converter binds a source schema, a target schema and a transform into a
// runnable conversion step.
type Converter struct {
	from      *schema.Schema
	to        *schema.Schema
	transform Transform
	required  []schema.FieldID
	inComma   rune
	outComma  rune
	log       zerolog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithRequired declares the field IDs the transform reads. The conversion
// fails up front, naming every missing ID, when the source schema does not
// declare them all. This turns an author mistake into a diagnosable error
// instead of a puzzling empty value mid-stream.
func WithRequired(ids ...schema.FieldID) Option {
	return func(c *Converter) { c.required = append(c.required, ids...) }
}

// WithInputComma sets the input field delimiter. Survey exports are
// typically semicolon-delimited.
func WithInputComma(comma rune) Option {
	return func(c *Converter) { c.inComma = comma }
}

// WithOutputComma sets the output field delimiter.
func WithOutputComma(comma rune) Option {
	return func(c *Converter) { c.outComma = comma }
}

// WithLogger sets the logger used for progress and row diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Converter) { c.log = log }
}

// New builds a Converter from source to target schema around a transform.
func New(from, to *schema.Schema, transform Transform, opts ...Option) *Converter {
	c := &Converter{
		from:      from,
		to:        to,
		transform: transform,
		inComma:   ',',
		outComma:  ',',
		log:       *logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromSchema returns the source schema.
func (c *Converter) FromSchema() *schema.Schema { return c.from }

// ToSchema returns the target schema.
func (c *Converter) ToSchema() *schema.Schema { return c.to }

// Convert streams CSV from in to out: validate headers, then for each row
// parse, transform, and write every produced record. The first output row
// is always the target schema's header row.
func (c *Converter) Convert(in io.Reader, out io.Writer) error {
	if err := c.checkRequired(); err != nil {
		return err
	}

	csvIn := csv.NewReader(in)
	csvIn.Comma = c.inComma
	// Sub-field quoting means cells can hold the delimiter; field counts
	// are checked against the schema instead.
	csvIn.FieldsPerRecord = -1

	csvOut := csv.NewWriter(out)
	csvOut.Comma = c.outComma

	headers, err := csvIn.Read()
	if err == io.EOF {
		return errors.NewRowShapeError(c.from.ID(), "no headers in input stream")
	}
	if err != nil {
		return errors.WrapParse("csv", "", err)
	}
	stripBOM(headers)

	fieldMap, err := c.from.ValidateHeaders(headers)
	if err != nil {
		return err
	}

	if err := csvOut.Write(c.to.FieldHeaders()); err != nil {
		return errors.WrapIO("write", "", err)
	}

	rows := 0
	written := 0
	for {
		row, err := csvIn.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.WrapParse("csv", "", err)
		}
		rows++

		rec, err := c.from.IDHash(row, fieldMap)
		if err != nil {
			return err
		}

		outRecs, err := c.transform(rec)
		if err != nil {
			if stderrors.Is(err, ErrStop) {
				break
			}
			return err
		}

		for _, outRec := range outRecs {
			outRow, err := c.to.Row(outRec)
			if err != nil {
				return err
			}
			if err := csvOut.Write(outRow); err != nil {
				return errors.WrapIO("write", "", err)
			}
			written++
		}
	}

	csvOut.Flush()
	if err := csvOut.Error(); err != nil {
		return errors.WrapIO("write", "", err)
	}

	c.log.Debug().
		Str("from", c.from.ID()).
		Str("to", c.to.ID()).
		Int("rows_in", rows).
		Int("rows_out", written).
		Msg("conversion complete")
	return nil
}

// ConvertFile runs Convert between two file paths. Both files are closed on
// all exit paths; a failed conversion leaves whatever was flushed so far.
func (c *Converter) ConvertFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return errors.WrapIO("open", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return errors.WrapIO("create", outPath, err)
	}
	defer out.Close()

	if err := c.Convert(in, out); err != nil {
		return err
	}
	return out.Close()
}

// checkRequired verifies every declared-required field ID exists in the
// source schema, collecting all misses into one TransformContractError.
func (c *Converter) checkRequired() error {
	var missing []string
	for _, id := range c.required {
		if !c.from.HasField(id) {
			missing = append(missing, string(id))
		}
	}
	if len(missing) > 0 {
		return errors.NewTransformContractError(c.from.ID(), missing, nil)
	}
	return nil
}

// stripBOM removes a leading byte-order mark from the first header cell.
// Spreadsheet exports routinely prepend one.
func stripBOM(headers []string) {
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}
}
