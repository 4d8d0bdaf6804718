package normalize

import "strings"

// Sub-field defaults. A single cell can hold a list of values:
// "Cooperative;Company" is a two-item legal_form cell. Values containing
// the delimiter are quoted, with embedded quotes doubled.
const (
	DefaultSubFieldDelimiter = ';'
	DefaultSubFieldQuote     = '\''
)

// SubFieldCodec serializes and parses multi-value cells with a configurable
// delimiter/quote pair. The zero value is not usable; construct with
// NewSubFieldCodec.
type SubFieldCodec struct {
	delim rune
	quote rune
}

// NewSubFieldCodec returns a codec for the given delimiter and quote runes.
func NewSubFieldCodec(delim, quote rune) SubFieldCodec {
	return SubFieldCodec{delim: delim, quote: quote}
}

// DefaultSubFields is the codec used by the standard schema (";" and "'").
var DefaultSubFields = NewSubFieldCodec(DefaultSubFieldDelimiter, DefaultSubFieldQuote)

// Split parses a multi-value cell into its items. Quoted items may contain
// the delimiter; a doubled quote inside a quoted item is a literal quote.
// Items are whitespace-trimmed.
func (c SubFieldCodec) Split(val string) []string {
	if val == "" {
		return nil
	}

	var (
		items    []string
		current  strings.Builder
		inQuotes bool
	)

	runes := []rune(val)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == c.quote:
			if inQuotes && i+1 < len(runes) && runes[i+1] == c.quote {
				current.WriteRune(c.quote)
				i++
			} else {
				inQuotes = !inQuotes
			}
		case r == c.delim && !inQuotes:
			items = append(items, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	items = append(items, strings.TrimSpace(current.String()))

	return items
}

// Join serializes items into a multi-value cell, quoting any item that
// contains the delimiter or the quote character.
func (c SubFieldCodec) Join(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteRune(c.delim)
		}
		if strings.ContainsRune(item, c.delim) || strings.ContainsRune(item, c.quote) {
			b.WriteRune(c.quote)
			b.WriteString(strings.ReplaceAll(item, string(c.quote), string(c.quote)+string(c.quote)))
			b.WriteRune(c.quote)
		} else {
			b.WriteString(item)
		}
	}
	return b.String()
}

// SplitSubFields parses a multi-value cell with the default codec.
func SplitSubFields(val string) []string {
	return DefaultSubFields.Split(val)
}

// JoinSubFields serializes items with the default codec.
func JoinSubFields(items []string) string {
	return DefaultSubFields.Join(items)
}
