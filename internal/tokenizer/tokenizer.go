// Package tokenizer splits single lines of delimited text into fields.
//
// Two strategies are provided:
//
//   - SplitLine partitions a line at every delimiter. It is only correct for
//     lines that contain no double quote, since a quoted field may contain
//     the delimiter literally.
//   - ParseLine scans the line character by character and understands double
//     quotes and backslash escapes. It is always correct, just slower.
//
// The caller (internal/loader) picks the strategy per line: the scanning
// path is selected only when the line contains a double quote. This is an
// optimization, not a correctness requirement.
//
// Note: The escape convention is a custom backslash scheme, not RFC 4180
// doubled quotes. A literal quote inside a quoted field is written `\"`, a
// literal backslash is written `\\`.
package tokenizer

import (
	"errors"
	"strings"
)

var (
	// ErrUnterminatedQuote is returned when a quoted field is still open at
	// the end of the line.
	ErrUnterminatedQuote = errors.New("unterminated quote")

	// ErrDanglingEscape is returned when a line ends with an unconsumed
	// backslash.
	ErrDanglingEscape = errors.New("dangling escape sequence")
)

// scanState tracks the ParseLine state machine.
type scanState int

const (
	// stateField: accumulating an unquoted field.
	stateField scanState = iota
	// stateQuoted: inside a quoted field; the delimiter is literal.
	stateQuoted
	// stateFieldEscape: a backslash in an unquoted field is pending.
	stateFieldEscape
	// stateQuotedEscape: a backslash in a quoted field is pending.
	stateQuotedEscape
)

// SplitLine partitions the line at every occurrence of the delimiter.
//
// It must only be used on lines known to contain no double quote; on a
// quoted line it would split inside quoted fields.
func SplitLine(line string, delim rune) []string {
	return strings.Split(line, string(delim))
}

// ParseLine splits the line into fields, honoring double quotes and
// backslash escapes.
//
// Scanning rules:
//
//   - `\\` produces one literal backslash.
//   - `\"` produces one literal quote and does not toggle quote state.
//   - An unescaped quote opens a quoted field, or closes one. Closing a
//     quoted field pushes it and unconditionally discards the single
//     character that follows the closing quote (expected to be the
//     delimiter or the end of the line).
//   - The delimiter ends the current field unless inside a quoted field,
//     where it is appended literally.
//
// A quote still open at the end of the line yields ErrUnterminatedQuote; a
// backslash still pending yields ErrDanglingEscape.
//
// hint, when positive, pre-sizes the result for the expected number of
// fields. It is advisory only and never constrains the output.
func ParseLine(line string, delim rune, hint int) ([]string, error) {
	var fields []string
	if hint > 0 {
		fields = make([]string, 0, hint)
	}

	var field strings.Builder
	state := stateField

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch state {
		case stateFieldEscape, stateQuotedEscape:
			quoted := state == stateQuotedEscape
			switch {
			case c == '\\' || c == '"':
				// The escaped character is literal.
				field.WriteRune(c)
			case c == delim && !quoted:
				// The escape flag has no effect on a bare delimiter.
				fields = append(fields, field.String())
				field.Reset()
			default:
				field.WriteRune(c)
			}
			if quoted {
				state = stateQuoted
			} else {
				state = stateField
			}

		case stateQuoted:
			switch c {
			case '\\':
				state = stateQuotedEscape
			case '"':
				// Closing quote: push the field and discard the character
				// that follows, expected to be the delimiter or the end of
				// the line.
				fields = append(fields, field.String())
				field.Reset()
				i++
				state = stateField
			default:
				field.WriteRune(c)
			}

		default: // stateField
			switch c {
			case '\\':
				state = stateFieldEscape
			case '"':
				state = stateQuoted
			case delim:
				fields = append(fields, field.String())
				field.Reset()
			default:
				field.WriteRune(c)
			}
		}
	}

	switch state {
	case stateQuoted:
		return nil, ErrUnterminatedQuote
	case stateFieldEscape, stateQuotedEscape:
		return nil, ErrDanglingEscape
	}

	fields = append(fields, field.String())
	return fields, nil
}
