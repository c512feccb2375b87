// Package reduce walks the generic parse tree bottom-up and
// materializes the typed model, one reduction case per grammar rule.
// Literal leaves decode through the pure functions in this file; the
// first decoding failure aborts the whole reduction.
package reduce

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// softWrap matches a line break with surrounding horizontal whitespace.
// Quoted strings in MIB files soft-wrap long text; the whole run joins
// to a single line feed.
var softWrap = regexp.MustCompile(`[ \t]*\r?\n[ \t]*`)

// DecodeNumber parses a decimal digit sequence as an unsigned 64-bit
// integer.
func DecodeNumber(text string) (uint64, error) {
	return strconv.ParseUint(text, 10, 64)
}

// DecodeHex parses a hex string literal such as 'DEADBEEF'H: the
// leading quote and the two-character radix suffix are stripped and
// the remainder parsed as base 16.
func DecodeHex(text string) (uint64, error) {
	digits, err := stripRadixMarkers(text)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(digits, 16, 64)
}

// DecodeBinary parses a binary string literal such as '11110000'B,
// the base-2 analogue of DecodeHex.
func DecodeBinary(text string) (uint64, error) {
	digits, err := stripRadixMarkers(text)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(digits, 2, 64)
}

func stripRadixMarkers(text string) (string, error) {
	if len(text) < 3 {
		return "", fmt.Errorf("radix literal %q too short", text)
	}
	return text[1 : len(text)-2], nil
}

// DecodeQuotedString normalizes the raw content between string quotes.
// Two substitutions run over the whole span, in order: doubled double
// quotes collapse to one literal quote, then every whitespace-padded
// line break collapses to a single line feed, joining soft-wrapped
// continuation lines.
func DecodeQuotedString(inner string) string {
	s := strings.ReplaceAll(inner, `""`, `"`)
	return softWrap.ReplaceAllString(s, "\n")
}
