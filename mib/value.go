package mib

import (
	"fmt"
	"strconv"
)

// Value is the reduced value of a value assignment. The concrete type
// depends on which grammar rule the value expression matched: the four
// literal leaf rules decode to typed primitives, everything else stays
// raw matched text.
type Value interface {
	// String renders the value for display.
	String() string

	value()
}

// TextValue is the raw matched source text of a value expression that
// is not a literal leaf: a bare identifier or a braced OID path such
// as { enterprises 6574 }.
type TextValue struct {
	Text string `json:"text"`
}

func (v TextValue) String() string { return v.Text }
func (TextValue) value()           {}

// StringValue is a decoded quoted-string literal: doubled quotes
// collapsed and soft-wrapped continuation lines joined.
type StringValue struct {
	Text string `json:"string"`
}

func (v StringValue) String() string { return fmt.Sprintf("%q", v.Text) }
func (StringValue) value()           {}

// NumberValue is a decoded numeric literal: a decimal number or a
// radix-prefixed hex/binary string.
type NumberValue struct {
	Value uint64 `json:"number"`
}

func (v NumberValue) String() string { return strconv.FormatUint(v.Value, 10) }
func (NumberValue) value()           {}
