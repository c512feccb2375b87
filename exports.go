package mibparser

import (
	"log/slog"

	"github.com/devg1120/mib-parser/mib"
)

// Type aliases for the public API - all types come from the mib subpackage.

// Document is the top-level parse result.
type Document = mib.Document

// Module is a named MIB module and its assignments.
type Module = mib.Module

// Assignment is a named type or value binding within a module.
type Assignment = mib.Assignment

// Value is the reduced value of a value assignment.
type Value = mib.Value

// TextValue is a raw-text value (identifiers, braced OID paths).
type TextValue = mib.TextValue

// StringValue is a decoded quoted-string value.
type StringValue = mib.StringValue

// NumberValue is a decoded numeric value.
type NumberValue = mib.NumberValue

// ParseError is the structured error a failed parse returns.
type ParseError = mib.ParseError

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (tokens, grammar rules).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)
