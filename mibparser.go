// Package mibparser parses SNMP SMI "MIB" module source text into a
// typed in-memory model.
//
// Parsing is a two-stage pipeline: a grammar recognizer matches the
// input against the MIB surface syntax and produces a generic parse
// tree, and a tree reducer folds that tree bottom-up into the typed
// model in the mib package. Both stages are fail-fast: the first
// syntax or literal-decoding error aborts the parse and is returned
// as a *mib.ParseError.
//
// Example:
//
//	doc, err := mibparser.Parse(source)
//	if err != nil {
//	    var perr *mibparser.ParseError
//	    if errors.As(err, &perr) {
//	        log.Fatalf("%d:%d: %v", perr.Line, perr.Column, err)
//	    }
//	    log.Fatal(err)
//	}
//	for _, m := range doc.Modules {
//	    fmt.Println(m.Name, len(m.Assignments))
//	}
//
// A parse invocation owns all of its intermediate state; independent
// invocations are safe to run concurrently.
package mibparser

import (
	"errors"
	"os"

	"github.com/devg1120/mib-parser/internal/grammar"
	"github.com/devg1120/mib-parser/internal/reduce"
	"github.com/devg1120/mib-parser/mib"
)

// Parse parses MIB source text into a Document.
//
// On failure it returns a *mib.ParseError describing the first syntax
// or literal-decoding failure; no partial Document is returned. The
// pretty-print option dumps the generic parse tree before reduction
// and has no effect on the result.
func Parse(text string, opts ...Option) (*mib.Document, error) {
	cfg := newConfig(opts)
	source := []byte(text)

	rec := grammar.New(source, cfg.logger)
	root, err := rec.Recognize(grammar.RuleDocument)
	if err != nil {
		return nil, toParseError(text, err)
	}

	if cfg.prettyPrint {
		out := cfg.treeOutput
		if out == nil {
			out = os.Stderr
		}
		grammar.Fprint(out, root, source)
	}

	doc, err := reduce.New(source, cfg.logger).Document(root)
	if err != nil {
		return nil, toParseError(text, err)
	}
	return doc, nil
}

// toParseError converts a stage-internal failure to the public error
// shape, deriving line and column from the offending span.
func toParseError(text string, err error) error {
	var syntaxErr *grammar.SyntaxError
	if errors.As(err, &syntaxErr) {
		offset := int(syntaxErr.Span.Start)
		line, column := mib.Position(text, offset)
		return &mib.ParseError{
			Offset:   offset,
			Line:     line,
			Column:   column,
			Expected: syntaxErr.Expected,
			Found:    syntaxErr.Found,
		}
	}

	var decodeErr *reduce.DecodeError
	if errors.As(err, &decodeErr) {
		offset := int(decodeErr.Span.Start)
		line, column := mib.Position(text, offset)
		return &mib.ParseError{
			Offset: offset,
			Line:   line,
			Column: column,
			Err:    decodeErr.Err,
		}
	}

	return err
}
