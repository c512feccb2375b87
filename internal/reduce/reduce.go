package reduce

import (
	"fmt"
	"log/slog"

	"github.com/devg1120/mib-parser/internal/grammar"
	"github.com/devg1120/mib-parser/internal/types"
	"github.com/devg1120/mib-parser/mib"
)

// DecodeError reports a literal whose lexical shape matched but whose
// content does not decode for the claimed radix or overflows 64 bits.
type DecodeError struct {
	Span types.Span
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid literal at offset %d: %v", e.Span.Start, e.Err)
}

// Unwrap returns the underlying conversion failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Reducer folds a generic parse tree into the typed model. Reduction
// is purely structural: composite cases pattern-match on the rules of
// their already-reduced children, and only opaque text placeholders
// read raw source.
type Reducer struct {
	source []byte
	types.Logger
}

// New returns a Reducer over the source the tree was recognized from.
// Pass nil for logger to disable logging.
func New(source []byte, logger *slog.Logger) *Reducer {
	return &Reducer{
		source: source,
		Logger: types.Logger{L: logger},
	}
}

// Document reduces a document node to the typed model. The first
// literal decoding failure aborts with a *DecodeError.
func (r *Reducer) Document(node *grammar.Node) (*mib.Document, error) {
	if node.Rule != grammar.RuleDocument {
		return nil, fmt.Errorf("expected document node, got %s", node.Rule)
	}

	doc := &mib.Document{}
	for _, child := range node.Children {
		switch child.Rule {
		case grammar.RuleModuleDefinition:
			module, err := r.moduleDefinition(child)
			if err != nil {
				return nil, err
			}
			doc.Modules = append(doc.Modules, module)
		case grammar.RuleEOI:
			// end of input, nothing to fold
		default:
			return nil, fmt.Errorf("unexpected rule %s in document", child.Rule)
		}
	}

	r.Log(slog.LevelDebug, "reduction complete", slog.Int("modules", len(doc.Modules)))
	return doc, nil
}

// moduleDefinition reduces: module identifier + module body.
func (r *Reducer) moduleDefinition(node *grammar.Node) (mib.Module, error) {
	name, err := r.moduleIdentifier(node.Children[0])
	if err != nil {
		return mib.Module{}, err
	}

	assignments, err := r.moduleBody(node.Children[1])
	if err != nil {
		return mib.Module{}, err
	}

	r.Log(slog.LevelDebug, "module reduced",
		slog.String("module", name),
		slog.Int("assignments", len(assignments)))

	return mib.Module{Name: name, Assignments: assignments}, nil
}

// moduleIdentifier reduces to the module name, suffixed with the
// reduced OID value when the header carries an explicit assignment.
func (r *Reducer) moduleIdentifier(node *grammar.Node) (string, error) {
	switch rules := node.ChildRules(); {
	case len(rules) == 1 && rules[0] == grammar.RuleIdentifier:
		return r.identifier(node.Children[0]), nil
	case len(rules) == 2 && rules[0] == grammar.RuleIdentifier &&
		rules[1] == grammar.RuleObjectIdentifierValue:
		name := r.identifier(node.Children[0])
		oid := r.opaque(node.Children[1])
		return name + "=" + oid, nil
	default:
		return "", fmt.Errorf("unexpected module identifier shape %v", rules)
	}
}

// moduleBody reduces to its assignment list. Export and import
// sections reduce to their rule identity and are not carried into the
// model; structured import/export graphs are out of scope.
func (r *Reducer) moduleBody(node *grammar.Node) ([]mib.Assignment, error) {
	rules := node.ChildRules()
	switch {
	case len(rules) == 1 &&
		rules[0] == grammar.RuleAssignmentList:
		return r.assignmentList(node.Children[0])

	case len(rules) == 2 &&
		rules[0] == grammar.RuleExportList &&
		rules[1] == grammar.RuleAssignmentList:
		r.Trace("dropping section", slog.String("section", r.opaque(node.Children[0])))
		return r.assignmentList(node.Children[1])

	case len(rules) == 2 &&
		rules[0] == grammar.RuleImportList &&
		rules[1] == grammar.RuleAssignmentList:
		r.Trace("dropping section", slog.String("section", r.opaque(node.Children[0])))
		return r.assignmentList(node.Children[1])

	case len(rules) == 3 &&
		rules[0] == grammar.RuleExportList &&
		rules[1] == grammar.RuleImportList &&
		rules[2] == grammar.RuleAssignmentList:
		r.Trace("dropping section", slog.String("section", r.opaque(node.Children[0])))
		r.Trace("dropping section", slog.String("section", r.opaque(node.Children[1])))
		return r.assignmentList(node.Children[2])

	default:
		return nil, fmt.Errorf("unexpected module body shape %v", rules)
	}
}

// assignmentList reduces each assignment in order.
func (r *Reducer) assignmentList(node *grammar.Node) ([]mib.Assignment, error) {
	var assignments []mib.Assignment
	for _, child := range node.Children {
		a, err := r.assignment(child)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

// assignment unwraps to the value or type assignment alternative.
func (r *Reducer) assignment(node *grammar.Node) (mib.Assignment, error) {
	inner := node.Children[0]
	switch inner.Rule {
	case grammar.RuleValueAssignment:
		return r.valueAssignment(inner)
	case grammar.RuleTypeAssignment:
		return r.typeAssignment(inner)
	default:
		return mib.Assignment{}, fmt.Errorf("unexpected assignment alternative %s", inner.Rule)
	}
}

// valueAssignment reduces: identifier, type, value.
func (r *Reducer) valueAssignment(node *grammar.Node) (mib.Assignment, error) {
	name := r.identifier(node.Children[0])
	typ, err := r.someType(node.Children[1])
	if err != nil {
		return mib.Assignment{}, err
	}
	value, err := r.value(node.Children[2])
	if err != nil {
		return mib.Assignment{}, err
	}
	return mib.Assignment{Name: name, Type: typ, Value: value}, nil
}

// typeAssignment reduces: identifier, type. No value.
func (r *Reducer) typeAssignment(node *grammar.Node) (mib.Assignment, error) {
	name := r.identifier(node.Children[0])
	typ, err := r.someType(node.Children[1])
	if err != nil {
		return mib.Assignment{}, err
	}
	return mib.Assignment{Name: name, Type: typ}, nil
}

// someType reduces a type expression to its rule identity, the
// placeholder descriptor the model carries instead of a structured
// type tree.
func (r *Reducer) someType(node *grammar.Node) (string, error) {
	if !node.Rule.IsTypeRule() {
		return "", fmt.Errorf("unexpected type rule %s", node.Rule)
	}
	return node.Rule.String(), nil
}

// value reduces a value expression. The four literal leaf rules decode
// to typed primitives; any other value keeps its raw matched text.
func (r *Reducer) value(node *grammar.Node) (mib.Value, error) {
	switch node.Rule {
	case grammar.RuleNumber:
		n, err := DecodeNumber(node.Text(r.source))
		if err != nil {
			return nil, &DecodeError{Span: node.Span, Err: err}
		}
		return mib.NumberValue{Value: n}, nil

	case grammar.RuleHexString:
		n, err := DecodeHex(node.Text(r.source))
		if err != nil {
			return nil, &DecodeError{Span: node.Span, Err: err}
		}
		return mib.NumberValue{Value: n}, nil

	case grammar.RuleBinaryString:
		n, err := DecodeBinary(node.Text(r.source))
		if err != nil {
			return nil, &DecodeError{Span: node.Span, Err: err}
		}
		return mib.NumberValue{Value: n}, nil

	case grammar.RuleQuotedString:
		return mib.StringValue{Text: r.innerString(node.Children[0])}, nil

	case grammar.RuleValue:
		return mib.TextValue{Text: node.Text(r.source)}, nil

	default:
		return nil, fmt.Errorf("unexpected value rule %s", node.Rule)
	}
}

// identifier reduces to the matched text unchanged.
func (r *Reducer) identifier(node *grammar.Node) string {
	return node.Text(r.source)
}

// innerString decodes the raw content between string quotes.
func (r *Reducer) innerString(node *grammar.Node) string {
	return DecodeQuotedString(node.Text(r.source))
}

// opaque reduces a section retained only as descriptive text to its
// rule identity.
func (r *Reducer) opaque(node *grammar.Node) string {
	return node.Rule.String()
}
