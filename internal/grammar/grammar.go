package grammar

import (
	"fmt"
	"log/slog"

	"github.com/devg1120/mib-parser/internal/lexer"
	"github.com/devg1120/mib-parser/internal/types"
)

// Recognizer matches a token stream against the MIB grammar and builds
// a generic parse tree.
type Recognizer struct {
	source  []byte
	lex     *lexer.Lexer
	buf     [2]lexer.Token // lookahead buffer: buf[0]=current, buf[1]=peek(1)
	lastEnd types.ByteOffset
	types.Logger
}

// New returns a Recognizer over the given source bytes.
// Pass nil for logger to disable logging.
func New(source []byte, logger *slog.Logger) *Recognizer {
	var lexLogger *slog.Logger
	if logger != nil {
		lexLogger = logger.With(slog.String("component", "lexer"))
	}
	lex := lexer.New(source, lexLogger)
	r := &Recognizer{
		source: source,
		lex:    lex,
		Logger: types.Logger{L: logger},
	}
	r.buf[0] = lex.NextToken()
	r.buf[1] = lex.NextToken()
	r.Log(slog.LevelDebug, "recognizer initialized", slog.Int("bytes", len(source)))
	return r
}

// Recognize matches the input against the given start rule. The rule
// must consume the entire input; trailing content is a syntax error.
// On failure no partial tree is returned.
func (r *Recognizer) Recognize(start Rule) (*Node, error) {
	node, err := r.startRule(start)
	if err != nil {
		return nil, err
	}
	if !r.check(lexer.TokEOF) {
		return nil, r.syntaxError("end of input")
	}
	r.Log(slog.LevelDebug, "recognition complete", slog.String("rule", start.String()))
	return node, nil
}

func (r *Recognizer) startRule(start Rule) (*Node, error) {
	switch start {
	case RuleDocument:
		return r.document()
	case RuleModuleDefinition:
		return r.moduleDefinition()
	case RuleModuleBody:
		return r.moduleBody()
	case RuleExportList:
		return r.exportList()
	case RuleImportList:
		return r.importList()
	case RuleAssignmentList:
		return r.assignmentList()
	case RuleAssignment:
		return r.assignment()
	case RuleValueAssignment, RuleTypeAssignment:
		node, err := r.assignment()
		if err != nil {
			return nil, err
		}
		inner := node.Children[0]
		if inner.Rule != start {
			return nil, &SyntaxError{
				Span:     node.Span,
				Expected: []string{start.String()},
				Found:    inner.Rule.String(),
			}
		}
		return inner, nil
	case RuleObjectIdentifierValue:
		return r.objectIdentifierValue()
	case RuleConstraintList:
		return r.constraintList()
	case RuleIdentifier:
		return r.identifier()
	case RuleNumber:
		return r.literal(lexer.TokNumber, RuleNumber)
	case RuleHexString:
		return r.literal(lexer.TokHexString, RuleHexString)
	case RuleBinaryString:
		return r.literal(lexer.TokBinString, RuleBinaryString)
	case RuleQuotedString:
		return r.quotedString()
	case RuleValue:
		return r.value()
	default:
		if start.IsTypeRule() {
			node, err := r.someType()
			if err != nil {
				return nil, err
			}
			if node.Rule != start {
				return nil, &SyntaxError{
					Span:     node.Span,
					Expected: []string{start.String()},
					Found:    node.Rule.String(),
				}
			}
			return node, nil
		}
		return nil, fmt.Errorf("rule %s is not a valid start rule", start)
	}
}

// === Token plumbing ===

func (r *Recognizer) peek() lexer.Token {
	return r.buf[0]
}

func (r *Recognizer) peekNext() lexer.Token {
	return r.buf[1]
}

func (r *Recognizer) advance() lexer.Token {
	tok := r.buf[0]
	r.buf[0] = r.buf[1]
	r.buf[1] = r.lex.NextToken()
	r.lastEnd = tok.Span.End
	return tok
}

func (r *Recognizer) check(kind lexer.TokenKind) bool {
	return r.peek().Kind == kind
}

func (r *Recognizer) expect(kind lexer.TokenKind) (lexer.Token, error) {
	if r.check(kind) {
		return r.advance(), nil
	}
	return lexer.Token{}, r.syntaxError(kind.Name())
}

func (r *Recognizer) text(span types.Span) string {
	return string(r.source[span.Start:span.End])
}

func (r *Recognizer) spanFrom(start types.ByteOffset) types.Span {
	return types.NewSpan(start, r.lastEnd)
}

// syntaxError builds the fail-fast error at the current position.
// A lexical error takes precedence over the grammar expectation.
func (r *Recognizer) syntaxError(expected ...string) error {
	tok := r.peek()
	if span, msg, failed := r.lex.Err(); failed && tok.Kind == lexer.TokError {
		return &SyntaxError{Span: span, Expected: expected, Found: msg}
	}
	found := tok.Kind.Name()
	if tok.Kind.IsIdentifier() {
		found = fmt.Sprintf("%q", r.text(tok.Span))
	}
	return &SyntaxError{Span: tok.Span, Expected: expected, Found: found}
}

func (r *Recognizer) traceRule(rule Rule, start types.ByteOffset) {
	if r.TraceEnabled() {
		r.Trace("rule matched",
			slog.String("rule", rule.String()),
			slog.Int("start", int(start)),
			slog.Int("end", int(r.lastEnd)))
	}
}

func (r *Recognizer) node(rule Rule, start types.ByteOffset, children ...*Node) *Node {
	r.traceRule(rule, start)
	return NewNode(rule, r.spanFrom(start), children...)
}

// === Document structure ===

// document matches one or more module definitions followed by end of
// input. Trailing content after the last module fails inside the next
// module-definition attempt, localizing the error.
func (r *Recognizer) document() (*Node, error) {
	start := r.peek().Span.Start

	var children []*Node
	for {
		def, err := r.moduleDefinition()
		if err != nil {
			return nil, err
		}
		children = append(children, def)
		r.Log(slog.LevelDebug, "module recognized", slog.Int("count", len(children)))
		if r.check(lexer.TokEOF) {
			break
		}
	}
	children = append(children, NewNode(RuleEOI, r.peek().Span))

	return r.node(RuleDocument, start, children...), nil
}

// moduleDefinition matches:
//
//	ModuleName [oid] DEFINITIONS ::= BEGIN <module body> END
//
// The framing keywords produce no child nodes.
func (r *Recognizer) moduleDefinition() (*Node, error) {
	start := r.peek().Span.Start

	ident, err := r.moduleIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := r.expect(lexer.TokKwDefinitions); err != nil {
		return nil, err
	}
	if _, err := r.expect(lexer.TokColonColonEqual); err != nil {
		return nil, err
	}
	if _, err := r.expect(lexer.TokKwBegin); err != nil {
		return nil, err
	}

	body, err := r.moduleBody()
	if err != nil {
		return nil, err
	}

	if _, err := r.expect(lexer.TokKwEnd); err != nil {
		return nil, err
	}

	return r.node(RuleModuleDefinition, start, ident, body), nil
}

// moduleIdentifier matches the module name with an optional explicit
// OID value before DEFINITIONS.
func (r *Recognizer) moduleIdentifier() (*Node, error) {
	start := r.peek().Span.Start

	name, err := r.identifier()
	if err != nil {
		return nil, err
	}

	if r.check(lexer.TokLBrace) {
		oid, err := r.objectIdentifierValue()
		if err != nil {
			return nil, err
		}
		return r.node(RuleModuleIdentifier, start, name, oid), nil
	}

	return r.node(RuleModuleIdentifier, start, name), nil
}

// objectIdentifierValue matches a braced OID path such as
// { iso org(3) dod(6) 1 } or { enterprises 6574 }.
func (r *Recognizer) objectIdentifierValue() (*Node, error) {
	start := r.peek().Span.Start

	if _, err := r.expect(lexer.TokLBrace); err != nil {
		return nil, err
	}

	components := 0
	for !r.check(lexer.TokRBrace) {
		switch {
		case r.peek().Kind.IsIdentifier():
			r.advance()
			if r.check(lexer.TokLParen) {
				r.advance()
				if _, err := r.expect(lexer.TokNumber); err != nil {
					return nil, err
				}
				if _, err := r.expect(lexer.TokRParen); err != nil {
					return nil, err
				}
			}
		case r.check(lexer.TokNumber):
			r.advance()
		default:
			return nil, r.syntaxError("object identifier component")
		}
		components++
	}
	if components == 0 {
		return nil, r.syntaxError("object identifier component")
	}
	r.advance() // consume }

	return r.node(RuleObjectIdentifierValue, start), nil
}

// moduleBody matches exactly one of the four accepted shapes:
// assignments; exports+assignments; imports+assignments;
// exports+imports+assignments. A reversed import/export order leaves
// the EXPORTS keyword unconsumed and fails at the enclosing END check.
func (r *Recognizer) moduleBody() (*Node, error) {
	start := r.peek().Span.Start

	var children []*Node

	if r.check(lexer.TokKwExports) {
		exports, err := r.exportList()
		if err != nil {
			return nil, err
		}
		children = append(children, exports)
	}

	if r.check(lexer.TokKwImports) {
		imports, err := r.importList()
		if err != nil {
			return nil, err
		}
		children = append(children, imports)
	}

	assignments, err := r.assignmentList()
	if err != nil {
		return nil, err
	}
	children = append(children, assignments)

	return r.node(RuleModuleBody, start, children...), nil
}

// exportList matches an EXPORTS section. The lexer skips the symbol
// text; the section is retained only as one matched unit.
func (r *Recognizer) exportList() (*Node, error) {
	start := r.peek().Span.Start

	if _, err := r.expect(lexer.TokKwExports); err != nil {
		return nil, err
	}
	if _, err := r.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}

	return r.node(RuleExportList, start), nil
}

// importList matches: IMPORTS symbols FROM Module ... ;
// The clause structure is checked but retained only as one matched
// unit; no structured symbol list is built.
func (r *Recognizer) importList() (*Node, error) {
	start := r.peek().Span.Start

	if _, err := r.expect(lexer.TokKwImports); err != nil {
		return nil, err
	}

	for {
		if r.check(lexer.TokSemicolon) {
			r.advance()
			break
		}
		if r.check(lexer.TokEOF) || r.check(lexer.TokKwEnd) {
			return nil, r.syntaxError("';'")
		}

		kind := r.peek().Kind
		switch {
		case kind.IsIdentifier() || kind.IsMacroKeyword() || kind.IsTypeKeyword():
			r.advance()
		case kind == lexer.TokComma:
			r.advance()
		case kind == lexer.TokKwFrom:
			r.advance()
			if !r.peek().Kind.IsIdentifier() {
				return nil, r.syntaxError("module name")
			}
			r.advance()
		default:
			return nil, r.syntaxError("import symbol", "'FROM'", "';'")
		}
	}

	return r.node(RuleImportList, start), nil
}

// assignmentList matches zero or more assignments. The list ends at
// the first token that cannot start an assignment (normally END).
func (r *Recognizer) assignmentList() (*Node, error) {
	start := r.peek().Span.Start

	var children []*Node
	for r.peek().Kind.IsIdentifier() {
		a, err := r.assignment()
		if err != nil {
			return nil, err
		}
		children = append(children, a)
	}

	return r.node(RuleAssignmentList, start, children...), nil
}

// assignment matches either a value assignment or a type assignment.
// Disambiguation is structural: a leading ::= after the name means a
// type assignment; otherwise a type expression follows and a trailing
// ::= value upgrades the match to a value assignment.
func (r *Recognizer) assignment() (*Node, error) {
	start := r.peek().Span.Start

	name, err := r.identifier()
	if err != nil {
		return nil, err
	}

	if r.check(lexer.TokColonColonEqual) {
		r.advance()
		typ, err := r.someType()
		if err != nil {
			return nil, err
		}
		inner := r.node(RuleTypeAssignment, start, name, typ)
		return r.node(RuleAssignment, start, inner), nil
	}

	typ, err := r.someType()
	if err != nil {
		return nil, err
	}

	if r.check(lexer.TokColonColonEqual) {
		r.advance()
		val, err := r.value()
		if err != nil {
			return nil, err
		}
		inner := r.node(RuleValueAssignment, start, name, typ, val)
		return r.node(RuleAssignment, start, inner), nil
	}

	inner := r.node(RuleTypeAssignment, start, name, typ)
	return r.node(RuleAssignment, start, inner), nil
}

// === Leaves ===

func (r *Recognizer) identifier() (*Node, error) {
	if !r.peek().Kind.IsIdentifier() {
		return nil, r.syntaxError("identifier")
	}
	tok := r.advance()
	return &Node{Rule: RuleIdentifier, Span: tok.Span}, nil
}

func (r *Recognizer) literal(kind lexer.TokenKind, rule Rule) (*Node, error) {
	tok, err := r.expect(kind)
	if err != nil {
		return nil, err
	}
	return &Node{Rule: rule, Span: tok.Span}, nil
}

// quotedString matches a quoted string token. The node covers the
// whole literal; its inner_string child covers the raw content between
// the quotes, which the reducer decodes.
func (r *Recognizer) quotedString() (*Node, error) {
	tok, err := r.expect(lexer.TokQuotedString)
	if err != nil {
		return nil, err
	}
	inner := &Node{
		Rule: RuleInnerString,
		Span: types.NewSpan(tok.Span.Start+1, tok.Span.End-1),
	}
	return NewNode(RuleQuotedString, tok.Span, inner), nil
}

// value matches a value expression. The four literal leaf forms keep
// their own rule tags so the reducer can decode them; everything else
// is an opaque value node holding its raw matched text.
func (r *Recognizer) value() (*Node, error) {
	switch {
	case r.check(lexer.TokNumber):
		return r.literal(lexer.TokNumber, RuleNumber)
	case r.check(lexer.TokHexString):
		return r.literal(lexer.TokHexString, RuleHexString)
	case r.check(lexer.TokBinString):
		return r.literal(lexer.TokBinString, RuleBinaryString)
	case r.check(lexer.TokQuotedString):
		return r.quotedString()
	case r.check(lexer.TokLBrace):
		start := r.peek().Span.Start
		if err := r.consumeBalanced(lexer.TokLBrace, lexer.TokRBrace); err != nil {
			return nil, err
		}
		return r.node(RuleValue, start), nil
	case r.peek().Kind.IsIdentifier(), r.check(lexer.TokNegativeNumber):
		tok := r.advance()
		return &Node{Rule: RuleValue, Span: tok.Span}, nil
	default:
		return nil, r.syntaxError("value expression")
	}
}

// consumeBalanced consumes an open token through its matching close
// token, tracking nesting depth.
func (r *Recognizer) consumeBalanced(open, close lexer.TokenKind) error {
	if _, err := r.expect(open); err != nil {
		return err
	}
	depth := 1
	for depth > 0 {
		switch r.peek().Kind {
		case open:
			depth++
		case close:
			depth--
		case lexer.TokEOF, lexer.TokError:
			return r.syntaxError(close.Name())
		}
		r.advance()
	}
	return nil
}

// === Type expressions ===

// someType matches one type expression and returns the node for the
// specific form that matched. Assignments hold these nodes directly;
// there is no wrapper rule.
func (r *Recognizer) someType() (*Node, error) {
	switch r.peek().Kind {
	case lexer.TokKwObject:
		start := r.peek().Span.Start
		r.advance()
		if _, err := r.expect(lexer.TokKwIdentifier); err != nil {
			return nil, err
		}
		return r.node(RuleObjectIdentifierType, start), nil
	case lexer.TokKwModuleIdentity:
		return r.moduleIdentityType()
	case lexer.TokKwObjectType:
		return r.objectTypeType()
	case lexer.TokKwObjectIdentity:
		return r.objectIdentityType()
	case lexer.TokKwNotificationType:
		return r.notificationTypeType()
	case lexer.TokKwTextualConvention:
		return r.textualConventionType()
	case lexer.TokKwObjectGroup:
		return r.objectGroupType()
	case lexer.TokKwNotificationGroup:
		return r.notificationGroupType()
	case lexer.TokKwModuleCompliance:
		return r.moduleComplianceType()
	case lexer.TokKwSequence:
		if r.peekNext().Kind == lexer.TokKwOf {
			return r.sequenceOfType()
		}
		return r.fieldListType(RuleSequenceType)
	case lexer.TokKwChoice:
		return r.fieldListType(RuleChoiceType)
	case lexer.TokLBracket:
		return r.taggedType()
	case lexer.TokUppercaseIdent, lexer.TokLowercaseIdent:
		return r.namedType()
	default:
		if r.peek().Kind.IsTypeKeyword() {
			return r.builtinType()
		}
		return nil, r.syntaxError("type expression")
	}
}

// builtinType matches a builtin scalar type: the keyword, STRING after
// OCTET, an optional named-number list after INTEGER or BITS, and an
// optional constraint list.
func (r *Recognizer) builtinType() (*Node, error) {
	start := r.peek().Span.Start
	tok := r.advance()

	if tok.Kind == lexer.TokKwOctet {
		if _, err := r.expect(lexer.TokKwString); err != nil {
			return nil, err
		}
	}

	if (tok.Kind == lexer.TokKwInteger || tok.Kind == lexer.TokKwBits) &&
		r.check(lexer.TokLBrace) {
		if err := r.namedNumberList(); err != nil {
			return nil, err
		}
	}

	if r.check(lexer.TokLParen) {
		constraint, err := r.constraintList()
		if err != nil {
			return nil, err
		}
		return r.node(RuleBuiltinType, start, constraint), nil
	}

	return r.node(RuleBuiltinType, start), nil
}

// namedNumberList matches { label(1), label2(2), ... }.
func (r *Recognizer) namedNumberList() error {
	r.advance() // consume {
	for {
		if !r.peek().Kind.IsIdentifier() {
			return r.syntaxError("named number label")
		}
		r.advance()
		if _, err := r.expect(lexer.TokLParen); err != nil {
			return err
		}
		if !r.check(lexer.TokNumber) && !r.check(lexer.TokNegativeNumber) {
			return r.syntaxError("number")
		}
		r.advance()
		if _, err := r.expect(lexer.TokRParen); err != nil {
			return err
		}
		if r.check(lexer.TokComma) {
			r.advance()
			continue
		}
		break
	}
	_, err := r.expect(lexer.TokRBrace)
	return err
}

// namedType matches a type reference with an optional constraint list.
func (r *Recognizer) namedType() (*Node, error) {
	start := r.peek().Span.Start
	r.advance()

	if r.check(lexer.TokLParen) {
		constraint, err := r.constraintList()
		if err != nil {
			return nil, err
		}
		return r.node(RuleNamedType, start, constraint), nil
	}

	return r.node(RuleNamedType, start), nil
}

// constraintList matches a parenthesized constraint such as
// (SIZE (0..63)), (0..100) or (1|2|3). The content is consumed with
// paren balancing and retained as one matched unit.
func (r *Recognizer) constraintList() (*Node, error) {
	start := r.peek().Span.Start
	if err := r.consumeBalanced(lexer.TokLParen, lexer.TokRParen); err != nil {
		return nil, err
	}
	return r.node(RuleConstraintList, start), nil
}

// taggedType matches [APPLICATION n] IMPLICIT <type>.
func (r *Recognizer) taggedType() (*Node, error) {
	start := r.peek().Span.Start
	r.advance() // consume [

	if r.check(lexer.TokKwApplication) || r.check(lexer.TokKwUniversal) {
		r.advance()
	}
	if _, err := r.expect(lexer.TokNumber); err != nil {
		return nil, err
	}
	if _, err := r.expect(lexer.TokRBracket); err != nil {
		return nil, err
	}
	if r.check(lexer.TokKwImplicit) {
		r.advance()
	}

	inner, err := r.someType()
	if err != nil {
		return nil, err
	}

	return r.node(RuleTaggedType, start, inner), nil
}

// sequenceOfType matches SEQUENCE OF <type>.
func (r *Recognizer) sequenceOfType() (*Node, error) {
	start := r.peek().Span.Start
	r.advance() // SEQUENCE
	r.advance() // OF

	inner, err := r.someType()
	if err != nil {
		return nil, err
	}

	return r.node(RuleSequenceOfType, start, inner), nil
}

// fieldListType matches SEQUENCE { field type, ... } or the CHOICE
// equivalent. The fields are checked but retained as one matched unit.
func (r *Recognizer) fieldListType(rule Rule) (*Node, error) {
	start := r.peek().Span.Start
	r.advance() // SEQUENCE or CHOICE

	if _, err := r.expect(lexer.TokLBrace); err != nil {
		return nil, err
	}
	for {
		if !r.peek().Kind.IsIdentifier() {
			return nil, r.syntaxError("field name")
		}
		r.advance()
		if _, err := r.someType(); err != nil {
			return nil, err
		}
		if r.check(lexer.TokComma) {
			r.advance()
			continue
		}
		break
	}
	if _, err := r.expect(lexer.TokRBrace); err != nil {
		return nil, err
	}

	return r.node(rule, start), nil
}

// === SNMP macro forms ===

// expectClauseString matches a clause keyword followed by its quoted
// string argument.
func (r *Recognizer) expectClauseString(keyword lexer.TokenKind) (*Node, error) {
	if _, err := r.expect(keyword); err != nil {
		return nil, err
	}
	return r.quotedString()
}

// expectClauseIdent matches a clause keyword followed by a lowercase
// identifier argument (status and access values).
func (r *Recognizer) expectClauseIdent(keyword lexer.TokenKind, what string) error {
	if _, err := r.expect(keyword); err != nil {
		return err
	}
	if !r.check(lexer.TokLowercaseIdent) {
		return r.syntaxError(what)
	}
	r.advance()
	return nil
}

// bracedIdentList matches { ident, ident, ... }.
func (r *Recognizer) bracedIdentList() error {
	if _, err := r.expect(lexer.TokLBrace); err != nil {
		return err
	}
	for {
		if !r.peek().Kind.IsIdentifier() && !r.peek().Kind.IsTypeKeyword() {
			return r.syntaxError("identifier")
		}
		r.advance()
		if r.check(lexer.TokComma) {
			r.advance()
			continue
		}
		break
	}
	_, err := r.expect(lexer.TokRBrace)
	return err
}

// moduleIdentityType matches the MODULE-IDENTITY macro form:
// LAST-UPDATED, ORGANIZATION, CONTACT-INFO, DESCRIPTION, followed by
// zero or more REVISION/DESCRIPTION pairs.
func (r *Recognizer) moduleIdentityType() (*Node, error) {
	start := r.peek().Span.Start
	r.advance() // MODULE-IDENTITY

	var children []*Node
	for _, kw := range []lexer.TokenKind{
		lexer.TokKwLastUpdated, lexer.TokKwOrganization,
		lexer.TokKwContactInfo, lexer.TokKwDescription,
	} {
		qs, err := r.expectClauseString(kw)
		if err != nil {
			return nil, err
		}
		children = append(children, qs)
	}

	for r.check(lexer.TokKwRevision) {
		revision, err := r.expectClauseString(lexer.TokKwRevision)
		if err != nil {
			return nil, err
		}
		description, err := r.expectClauseString(lexer.TokKwDescription)
		if err != nil {
			return nil, err
		}
		children = append(children, revision, description)
	}

	return r.node(RuleModuleIdentityType, start, children...), nil
}

// objectTypeType matches the OBJECT-TYPE macro form.
func (r *Recognizer) objectTypeType() (*Node, error) {
	start := r.peek().Span.Start
	r.advance() // OBJECT-TYPE

	var children []*Node

	if _, err := r.expect(lexer.TokKwSyntax); err != nil {
		return nil, err
	}
	syntax, err := r.someType()
	if err != nil {
		return nil, err
	}
	children = append(children, syntax)

	if r.check(lexer.TokKwUnits) {
		units, err := r.expectClauseString(lexer.TokKwUnits)
		if err != nil {
			return nil, err
		}
		children = append(children, units)
	}

	accessKw := lexer.TokKwMaxAccess
	if r.check(lexer.TokKwAccess) {
		accessKw = lexer.TokKwAccess
	}
	if err := r.expectClauseIdent(accessKw, "access value"); err != nil {
		return nil, err
	}

	if err := r.expectClauseIdent(lexer.TokKwStatus, "status value"); err != nil {
		return nil, err
	}

	if r.check(lexer.TokKwDescription) {
		description, err := r.expectClauseString(lexer.TokKwDescription)
		if err != nil {
			return nil, err
		}
		children = append(children, description)
	}
	if r.check(lexer.TokKwReference) {
		reference, err := r.expectClauseString(lexer.TokKwReference)
		if err != nil {
			return nil, err
		}
		children = append(children, reference)
	}

	switch {
	case r.check(lexer.TokKwIndex):
		r.advance()
		if err := r.bracedIdentList(); err != nil {
			return nil, err
		}
	case r.check(lexer.TokKwAugments):
		r.advance()
		if err := r.bracedIdentList(); err != nil {
			return nil, err
		}
	}

	if r.check(lexer.TokKwDefval) {
		r.advance()
		if err := r.consumeBalanced(lexer.TokLBrace, lexer.TokRBrace); err != nil {
			return nil, err
		}
	}

	return r.node(RuleObjectTypeType, start, children...), nil
}

// objectIdentityType matches the OBJECT-IDENTITY macro form.
func (r *Recognizer) objectIdentityType() (*Node, error) {
	start := r.peek().Span.Start
	r.advance() // OBJECT-IDENTITY

	if err := r.expectClauseIdent(lexer.TokKwStatus, "status value"); err != nil {
		return nil, err
	}
	description, err := r.expectClauseString(lexer.TokKwDescription)
	if err != nil {
		return nil, err
	}
	children := []*Node{description}

	if r.check(lexer.TokKwReference) {
		reference, err := r.expectClauseString(lexer.TokKwReference)
		if err != nil {
			return nil, err
		}
		children = append(children, reference)
	}

	return r.node(RuleObjectIdentityType, start, children...), nil
}

// notificationTypeType matches the NOTIFICATION-TYPE macro form.
func (r *Recognizer) notificationTypeType() (*Node, error) {
	start := r.peek().Span.Start
	r.advance() // NOTIFICATION-TYPE

	if r.check(lexer.TokKwObjects) {
		r.advance()
		if err := r.bracedIdentList(); err != nil {
			return nil, err
		}
	}

	if err := r.expectClauseIdent(lexer.TokKwStatus, "status value"); err != nil {
		return nil, err
	}
	description, err := r.expectClauseString(lexer.TokKwDescription)
	if err != nil {
		return nil, err
	}
	children := []*Node{description}

	if r.check(lexer.TokKwReference) {
		reference, err := r.expectClauseString(lexer.TokKwReference)
		if err != nil {
			return nil, err
		}
		children = append(children, reference)
	}

	return r.node(RuleNotificationTypeType, start, children...), nil
}

// textualConventionType matches the TEXTUAL-CONVENTION macro form.
func (r *Recognizer) textualConventionType() (*Node, error) {
	start := r.peek().Span.Start
	r.advance() // TEXTUAL-CONVENTION

	var children []*Node

	if r.check(lexer.TokKwDisplayHint) {
		hint, err := r.expectClauseString(lexer.TokKwDisplayHint)
		if err != nil {
			return nil, err
		}
		children = append(children, hint)
	}

	if err := r.expectClauseIdent(lexer.TokKwStatus, "status value"); err != nil {
		return nil, err
	}
	description, err := r.expectClauseString(lexer.TokKwDescription)
	if err != nil {
		return nil, err
	}
	children = append(children, description)

	if r.check(lexer.TokKwReference) {
		reference, err := r.expectClauseString(lexer.TokKwReference)
		if err != nil {
			return nil, err
		}
		children = append(children, reference)
	}

	if _, err := r.expect(lexer.TokKwSyntax); err != nil {
		return nil, err
	}
	syntax, err := r.someType()
	if err != nil {
		return nil, err
	}
	children = append(children, syntax)

	return r.node(RuleTextualConventionType, start, children...), nil
}

// groupType matches the OBJECT-GROUP and NOTIFICATION-GROUP macro
// forms, which differ only in the member-list keyword.
func (r *Recognizer) groupType(rule Rule, memberKw lexer.TokenKind) (*Node, error) {
	start := r.peek().Span.Start
	r.advance() // OBJECT-GROUP or NOTIFICATION-GROUP

	if _, err := r.expect(memberKw); err != nil {
		return nil, err
	}
	if err := r.bracedIdentList(); err != nil {
		return nil, err
	}

	if err := r.expectClauseIdent(lexer.TokKwStatus, "status value"); err != nil {
		return nil, err
	}
	description, err := r.expectClauseString(lexer.TokKwDescription)
	if err != nil {
		return nil, err
	}
	children := []*Node{description}

	if r.check(lexer.TokKwReference) {
		reference, err := r.expectClauseString(lexer.TokKwReference)
		if err != nil {
			return nil, err
		}
		children = append(children, reference)
	}

	return r.node(rule, start, children...), nil
}

func (r *Recognizer) objectGroupType() (*Node, error) {
	return r.groupType(RuleObjectGroupType, lexer.TokKwObjects)
}

func (r *Recognizer) notificationGroupType() (*Node, error) {
	return r.groupType(RuleNotificationGroupType, lexer.TokKwNotifications)
}

// moduleComplianceType matches the MODULE-COMPLIANCE macro form:
// STATUS, DESCRIPTION, optional REFERENCE, then MODULE parts with
// MANDATORY-GROUPS and GROUP/OBJECT refinements.
func (r *Recognizer) moduleComplianceType() (*Node, error) {
	start := r.peek().Span.Start
	r.advance() // MODULE-COMPLIANCE

	if err := r.expectClauseIdent(lexer.TokKwStatus, "status value"); err != nil {
		return nil, err
	}
	description, err := r.expectClauseString(lexer.TokKwDescription)
	if err != nil {
		return nil, err
	}
	children := []*Node{description}

	if r.check(lexer.TokKwReference) {
		reference, err := r.expectClauseString(lexer.TokKwReference)
		if err != nil {
			return nil, err
		}
		children = append(children, reference)
	}

	for r.check(lexer.TokKwModule) {
		if err := r.complianceModule(&children); err != nil {
			return nil, err
		}
	}

	return r.node(RuleModuleComplianceType, start, children...), nil
}

// complianceModule matches one MODULE part within MODULE-COMPLIANCE.
func (r *Recognizer) complianceModule(children *[]*Node) error {
	r.advance() // MODULE

	// Optional module name; absent when the clause refers to this module.
	if r.check(lexer.TokUppercaseIdent) {
		r.advance()
		if r.check(lexer.TokLBrace) {
			if _, err := r.objectIdentifierValue(); err != nil {
				return err
			}
		}
	}

	if r.check(lexer.TokKwMandatoryGroups) {
		r.advance()
		if err := r.bracedIdentList(); err != nil {
			return err
		}
	}

	for {
		switch {
		case r.check(lexer.TokKwGroup):
			r.advance()
			if !r.peek().Kind.IsIdentifier() {
				return r.syntaxError("group name")
			}
			r.advance()
			description, err := r.expectClauseString(lexer.TokKwDescription)
			if err != nil {
				return err
			}
			*children = append(*children, description)
		case r.check(lexer.TokKwObject):
			r.advance()
			if !r.peek().Kind.IsIdentifier() {
				return r.syntaxError("object name")
			}
			r.advance()
			if r.check(lexer.TokKwSyntax) {
				r.advance()
				if _, err := r.someType(); err != nil {
					return err
				}
			}
			if r.check(lexer.TokKwWriteSyntax) {
				r.advance()
				if _, err := r.someType(); err != nil {
					return err
				}
			}
			if r.check(lexer.TokKwMinAccess) {
				if err := r.expectClauseIdent(lexer.TokKwMinAccess, "access value"); err != nil {
					return err
				}
			}
			description, err := r.expectClauseString(lexer.TokKwDescription)
			if err != nil {
				return err
			}
			*children = append(*children, description)
		default:
			return nil
		}
	}
}
