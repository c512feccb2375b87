package lexer

import (
	"fmt"
	"log/slog"

	"github.com/devg1120/mib-parser/internal/types"
)

type lexerState int

const (
	stateNormal lexerState = iota
	stateInExports
	stateInComment
)

// Lexer tokenizes SMI MIB source text.
//
// Lexing is fail-fast: the first lexical error produces a TokError
// token and the error is retained for the recognizer to report.
type Lexer struct {
	source  []byte
	pos     int
	state   lexerState
	errSpan types.Span
	errMsg  string
	failed  bool
	types.Logger
}

// New returns a Lexer that tokenizes the given source bytes.
func New(source []byte, logger *slog.Logger) *Lexer {
	l := &Lexer{
		source: source,
		pos:    0,
		state:  stateNormal,
		Logger: types.Logger{L: logger},
	}
	l.Log(slog.LevelDebug, "lexer initialized", slog.Int("bytes", len(source)))
	return l
}

// Err returns the first lexical error, if any.
func (l *Lexer) Err() (types.Span, string, bool) {
	return l.errSpan, l.errMsg, l.failed
}

func (l *Lexer) traceToken(tok Token) {
	if l.TraceEnabled() {
		l.Trace("token",
			slog.Int("kind", int(tok.Kind)),
			slog.Int("start", int(tok.Span.Start)),
			slog.Int("end", int(tok.Span.End)))
	}
}

// NextToken advances the lexer and returns the next token.
// Returns TokEOF when all input is consumed.
func (l *Lexer) NextToken() Token {
	for {
		switch l.state {
		case stateInComment:
			l.consumeComment()
			continue
		case stateInExports:
			return l.skipExportsBody()
		default:
			tok, retry := l.nextNormalToken()
			if retry {
				continue
			}
			return tok
		}
	}
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	return l.source[l.pos], true
}

func (l *Lexer) peekAt(offset int) (byte, bool) {
	idx := l.pos + offset
	if idx >= len(l.source) {
		return 0, false
	}
	return l.source[idx], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	b := l.source[l.pos]
	l.pos++
	return b, true
}

func (l *Lexer) skipWhitespace() {
	for {
		b, ok := l.peek()
		if !ok {
			return
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			l.advance()
		} else {
			return
		}
	}
}

func (l *Lexer) skipLineEnding() {
	b, ok := l.advance()
	if !ok {
		return
	}
	if b == '\r' {
		if next, ok := l.peek(); ok && next == '\n' {
			l.advance()
		}
	}
}

// fail records the first lexical error and returns a TokError token.
func (l *Lexer) fail(span types.Span, message string) Token {
	if !l.failed {
		l.failed = true
		l.errSpan = span
		l.errMsg = message
	}
	return Token{Kind: TokError, Span: span}
}

func (l *Lexer) spanFrom(start int) types.Span {
	return types.Span{
		Start: types.ByteOffset(start),
		End:   types.ByteOffset(l.pos),
	}
}

func (l *Lexer) token(kind TokenKind, start int) Token {
	tok := Token{
		Kind: kind,
		Span: l.spanFrom(start),
	}
	l.traceToken(tok)
	return tok
}

// nextNormalToken scans the next token in normal state. Returns (token, retry)
// where retry=true means the caller should loop (e.g. after entering
// comment state).
func (l *Lexer) nextNormalToken() (Token, bool) {
	l.skipWhitespace()

	start := l.pos

	b, ok := l.peek()
	if !ok {
		return l.token(TokEOF, start), false
	}

	if b == '-' {
		if next, ok := l.peekAt(1); ok && next == '-' {
			l.advance()
			l.advance()
			l.state = stateInComment
			return Token{}, true
		}
	}

	switch b {
	case '[':
		l.advance()
		return l.token(TokLBracket, start), false
	case ']':
		l.advance()
		return l.token(TokRBracket, start), false
	case '{':
		l.advance()
		return l.token(TokLBrace, start), false
	case '}':
		l.advance()
		return l.token(TokRBrace, start), false
	case '(':
		l.advance()
		return l.token(TokLParen, start), false
	case ')':
		l.advance()
		return l.token(TokRParen, start), false
	case ';':
		l.advance()
		return l.token(TokSemicolon, start), false
	case ',':
		l.advance()
		return l.token(TokComma, start), false
	case '|':
		l.advance()
		return l.token(TokPipe, start), false
	}

	if b == '.' {
		l.advance()
		if next, ok := l.peek(); ok && next == '.' {
			l.advance()
			return l.token(TokDotDot, start), false
		}
		return l.fail(l.spanFrom(start), "unexpected '.'"), false
	}

	if b == ':' {
		l.advance()
		if next, ok := l.peek(); ok && next == ':' {
			if after, ok := l.peekAt(1); ok && after == '=' {
				l.advance()
				l.advance()
				return l.token(TokColonColonEqual, start), false
			}
		}
		return l.fail(l.spanFrom(start), "expected '::='"), false
	}

	if b == '-' {
		if next, ok := l.peekAt(1); ok && isDigit(next) {
			return l.scanNegativeNumber(), false
		}
		l.advance()
		return l.token(TokMinus, start), false
	}

	if isDigit(b) {
		return l.scanNumber(), false
	}

	if b == '"' {
		return l.scanQuotedString(), false
	}

	if b == '\'' {
		return l.scanHexOrBinString(), false
	}

	if isAlpha(b) {
		return l.scanIdentifierOrKeyword(), false
	}

	l.advance()
	return l.fail(l.spanFrom(start), fmt.Sprintf("unexpected character: 0x%02x", b)), false
}

// consumeComment skips over comment text and sets state back to normal.
// Called from the NextToken loop when state is stateInComment.
// A comment runs to end of line or to a closing '--'.
func (l *Lexer) consumeComment() {
	for {
		b, ok := l.peek()
		if !ok {
			l.state = stateNormal
			return
		}

		if b == '\n' || b == '\r' {
			l.skipLineEnding()
			l.state = stateNormal
			return
		}

		if b == '-' {
			if next, ok := l.peekAt(1); ok && next == '-' {
				l.advance()
				l.advance()
				l.state = stateNormal
				return
			}
			l.advance()
			continue
		}

		l.advance()
	}
}

// skipExportsBody skips to the semicolon terminating an EXPORTS section.
// The exported symbols are not tokenized; the section is retained only
// as a single matched unit.
func (l *Lexer) skipExportsBody() Token {
	for {
		b, ok := l.peek()
		if !ok {
			start := l.pos
			l.state = stateNormal
			return l.token(TokEOF, start)
		}

		if b == ';' {
			start := l.pos
			l.advance()
			l.state = stateNormal
			return l.token(TokSemicolon, start)
		}

		l.advance()
	}
}

func (l *Lexer) scanIdentifierOrKeyword() Token {
	start := l.pos
	l.advance()

	for {
		b, ok := l.peek()
		if !ok {
			break
		}
		if isAlphanumeric(b) || b == '_' {
			l.advance()
		} else if b == '-' {
			if next, ok := l.peekAt(1); ok && next == '-' {
				break
			}
			l.advance()
		} else {
			break
		}
	}

	text := string(l.source[start:l.pos])

	if kind, ok := LookupKeyword(text); ok {
		if kind == TokKwExports {
			l.state = stateInExports
			l.Log(slog.LevelDebug, "entering exports", slog.Int("offset", start))
		}
		return l.token(kind, start)
	}

	kind := TokLowercaseIdent
	if isUpperAlpha(text[0]) {
		kind = TokUppercaseIdent
	}
	return l.token(kind, start)
}

func (l *Lexer) scanNumber() Token {
	start := l.pos

	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}

	return l.token(TokNumber, start)
}

func (l *Lexer) scanNegativeNumber() Token {
	start := l.pos
	l.advance() // consume -

	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}

	return l.token(TokNegativeNumber, start)
}

func (l *Lexer) scanQuotedString() Token {
	start := l.pos
	l.advance() // consume opening quote

	for {
		b, ok := l.peek()
		if !ok {
			return l.fail(l.spanFrom(start), "unterminated string literal")
		}
		if b == '"' {
			l.advance()
			// A doubled quote is an escaped quote, not a terminator.
			if next, ok := l.peek(); ok && next == '"' {
				l.advance()
				continue
			}
			return l.token(TokQuotedString, start)
		}
		l.advance()
	}
}

func (l *Lexer) scanHexOrBinString() Token {
	start := l.pos
	l.advance() // consume opening quote

	for {
		b, ok := l.peek()
		if !ok || b == '\'' {
			break
		}
		l.advance()
	}

	if b, ok := l.peek(); !ok || b != '\'' {
		return l.fail(l.spanFrom(start), "unterminated hex/binary string")
	}
	l.advance() // consume closing quote

	suffix, ok := l.peek()
	if !ok {
		return l.fail(l.spanFrom(start), "expected 'H' or 'B' suffix for hex/binary string")
	}

	switch suffix {
	case 'H', 'h':
		l.advance()
		return l.token(TokHexString, start)

	case 'B', 'b':
		l.advance()
		return l.token(TokBinString, start)

	default:
		return l.fail(l.spanFrom(start), "expected 'H' or 'B' suffix for hex/binary string")
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isUpperAlpha(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isAlphanumeric(b byte) bool {
	return isAlpha(b) || isDigit(b)
}
