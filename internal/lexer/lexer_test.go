package lexer

import (
	"testing"

	"github.com/devg1120/mib-parser/internal/testutil"
)

func tokenize(source string) []Token {
	lexer := New([]byte(source), nil)
	var tokens []Token
	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF || tok.Kind == TokError {
			return tokens
		}
	}
}

func tokenKinds(source string) []TokenKind {
	tokens := tokenize(source)
	kinds := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Kind
	}
	return kinds
}

func tokenTexts(source string) []string {
	var texts []string
	for _, t := range tokenize(source) {
		if t.Kind != TokEOF && t.Kind != TokError {
			texts = append(texts, source[t.Span.Start:t.Span.End])
		}
	}
	return texts
}

func TestEmptyInput(t *testing.T) {
	kinds := tokenKinds("")
	testutil.SliceEqual(t, []TokenKind{TokEOF}, kinds, "empty input")
}

func TestPunctuation(t *testing.T) {
	kinds := tokenKinds("[ ] { } ( ) ; , |")
	expected := []TokenKind{
		TokLBracket, TokRBracket, TokLBrace, TokRBrace,
		TokLParen, TokRParen, TokSemicolon, TokComma,
		TokPipe, TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestOperators(t *testing.T) {
	kinds := tokenKinds(".. ::= -")
	expected := []TokenKind{
		TokDotDot, TokColonColonEqual, TokMinus, TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestNumbers(t *testing.T) {
	texts := tokenTexts("0 1 42 12345")
	expectedTexts := []string{"0", "1", "42", "12345"}
	testutil.SliceEqual(t, expectedTexts, texts, "token texts")
}

func TestNegativeNumbers(t *testing.T) {
	kinds := tokenKinds("-1 -42")
	expected := []TokenKind{TokNegativeNumber, TokNegativeNumber, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")

	texts := tokenTexts("-1 -42 -0")
	expectedTexts := []string{"-1", "-42", "-0"}
	testutil.SliceEqual(t, expectedTexts, texts, "token texts")
}

func TestIdentifiers(t *testing.T) {
	texts := tokenTexts("ifIndex myObject IF-MIB MyModule under_score")
	expectedTexts := []string{"ifIndex", "myObject", "IF-MIB", "MyModule", "under_score"}
	testutil.SliceEqual(t, expectedTexts, texts, "token texts")
}

func TestIdentifierCase(t *testing.T) {
	kinds := tokenKinds("ifIndex MyModule")
	expected := []TokenKind{TokLowercaseIdent, TokUppercaseIdent, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestKeywords(t *testing.T) {
	kinds := tokenKinds("DEFINITIONS BEGIN END IMPORTS FROM")
	expected := []TokenKind{
		TokKwDefinitions, TokKwBegin, TokKwEnd,
		TokKwImports, TokKwFrom, TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestHyphenatedKeywords(t *testing.T) {
	kinds := tokenKinds("MODULE-IDENTITY OBJECT-TYPE MAX-ACCESS LAST-UPDATED")
	expected := []TokenKind{
		TokKwModuleIdentity, TokKwObjectType,
		TokKwMaxAccess, TokKwLastUpdated, TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestTypeKeywords(t *testing.T) {
	kinds := tokenKinds("INTEGER Integer32 Counter32 Counter64 Gauge32")
	expected := []TokenKind{
		TokKwInteger, TokKwInteger32, TokKwCounter32,
		TokKwCounter64, TokKwGauge32, TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestQuotedString(t *testing.T) {
	texts := tokenTexts(`"hello" "world" "with spaces"`)
	expectedTexts := []string{`"hello"`, `"world"`, `"with spaces"`}
	testutil.SliceEqual(t, expectedTexts, texts, "token texts")
}

func TestQuotedStringDoubledQuote(t *testing.T) {
	source := `"say ""hi"" now"`
	texts := tokenTexts(source)
	testutil.SliceEqual(t, []string{source}, texts, "token texts")
}

func TestQuotedStringMultiline(t *testing.T) {
	source := "\"line one\n   line two\""
	texts := tokenTexts(source)
	testutil.SliceEqual(t, []string{source}, texts, "token texts")
}

func TestUnterminatedString(t *testing.T) {
	lexer := New([]byte(`"never ends`), nil)
	tok := lexer.NextToken()
	testutil.Equal(t, TokError, tok.Kind, "token kind")
	_, msg, failed := lexer.Err()
	testutil.True(t, failed, "lexer failed")
	testutil.Contains(t, msg, "unterminated", "error message")
}

func TestHexString(t *testing.T) {
	texts := tokenTexts("'0A1B'H 'ff00'h")
	expectedTexts := []string{"'0A1B'H", "'ff00'h"}
	testutil.SliceEqual(t, expectedTexts, texts, "token texts")

	kinds := tokenKinds("'0A1B'H")
	testutil.SliceEqual(t, []TokenKind{TokHexString, TokEOF}, kinds, "token kinds")
}

func TestBinString(t *testing.T) {
	texts := tokenTexts("'01010101'B '11110000'b")
	expectedTexts := []string{"'01010101'B", "'11110000'b"}
	testutil.SliceEqual(t, expectedTexts, texts, "token texts")

	kinds := tokenKinds("'11110000'b")
	testutil.SliceEqual(t, []TokenKind{TokBinString, TokEOF}, kinds, "token kinds")
}

func TestHexStringMissingSuffix(t *testing.T) {
	lexer := New([]byte("'0A1B' next"), nil)
	tok := lexer.NextToken()
	testutil.Equal(t, TokError, tok.Kind, "token kind")
	_, msg, failed := lexer.Err()
	testutil.True(t, failed, "lexer failed")
	testutil.Contains(t, msg, "suffix", "error message")
}

func TestCommentsDashDash(t *testing.T) {
	kinds := tokenKinds("OBJECT -- comment\nifIndex")
	expected := []TokenKind{
		TokKwObject,
		TokLowercaseIdent,
		TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestCommentsInline(t *testing.T) {
	kinds := tokenKinds("OBJECT -- comment -- IDENTIFIER")
	expected := []TokenKind{
		TokKwObject,
		TokKwIdentifier,
		TokEOF,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestCommentAtEOF(t *testing.T) {
	kinds := tokenKinds("ifIndex -- trailing comment")
	expected := []TokenKind{TokLowercaseIdent, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestHyphenBreaksIdentifierBeforeComment(t *testing.T) {
	// An identifier stops before '--' so the comment is recognized.
	kinds := tokenKinds("foo-- comment\nbar")
	expected := []TokenKind{TokLowercaseIdent, TokLowercaseIdent, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestExportsSkipsToSemicolon(t *testing.T) {
	kinds := tokenKinds("EXPORTS foo, bar, baz ; END")
	expected := []TokenKind{TokKwExports, TokSemicolon, TokKwEnd, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestUnexpectedCharacter(t *testing.T) {
	lexer := New([]byte("@"), nil)
	tok := lexer.NextToken()
	testutil.Equal(t, TokError, tok.Kind, "token kind")
	_, _, failed := lexer.Err()
	testutil.True(t, failed, "lexer failed")
}

func TestLookupKeyword(t *testing.T) {
	kind, ok := LookupKeyword("OBJECT-TYPE")
	testutil.True(t, ok, "keyword found")
	testutil.Equal(t, TokKwObjectType, kind, "keyword kind")

	_, ok = LookupKeyword("notAKeyword")
	testutil.False(t, ok, "keyword not found")
}

func TestKeywordTableSorted(t *testing.T) {
	for i := 1; i < len(keywords); i++ {
		if keywords[i-1].text >= keywords[i].text {
			testutil.Fail(t, "keyword table out of order at %q >= %q",
				keywords[i-1].text, keywords[i].text)
		}
	}
}

func TestSpans(t *testing.T) {
	tokens := tokenize("abc 123")
	testutil.Len(t, tokens, 3, "token count")
	testutil.Equal(t, 0, int(tokens[0].Span.Start), "first start")
	testutil.Equal(t, 3, int(tokens[0].Span.End), "first end")
	testutil.Equal(t, 4, int(tokens[1].Span.Start), "second start")
	testutil.Equal(t, 7, int(tokens[1].Span.End), "second end")
}
