// Package lexer provides tokenization for SMI MIB module source text.
package lexer

import (
	"github.com/devg1120/mib-parser/internal/types"
)

// Token is a token with kind and source span.
type Token struct {
	Kind TokenKind
	Span types.Span
}

// NewToken creates a new token.
func NewToken(kind TokenKind, span types.Span) Token {
	return Token{Kind: kind, Span: span}
}

// TokenKind identifies a token type.
type TokenKind int

const (
	// === Special ===

	// TokError is a lexical error.
	TokError TokenKind = iota
	// TokEOF is end of input.
	TokEOF

	// === Identifiers ===

	// TokUppercaseIdent is an uppercase identifier (module names, type names).
	TokUppercaseIdent
	// TokLowercaseIdent is a lowercase identifier (object names, status values).
	TokLowercaseIdent

	// === Literals ===

	// TokNumber is an unsigned decimal number.
	TokNumber
	// TokNegativeNumber is a signed decimal number (negative).
	TokNegativeNumber
	// TokQuotedString is a quoted string literal.
	TokQuotedString
	// TokHexString is a hex string literal ('...'H).
	TokHexString
	// TokBinString is a binary string literal ('...'B).
	TokBinString

	// === Punctuation ===

	// TokLBracket is '['.
	TokLBracket
	// TokRBracket is ']'.
	TokRBracket
	// TokLBrace is '{'.
	TokLBrace
	// TokRBrace is '}'.
	TokRBrace
	// TokLParen is '('.
	TokLParen
	// TokRParen is ')'.
	TokRParen
	// TokSemicolon is ';'.
	TokSemicolon
	// TokComma is ','.
	TokComma
	// TokPipe is '|'.
	TokPipe
	// TokMinus is '-'.
	TokMinus
	// TokDotDot is '..'.
	TokDotDot
	// TokColonColonEqual is '::='.
	TokColonColonEqual

	// === Structural keywords ===

	// TokKwDefinitions is 'DEFINITIONS'.
	TokKwDefinitions
	// TokKwBegin is 'BEGIN'.
	TokKwBegin
	// TokKwEnd is 'END'.
	TokKwEnd
	// TokKwImports is 'IMPORTS'.
	TokKwImports
	// TokKwExports is 'EXPORTS'.
	TokKwExports
	// TokKwFrom is 'FROM'.
	TokKwFrom
	// TokKwObject is 'OBJECT'.
	TokKwObject
	// TokKwIdentifier is 'IDENTIFIER'.
	TokKwIdentifier
	// TokKwSequence is 'SEQUENCE'.
	TokKwSequence
	// TokKwOf is 'OF'.
	TokKwOf
	// TokKwChoice is 'CHOICE'.
	TokKwChoice

	// === Clause keywords ===

	// TokKwSyntax is 'SYNTAX'.
	TokKwSyntax
	// TokKwMaxAccess is 'MAX-ACCESS'.
	TokKwMaxAccess
	// TokKwMinAccess is 'MIN-ACCESS'.
	TokKwMinAccess
	// TokKwAccess is 'ACCESS'.
	TokKwAccess
	// TokKwStatus is 'STATUS'.
	TokKwStatus
	// TokKwDescription is 'DESCRIPTION'.
	TokKwDescription
	// TokKwReference is 'REFERENCE'.
	TokKwReference
	// TokKwIndex is 'INDEX'.
	TokKwIndex
	// TokKwDefval is 'DEFVAL'.
	TokKwDefval
	// TokKwAugments is 'AUGMENTS'.
	TokKwAugments
	// TokKwUnits is 'UNITS'.
	TokKwUnits
	// TokKwDisplayHint is 'DISPLAY-HINT'.
	TokKwDisplayHint
	// TokKwObjects is 'OBJECTS'.
	TokKwObjects
	// TokKwNotifications is 'NOTIFICATIONS'.
	TokKwNotifications
	// TokKwModule is 'MODULE'.
	TokKwModule
	// TokKwMandatoryGroups is 'MANDATORY-GROUPS'.
	TokKwMandatoryGroups
	// TokKwGroup is 'GROUP'.
	TokKwGroup
	// TokKwWriteSyntax is 'WRITE-SYNTAX'.
	TokKwWriteSyntax
	// TokKwRevision is 'REVISION'.
	TokKwRevision
	// TokKwLastUpdated is 'LAST-UPDATED'.
	TokKwLastUpdated
	// TokKwOrganization is 'ORGANIZATION'.
	TokKwOrganization
	// TokKwContactInfo is 'CONTACT-INFO'.
	TokKwContactInfo
	// TokKwSize is 'SIZE'.
	TokKwSize

	// === MACRO invocation keywords ===

	// TokKwModuleIdentity is 'MODULE-IDENTITY'.
	TokKwModuleIdentity
	// TokKwModuleCompliance is 'MODULE-COMPLIANCE'.
	TokKwModuleCompliance
	// TokKwObjectGroup is 'OBJECT-GROUP'.
	TokKwObjectGroup
	// TokKwNotificationGroup is 'NOTIFICATION-GROUP'.
	TokKwNotificationGroup
	// TokKwObjectType is 'OBJECT-TYPE'.
	TokKwObjectType
	// TokKwObjectIdentity is 'OBJECT-IDENTITY'.
	TokKwObjectIdentity
	// TokKwNotificationType is 'NOTIFICATION-TYPE'.
	TokKwNotificationType
	// TokKwTextualConvention is 'TEXTUAL-CONVENTION'.
	TokKwTextualConvention

	// === Type keywords ===

	// TokKwInteger is 'INTEGER'.
	TokKwInteger
	// TokKwInteger32 is 'Integer32'.
	TokKwInteger32
	// TokKwUnsigned32 is 'Unsigned32'.
	TokKwUnsigned32
	// TokKwCounter32 is 'Counter32'.
	TokKwCounter32
	// TokKwCounter64 is 'Counter64'.
	TokKwCounter64
	// TokKwGauge32 is 'Gauge32'.
	TokKwGauge32
	// TokKwIpAddress is 'IpAddress'.
	TokKwIpAddress
	// TokKwOpaque is 'Opaque'.
	TokKwOpaque
	// TokKwTimeTicks is 'TimeTicks'.
	TokKwTimeTicks
	// TokKwBits is 'BITS'.
	TokKwBits
	// TokKwOctet is 'OCTET'.
	TokKwOctet
	// TokKwString is 'STRING'.
	TokKwString

	// === SMIv1 type aliases ===

	// TokKwCounter is 'Counter'.
	TokKwCounter
	// TokKwGauge is 'Gauge'.
	TokKwGauge
	// TokKwNetworkAddress is 'NetworkAddress'.
	TokKwNetworkAddress

	// === ASN.1 tag keywords ===

	// TokKwApplication is 'APPLICATION'.
	TokKwApplication
	// TokKwUniversal is 'UNIVERSAL'.
	TokKwUniversal
	// TokKwImplicit is 'IMPLICIT'.
	TokKwImplicit
)

// Name returns a human-readable name for this token kind,
// used in syntax error messages.
func (k TokenKind) Name() string {
	switch k {
	case TokError:
		return "error"
	case TokEOF:
		return "end of input"
	case TokUppercaseIdent, TokLowercaseIdent:
		return "identifier"
	case TokNumber:
		return "number"
	case TokNegativeNumber:
		return "negative number"
	case TokQuotedString:
		return "quoted string"
	case TokHexString:
		return "hex string"
	case TokBinString:
		return "binary string"
	case TokLBracket:
		return "'['"
	case TokRBracket:
		return "']'"
	case TokLBrace:
		return "'{'"
	case TokRBrace:
		return "'}'"
	case TokLParen:
		return "'('"
	case TokRParen:
		return "')'"
	case TokSemicolon:
		return "';'"
	case TokComma:
		return "','"
	case TokPipe:
		return "'|'"
	case TokMinus:
		return "'-'"
	case TokDotDot:
		return "'..'"
	case TokColonColonEqual:
		return "'::='"
	default:
		if text, ok := KeywordText(k); ok {
			return "'" + text + "'"
		}
		return "unknown"
	}
}

// IsIdentifier returns true if this token is an identifier.
func (k TokenKind) IsIdentifier() bool {
	return k == TokUppercaseIdent || k == TokLowercaseIdent
}

// IsKeyword returns true if this token is a keyword.
func (k TokenKind) IsKeyword() bool {
	return k >= TokKwDefinitions && k <= TokKwImplicit
}

// IsTypeKeyword returns true if this token is a type keyword.
func (k TokenKind) IsTypeKeyword() bool {
	switch k {
	case TokKwInteger, TokKwInteger32, TokKwUnsigned32, TokKwCounter32,
		TokKwCounter64, TokKwGauge32, TokKwIpAddress, TokKwOpaque,
		TokKwTimeTicks, TokKwBits, TokKwOctet, TokKwString,
		TokKwCounter, TokKwGauge, TokKwNetworkAddress:
		return true
	default:
		return false
	}
}

// IsMacroKeyword returns true if this token is a macro keyword (OBJECT-TYPE, etc.).
func (k TokenKind) IsMacroKeyword() bool {
	switch k {
	case TokKwModuleIdentity, TokKwModuleCompliance, TokKwObjectGroup,
		TokKwNotificationGroup, TokKwObjectType, TokKwObjectIdentity,
		TokKwNotificationType, TokKwTextualConvention:
		return true
	default:
		return false
	}
}
