package lexer

import "sort"

// keywords is the sorted keyword table for binary search.
// IMPORTANT: This slice MUST remain sorted alphabetically by text.
// ASCII byte order: uppercase letters (A-Z: 65-90) come before
// lowercase letters (a-z: 97-122). Hyphen (45) comes before digits (48-57)
// and letters.
var keywords = []struct {
	text string
	kind TokenKind
}{
	{"ACCESS", TokKwAccess},
	{"APPLICATION", TokKwApplication},
	{"AUGMENTS", TokKwAugments},
	{"BEGIN", TokKwBegin},
	{"BITS", TokKwBits},
	{"CHOICE", TokKwChoice},
	{"CONTACT-INFO", TokKwContactInfo},
	{"Counter", TokKwCounter},
	{"Counter32", TokKwCounter32},
	{"Counter64", TokKwCounter64},
	{"DEFINITIONS", TokKwDefinitions},
	{"DEFVAL", TokKwDefval},
	{"DESCRIPTION", TokKwDescription},
	{"DISPLAY-HINT", TokKwDisplayHint},
	{"END", TokKwEnd},
	{"EXPORTS", TokKwExports},
	{"FROM", TokKwFrom},
	{"GROUP", TokKwGroup},
	{"Gauge", TokKwGauge},
	{"Gauge32", TokKwGauge32},
	{"IDENTIFIER", TokKwIdentifier},
	{"IMPLICIT", TokKwImplicit},
	{"IMPORTS", TokKwImports},
	{"INDEX", TokKwIndex},
	{"INTEGER", TokKwInteger},
	{"Integer32", TokKwInteger32},
	{"IpAddress", TokKwIpAddress},
	{"LAST-UPDATED", TokKwLastUpdated},
	{"MANDATORY-GROUPS", TokKwMandatoryGroups},
	{"MAX-ACCESS", TokKwMaxAccess},
	{"MIN-ACCESS", TokKwMinAccess},
	{"MODULE", TokKwModule},
	{"MODULE-COMPLIANCE", TokKwModuleCompliance},
	{"MODULE-IDENTITY", TokKwModuleIdentity},
	{"NOTIFICATION-GROUP", TokKwNotificationGroup},
	{"NOTIFICATION-TYPE", TokKwNotificationType},
	{"NOTIFICATIONS", TokKwNotifications},
	{"NetworkAddress", TokKwNetworkAddress},
	{"OBJECT", TokKwObject},
	{"OBJECT-GROUP", TokKwObjectGroup},
	{"OBJECT-IDENTITY", TokKwObjectIdentity},
	{"OBJECT-TYPE", TokKwObjectType},
	{"OBJECTS", TokKwObjects},
	{"OCTET", TokKwOctet},
	{"OF", TokKwOf},
	{"ORGANIZATION", TokKwOrganization},
	{"Opaque", TokKwOpaque},
	{"REFERENCE", TokKwReference},
	{"REVISION", TokKwRevision},
	{"SEQUENCE", TokKwSequence},
	{"SIZE", TokKwSize},
	{"STATUS", TokKwStatus},
	{"STRING", TokKwString},
	{"SYNTAX", TokKwSyntax},
	{"TEXTUAL-CONVENTION", TokKwTextualConvention},
	{"TimeTicks", TokKwTimeTicks},
	{"UNITS", TokKwUnits},
	{"UNIVERSAL", TokKwUniversal},
	{"Unsigned32", TokKwUnsigned32},
	{"WRITE-SYNTAX", TokKwWriteSyntax},
}

// LookupKeyword returns the TokenKind for a keyword, or (TokError, false) if not found.
func LookupKeyword(text string) (TokenKind, bool) {
	idx := sort.Search(len(keywords), func(i int) bool {
		return keywords[i].text >= text
	})
	if idx < len(keywords) && keywords[idx].text == text {
		return keywords[idx].kind, true
	}
	return TokError, false
}

// KeywordText returns the source text for a keyword token kind.
func KeywordText(kind TokenKind) (string, bool) {
	for _, kw := range keywords {
		if kw.kind == kind {
			return kw.text, true
		}
	}
	return "", false
}
