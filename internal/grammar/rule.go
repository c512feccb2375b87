// Package grammar recognizes MIB surface syntax and produces a generic
// parse tree.
//
// Each node of the tree carries a Rule tag, the byte span it matched,
// and its ordered children. The tree is a transient intermediate owned
// by one parse invocation; the reducer consumes it to build the typed
// model. Recognition is fail-fast: the first mismatch aborts with a
// *SyntaxError and no partial tree is returned.
package grammar

// Rule identifies a grammar rule. The set is closed: every node in a
// parse tree carries exactly one of these tags and the reducer has one
// case per tag.
type Rule int

const (
	// RuleDocument is the start rule: one or more module definitions
	// followed by end of input.
	RuleDocument Rule = iota
	// RuleEOI marks end of input at the end of a document.
	RuleEOI
	// RuleModuleDefinition is a complete module:
	// identifier [oid] DEFINITIONS ::= BEGIN body END.
	RuleModuleDefinition
	// RuleModuleIdentifier is the module name with optional OID value.
	RuleModuleIdentifier
	// RuleObjectIdentifierValue is a braced OID path, e.g. { enterprises 6574 }.
	RuleObjectIdentifierValue
	// RuleModuleBody is one of the four export/import/assignment shapes.
	RuleModuleBody
	// RuleExportList is an EXPORTS section, retained as an opaque unit.
	RuleExportList
	// RuleImportList is an IMPORTS section, retained as an opaque unit.
	RuleImportList
	// RuleAssignmentList is a sequence of assignments.
	RuleAssignmentList
	// RuleAssignment wraps a value or type assignment.
	RuleAssignment
	// RuleValueAssignment is: identifier type ::= value.
	RuleValueAssignment
	// RuleTypeAssignment is: identifier [::=] type.
	RuleTypeAssignment
	// RuleIdentifier is an identifier leaf.
	RuleIdentifier
	// RuleNumber is an unsigned decimal literal leaf.
	RuleNumber
	// RuleHexString is a hex string literal leaf ('...'H).
	RuleHexString
	// RuleBinaryString is a binary string literal leaf ('...'B).
	RuleBinaryString
	// RuleQuotedString is a quoted string literal; its child is the
	// inner string without the delimiting quotes.
	RuleQuotedString
	// RuleInnerString is the raw content between string quotes.
	RuleInnerString
	// RuleValue is a value expression that is not a literal leaf
	// (bare identifier, braced OID path).
	RuleValue
	// RuleConstraintList is a parenthesized constraint, e.g. (SIZE (0..63)).
	RuleConstraintList

	// Type rules. An assignment's type expression is one of these;
	// each reduces to its rule identity as a placeholder descriptor.

	// RuleObjectIdentifierType is OBJECT IDENTIFIER.
	RuleObjectIdentifierType
	// RuleBuiltinType is a builtin scalar type, optionally constrained.
	RuleBuiltinType
	// RuleNamedType is a type reference by name, optionally constrained.
	RuleNamedType
	// RuleTaggedType is an ASN.1 tagged type: [APPLICATION n] IMPLICIT type.
	RuleTaggedType
	// RuleSequenceType is SEQUENCE { field type, ... }.
	RuleSequenceType
	// RuleSequenceOfType is SEQUENCE OF type.
	RuleSequenceOfType
	// RuleChoiceType is CHOICE { field type, ... }.
	RuleChoiceType
	// RuleModuleIdentityType is the MODULE-IDENTITY macro form.
	RuleModuleIdentityType
	// RuleObjectTypeType is the OBJECT-TYPE macro form.
	RuleObjectTypeType
	// RuleObjectIdentityType is the OBJECT-IDENTITY macro form.
	RuleObjectIdentityType
	// RuleNotificationTypeType is the NOTIFICATION-TYPE macro form.
	RuleNotificationTypeType
	// RuleTextualConventionType is the TEXTUAL-CONVENTION macro form.
	RuleTextualConventionType
	// RuleObjectGroupType is the OBJECT-GROUP macro form.
	RuleObjectGroupType
	// RuleNotificationGroupType is the NOTIFICATION-GROUP macro form.
	RuleNotificationGroupType
	// RuleModuleComplianceType is the MODULE-COMPLIANCE macro form.
	RuleModuleComplianceType
)

// ruleNames maps rules to their identity text. Type placeholders and
// tree dumps use these names, so they are part of the data contract.
var ruleNames = [...]string{
	RuleDocument:              "document",
	RuleEOI:                   "eoi",
	RuleModuleDefinition:      "module_definition",
	RuleModuleIdentifier:      "module_identifier",
	RuleObjectIdentifierValue: "object_identifier_value",
	RuleModuleBody:            "module_body",
	RuleExportList:            "export_list",
	RuleImportList:            "import_list",
	RuleAssignmentList:        "assignment_list",
	RuleAssignment:            "assignment",
	RuleValueAssignment:       "value_assignment",
	RuleTypeAssignment:        "type_assignment",
	RuleIdentifier:            "identifier",
	RuleNumber:                "number",
	RuleHexString:             "hex_string",
	RuleBinaryString:          "binary_string",
	RuleQuotedString:          "quoted_string",
	RuleInnerString:           "inner_string",
	RuleValue:                 "value",
	RuleObjectIdentifierType:  "object_identifier_type",
	RuleBuiltinType:           "builtin_type",
	RuleNamedType:             "named_type",
	RuleTaggedType:            "tagged_type",
	RuleSequenceType:          "sequence_type",
	RuleSequenceOfType:        "sequence_of_type",
	RuleChoiceType:            "choice_type",
	RuleConstraintList:        "constraint_list",
	RuleModuleIdentityType:    "module_identity_type",
	RuleObjectTypeType:        "object_type_type",
	RuleObjectIdentityType:    "object_identity_type",
	RuleNotificationTypeType:  "notification_type_type",
	RuleTextualConventionType: "textual_convention_type",
	RuleObjectGroupType:       "object_group_type",
	RuleNotificationGroupType: "notification_group_type",
	RuleModuleComplianceType:  "module_compliance_type",
}

// String returns the rule identity text.
func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "unknown"
}

// IsTypeRule returns true if this rule is a type expression rule.
func (r Rule) IsTypeRule() bool {
	return r >= RuleObjectIdentifierType && r <= RuleModuleComplianceType
}

// IsLiteralLeaf returns true for the four literal leaf rules whose
// values decode to typed primitives.
func (r Rule) IsLiteralLeaf() bool {
	switch r {
	case RuleNumber, RuleHexString, RuleBinaryString, RuleQuotedString:
		return true
	default:
		return false
	}
}
