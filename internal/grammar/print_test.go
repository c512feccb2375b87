package grammar

import (
	"strings"
	"testing"

	"github.com/devg1120/mib-parser/internal/testutil"
)

func TestFprintLeaves(t *testing.T) {
	source := `thing OBJECT IDENTIFIER ::= { iso 1 }`
	node := recognize(t, source, RuleAssignment)

	var sb strings.Builder
	Fprint(&sb, node, []byte(source))
	dump := sb.String()

	testutil.Contains(t, dump, "<<assignment>>", "assignment tag")
	testutil.Contains(t, dump, "<<value_assignment>>", "inner tag")
	testutil.Contains(t, dump, "thing\n", "identifier as raw text")
	testutil.Contains(t, dump, "<<object_identifier_type>>", "type tag")
}

func TestFprintIndentsChildren(t *testing.T) {
	source := `thing OBJECT IDENTIFIER ::= { iso 1 }`
	node := recognize(t, source, RuleAssignment)

	var sb strings.Builder
	Fprint(&sb, node, []byte(source))
	lines := strings.Split(sb.String(), "\n")

	testutil.Equal(t, "<<assignment>>", lines[0], "root unindented")
	testutil.Equal(t, "  <<value_assignment>>", lines[1], "child indented two spaces")
	testutil.Equal(t, "    thing", lines[2], "grandchild indented four spaces")
}

func TestFprintInnerStringOneLine(t *testing.T) {
	source := "\"a very long description\n      that wraps\""
	node := recognize(t, source, RuleQuotedString)

	var sb strings.Builder
	Fprint(&sb, node, []byte(source))

	testutil.Contains(t, sb.String(), `"a very long description\nthat wraps"`,
		"soft wrap rendered inline")
}
