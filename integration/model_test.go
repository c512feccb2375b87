package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToasterModule(t *testing.T) {
	doc := parseFixture(t, "ACME-TOASTER-MIB.mib")

	module := doc.Module("ACME-TOASTER-MIB")
	require.NotNil(t, module)
	assert.Len(t, module.Assignments, 14)

	cases := []struct {
		name string
		typ  string
	}{
		{"acme", "object_identifier_type"},
		{"acmeToaster", "module_identity_type"},
		{"ToastDoneness", "textual_convention_type"},
		{"toasterObjects", "object_identity_type"},
		{"toasterDoneness", "object_type_type"},
		{"toasterModel", "object_type_type"},
		{"toasterDone", "notification_type_type"},
		{"toasterGroup", "object_group_type"},
		{"toasterNotificationGroup", "notification_group_type"},
		{"toasterCompliance", "module_compliance_type"},
	}
	for _, tc := range cases {
		a := module.Assignment(tc.name)
		require.NotNil(t, a, "assignment %s", tc.name)
		assert.Equal(t, tc.typ, a.Type, "type of %s", tc.name)
	}

	// A textual convention is a type assignment: no value.
	assert.False(t, module.Assignment("ToastDoneness").IsValueAssignment())

	// Every macro invocation here binds an OID value.
	assert.Equal(t, "{ acme 1 }", module.Assignment("acmeToaster").Value.String())
	assert.Equal(t, "{ toasterObjects 1 }", module.Assignment("toasterDoneness").Value.String())
}

func TestIfModule(t *testing.T) {
	doc := parseFixture(t, "ACME-IF-MIB.mib")

	module := doc.Module("ACME-IF-MIB")
	require.NotNil(t, module)

	// The EXPORTS and IMPORTS sections do not become assignments.
	assert.Len(t, module.Assignments, 10)

	tagged := module.Assignment("AcmeAddress")
	require.NotNil(t, tagged)
	assert.Equal(t, "tagged_type", tagged.Type)
	assert.False(t, tagged.IsValueAssignment())

	table := module.Assignment("acmeIfTable")
	require.NotNil(t, table)
	assert.Equal(t, "object_type_type", table.Type)
	assert.Equal(t, "{ acmeIf 2 }", table.Value.String())

	entry := module.Assignment("AcmeIfEntry")
	require.NotNil(t, entry)
	assert.Equal(t, "sequence_type", entry.Type)
}
