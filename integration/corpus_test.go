// Package integration provides end-to-end tests against the MIB fixtures
// under testdata/.
//
// Each fixture is a complete module exercising a slice of the grammar:
//
//   - ACME-TOASTER-MIB.mib: SMIv2 macros (MODULE-IDENTITY, OBJECT-TYPE,
//     TEXTUAL-CONVENTION, conformance groups, MODULE-COMPLIANCE)
//   - ACME-IF-MIB.mib: SMIv1 style (EXPORTS, ACCESS, tagged application
//     types, SEQUENCE tables)
//
// Test cases assert against the reduced model; the generic parse tree
// is covered by the internal package tests.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	mibparser "github.com/devg1120/mib-parser"
)

// parseFixture parses one testdata file and fails the test on error.
func parseFixture(t *testing.T, name string) *mibparser.Document {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err, "read fixture %s", name)

	doc, err := mibparser.Parse(string(data))
	require.NoError(t, err, "parse fixture %s", name)
	return doc
}

func TestFixturesParse(t *testing.T) {
	entries, err := os.ReadDir("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		t.Run(entry.Name(), func(t *testing.T) {
			doc := parseFixture(t, entry.Name())
			require.Len(t, doc.Modules, 1)
			require.NotEmpty(t, doc.Modules[0].Assignments)
		})
	}
}
