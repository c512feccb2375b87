// Package mib provides the typed model produced by parsing MIB source
// text: a document of modules, each holding its assignments in source
// order. All values are created fresh per parse invocation and never
// mutated after construction.
package mib

// Document is the top-level parse result: the modules of one source
// text, in source order.
type Document struct {
	Modules []Module `json:"modules"`
}

// Module returns the named module, or nil if not present.
// Module names may carry an "=<oid>" suffix when the module header
// had an explicit OID assignment; lookup matches the full name.
func (d *Document) Module(name string) *Module {
	for i := range d.Modules {
		if d.Modules[i].Name == name {
			return &d.Modules[i]
		}
	}
	return nil
}

// Module is a named MIB module and its assignments, in declaration
// order. Order is semantically meaningful: later assignments may
// reference earlier ones.
type Module struct {
	Name        string       `json:"name"`
	Assignments []Assignment `json:"assignments"`
}

// Assignment returns the named assignment, or nil if not present.
func (m *Module) Assignment(name string) *Assignment {
	for i := range m.Assignments {
		if m.Assignments[i].Name == name {
			return &m.Assignments[i]
		}
	}
	return nil
}

// Assignment is a named binding within a module: a type assignment
// binds a name to a type descriptor; a value assignment additionally
// carries a value. Value is nil exactly when this is a type assignment.
type Assignment struct {
	Name string `json:"name"`
	// Type is a placeholder descriptor: the identity of the grammar
	// rule the type expression matched (e.g. "module_identity_type").
	Type  string `json:"type"`
	Value Value  `json:"value,omitempty"`
}

// IsValueAssignment returns true if this assignment binds a value.
func (a *Assignment) IsValueAssignment() bool {
	return a.Value != nil
}
