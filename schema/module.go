package schema

import "github.com/andaru/yang/xmlutil"

// NACMModule is the name of the module defining the NETCONF access
// control model annotations (RFC6536).
const NACMModule = "ietf-netconf-acm"

// Module is a compiled YANG module or submodule.
//
// A submodule has a non-nil BelongsTo module and no namespace of its
// own; a module carries exactly one namespace/prefix pair.
type Module struct {
	Name string

	// BelongsTo is the owning module of a submodule, nil for a module.
	BelongsTo *Module

	// Namespace is the module's XML namespace URI. Empty for a
	// submodule, which shares the namespace of its owning module.
	Namespace string

	// Prefix is the prefix the (sub)module declares for itself.
	Prefix string

	// Version is the YANG language version: 0 if unset, 1 for YANG
	// 1.0, 2 for YANG 1.1. A submodule takes the version of its
	// owning module.
	Version int

	Organization string
	Contact      string
	Description  string
	Reference    string

	Revisions []Revision
	Imports   []Import
	Includes  []Include

	Features   []*Feature
	Identities []*Identity
	Typedefs   []*Typedef
	Deviations []*Deviation
	Augments   []*Augment

	// Data holds the module's top level schema nodes in source order,
	// including any RPCs and notifications. Nodes owned by another
	// (sub)module may appear here after augment resolution.
	Data []*Node

	// Deviated marks a module whose schema was altered by deviations
	// declared in another module.
	Deviated bool
}

// Revision is a single revision statement.
type Revision struct {
	Date        string
	Description string
	Reference   string
}

// Import is a resolved import statement.
type Import struct {
	Module *Module
	Prefix string

	// Revision is the optional revision-date of the import.
	Revision string

	// External marks an import that is not part of the module's own
	// source text (for example one carried in from a submodule);
	// external imports are not serialized.
	External bool
}

// Include is a resolved include statement.
type Include struct {
	Submodule *Module

	// Revision is the optional revision-date of the include.
	Revision string

	// External marks an include not part of the module's own source
	// text; external includes are not serialized.
	External bool
}

// IsSubmodule reports whether m is a submodule.
func (m *Module) IsSubmodule() bool { return m.BelongsTo != nil }

// Base resolves m through its belongs-to indirection: for a submodule
// it returns the owning module, otherwise m itself.
func (m *Module) Base() *Module {
	if m.BelongsTo != nil {
		return m.BelongsTo
	}
	return m
}

// ImportPrefix returns the prefix m uses for the named module via its
// direct imports, or the empty string when the name is not imported.
// This is the narrow lookup used for if-feature, identity base and
// derived type references.
func (m *Module) ImportPrefix(name string) string {
	for i := range m.Imports {
		if m.Imports[i].Module.Name == name {
			return m.Imports[i].Prefix
		}
	}
	return ""
}

// ResolvePrefix returns a prefix m may use for the named module,
// trying m itself, then its direct imports, then the imports of every
// included submodule, first match wins. The empty string is returned
// when no prefix is known. This is the broad lookup used for the NACM
// annotation namespace.
func (m *Module) ResolvePrefix(name string) string {
	if m.Name == name {
		return m.Prefix
	}
	if prefix := m.ImportPrefix(name); prefix != "" {
		return prefix
	}
	for i := range m.Includes {
		if prefix := m.Includes[i].Submodule.ImportPrefix(name); prefix != "" {
			return prefix
		}
	}
	return ""
}

// Namespaces returns the XML namespace declarations required by the
// (sub)module's YIN document: its own prefix (for a module) and one
// per non-external import.
func (m *Module) Namespaces() xmlutil.PrefixMap {
	ns := xmlutil.PrefixMap{}
	if !m.IsSubmodule() {
		ns[m.Prefix] = m.Namespace
	}
	for i := range m.Imports {
		if m.Imports[i].External {
			continue
		}
		ns[m.Imports[i].Prefix] = m.Imports[i].Module.Namespace
	}
	return ns
}
