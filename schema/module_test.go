package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase(t *testing.T) {
	owner := &Module{Name: "base", Namespace: "urn:base", Prefix: "b"}
	sub := &Module{Name: "base-types", BelongsTo: owner, Prefix: "bt"}

	assert.False(t, owner.IsSubmodule())
	assert.True(t, sub.IsSubmodule())
	assert.Equal(t, owner, owner.Base())
	assert.Equal(t, owner, sub.Base())
}

func TestPrefixLookups(t *testing.T) {
	acm := &Module{Name: NACMModule, Namespace: "urn:acm", Prefix: "nacm"}
	dep := &Module{Name: "dep", Namespace: "urn:dep", Prefix: "d"}
	sub := &Module{
		Name:    "m-types",
		Imports: []Import{{Module: acm, Prefix: "subnacm"}},
	}
	m := &Module{
		Name:      "m",
		Namespace: "urn:m",
		Prefix:    "m",
		Imports:   []Import{{Module: dep, Prefix: "dd"}},
		Includes:  []Include{{Submodule: sub}},
	}

	// the narrow lookup sees direct imports only
	assert.Equal(t, "dd", m.ImportPrefix("dep"))
	assert.Equal(t, "", m.ImportPrefix(NACMModule))
	assert.Equal(t, "", m.ImportPrefix("m"))

	// the broad lookup adds self and imports of includes
	assert.Equal(t, "m", m.ResolvePrefix("m"))
	assert.Equal(t, "dd", m.ResolvePrefix("dep"))
	assert.Equal(t, "subnacm", m.ResolvePrefix(NACMModule))
	assert.Equal(t, "", m.ResolvePrefix("missing"))
}

func TestNamespaces(t *testing.T) {
	dep := &Module{Name: "dep", Namespace: "urn:dep", Prefix: "d"}
	ext := &Module{Name: "ext", Namespace: "urn:ext", Prefix: "e"}
	m := &Module{
		Name:      "m",
		Namespace: "urn:m",
		Prefix:    "m",
		Imports: []Import{
			{Module: dep, Prefix: "dd"},
			{Module: ext, Prefix: "ee", External: true},
		},
	}

	ns := m.Namespaces()
	assert.Equal(t, "urn:m", ns.Namespace("m"))
	assert.Equal(t, "urn:dep", ns.Namespace("dd"))
	// external imports are not declared
	assert.Equal(t, "", ns.Namespace("ee"))

	// a submodule declares no namespace of its own
	sub := &Module{Name: "m-types", BelongsTo: m, Prefix: "mt"}
	assert.Empty(t, sub.Namespaces())
}
