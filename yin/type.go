package yin

import (
	"github.com/andaru/yang/schema"
	"github.com/andaru/yang/xmlutil"
)

// typeSelfCloses reports whether a type has no substatements to
// print. Types whose bodies are mandated by the grammar (decimal64,
// enumeration, identityref, bits, union, leafref) never self-close;
// the restrictable types self-close only when unrestricted.
func typeSelfCloses(t *schema.Type) bool {
	switch {
	case t.Kind == schema.TypeBinary:
		return t.Length == nil
	case t.Kind == schema.TypeDecimal64,
		t.Kind == schema.TypeEnumeration,
		t.Kind == schema.TypeIdentityRef,
		t.Kind == schema.TypeBits,
		t.Kind == schema.TypeUnion,
		t.Kind == schema.TypeLeafRef:
		return false
	case t.Kind == schema.TypeInstanceID:
		return t.RequireInstance == schema.RequireUnset
	case t.Kind.Numeric():
		return t.Range == nil
	case t.Kind == schema.TypeString:
		return t.Length == nil && len(t.Patterns) == 0
	default:
		// boolean and empty carry no substatements
		return true
	}
}

// typ emits a type statement, recursively for union member types.
func (p *printer) typ(level int, mod *schema.Module, t *schema.Type) {
	selfClose := typeSelfCloses(t)

	name := t.Name
	if name == "" {
		name = t.Kind.String()
	}
	if t.ModuleName != "" && t.ModuleName != mod.Name {
		if prefix := mod.ImportPrefix(t.ModuleName); prefix != "" {
			name = prefix + ":" + name
		}
	}
	p.open(level, "type", "name", name, selfClose)
	if selfClose {
		return
	}

	level++
	switch {
	case t.Kind == schema.TypeBinary:
		if t.Length != nil {
			p.restr(level, "length", t.Length)
		}

	case t.Kind == schema.TypeBits:
		for _, bit := range t.Bits {
			p.open(level, "bit", "name", bit.Name, false)
			p.common(level+1, bit.Meta)
			p.unsigned(level+1, "position", "value", bit.Position)
			p.closeElem(level, "bit")
		}

	case t.Kind == schema.TypeDecimal64:
		p.unsigned(level, "fraction-digits", "value", uint32(t.FractionDigits))
		if t.Range != nil {
			p.restr(level, "range", t.Range)
		}

	case t.Kind == schema.TypeEnumeration:
		for _, enum := range t.Enums {
			p.open(level, "enum", "name", enum.Name, false)
			p.common(level+1, enum.Meta)
			p.printf("%*s<value value=\"%d\"/>\n", (level+1)*2, "", enum.Value)
			p.closeElem(level, "enum")
		}

	case t.Kind == schema.TypeIdentityRef:
		p.identityBase(level, mod, t.IdentityBase)

	case t.Kind == schema.TypeInstanceID:
		switch t.RequireInstance {
		case schema.RequireTrue:
			p.open(level, "require-instance", "value", "true", true)
		case schema.RequireFalse:
			p.open(level, "require-instance", "value", "false", true)
		}

	case t.Kind.Numeric():
		if t.Range != nil {
			p.restr(level, "range", t.Range)
		}

	case t.Kind == schema.TypeLeafRef:
		path, err := p.tr.SchemaExpr(mod, t.Path)
		if err != nil {
			p.fail(err)
			return
		}
		p.open(level, "path", "value", xmlutil.EscapeAttr(path), true)

	case t.Kind == schema.TypeString:
		if t.Length != nil {
			p.restr(level, "length", t.Length)
		}
		for _, pattern := range t.Patterns {
			p.restr(level, "pattern", pattern)
		}

	case t.Kind == schema.TypeUnion:
		for _, member := range t.Types {
			p.typ(level, mod, member)
		}
	}
	p.closeElem(level-1, "type")
}

// identityBase emits a base reference, prefixed when the identity's
// owning module (through belongs-to for an identity defined in a
// submodule) is not mod.
func (p *printer) identityBase(level int, mod *schema.Module, base *schema.Identity) {
	name := base.Name
	if owner := base.Module.Base(); owner != mod {
		if prefix := mod.ImportPrefix(owner.Name); prefix != "" {
			name = prefix + ":" + name
		}
	}
	p.open(level, "base", "name", name, true)
}
