package yin

import (
	"github.com/andaru/yang/schema"
	"github.com/andaru/yang/xmlutil"
)

// hasCommon reports whether common would emit at least one element.
func hasCommon(m schema.Meta) bool {
	return m.Status != schema.StatusCurrent || m.Description != "" || m.Reference != ""
}

// common covers status, description and reference. Status is only
// printed when it differs from the grammar default "current".
func (p *printer) common(level int, m schema.Meta) {
	if m.Status != schema.StatusCurrent {
		p.open(level, "status", "value", m.Status.String(), true)
	}
	if m.Description != "" {
		p.text(level, "description", m.Description)
	}
	if m.Reference != "" {
		p.text(level, "reference", m.Reference)
	}
}

// hasCommon2 reports whether common2 would emit at least one element.
func hasCommon2(n *schema.Node) bool {
	return configDiffers(n) || n.Mandatory != schema.MandatoryUnset || hasCommon(n.Meta)
}

// common2 covers config and mandatory, then status, description and
// reference. Config is printed only when the node's effective value
// differs from the parent's, or for a top level state node.
func (p *printer) common2(level int, n *schema.Node) {
	if configDiffers(n) {
		value := "true"
		if n.EffectiveConfig() == schema.ConfigFalse {
			value = "false"
		}
		p.open(level, "config", "value", value, true)
	}

	switch n.Mandatory {
	case schema.MandatoryTrue:
		p.open(level, "mandatory", "value", "true", true)
	case schema.MandatoryFalse:
		p.open(level, "mandatory", "value", "false", true)
	}

	p.common(level, n.Meta)
}

func configDiffers(n *schema.Node) bool {
	if n.Parent != nil {
		return n.EffectiveConfig() != n.Parent.EffectiveConfig()
	}
	return n.EffectiveConfig() == schema.ConfigFalse
}

// hasAccessDefaults reports whether accessDefaults would emit at
// least one element. Access flags inherit downward, so a node's flags
// are always a superset of its parent's; the predicate relies on that
// invariant (a parent holding a flag its child lacks would make it
// disagree with the printer).
func hasAccessDefaults(access, parent schema.Access) bool {
	return access != 0 && parent != access
}

// accessDefaults emits the NACM access-default annotations newly
// introduced by a node relative to its parent's effective flags. The
// annotation prefix is resolved through mod's broad lookup chain; if
// no prefix is known the marker degrades to an unprefixed element.
func (p *printer) accessDefaults(level int, access, parent schema.Access, mod *schema.Module) {
	if !hasAccessDefaults(access, parent) {
		return
	}
	prefix := mod.ResolvePrefix(schema.NACMModule)
	if access&schema.AccessDenyWrite != 0 && parent&schema.AccessDenyWrite == 0 {
		p.marker(level, prefix, "default-deny-write")
	}
	if access&schema.AccessDenyAll != 0 && parent&schema.AccessDenyAll == 0 {
		p.marker(level, prefix, "default-deny-all")
	}
}

func (p *printer) marker(level int, prefix, name string) {
	if prefix != "" {
		name = prefix + ":" + name
	}
	p.printf("%*s<%s/>\n", level*2, "", name)
}

// ifFeature emits a reference to feat, prefixed when its owning
// module (resolved through belongs-to for a feature defined in a
// submodule) is not mod. Prefix lookup is restricted to mod's direct
// imports.
func (p *printer) ifFeature(level int, mod *schema.Module, feat *schema.Feature) {
	name := feat.Name
	if owner := feat.Module.Base(); owner != mod {
		if prefix := mod.ImportPrefix(owner.Name); prefix != "" {
			name = prefix + ":" + name
		}
	}
	p.open(level, "if-feature", "name", name, true)
}

func (p *printer) ifFeatures(level int, mod *schema.Module, feats []*schema.Feature) {
	for _, feat := range feats {
		p.ifFeature(level, mod, feat)
	}
}

// when emits a when statement, translating the condition into mod's
// prefix namespace. Translation failure aborts the document.
func (p *printer) when(level int, mod *schema.Module, w *schema.When) {
	cond, err := p.tr.SchemaExpr(mod, w.Condition)
	if err != nil {
		p.fail(err)
		return
	}

	selfClose := w.Description == "" && w.Reference == ""
	p.printf("%*s<when condition=\"%s\"%s>\n", level*2, "", xmlutil.EscapeAttr(cond), slash(selfClose))
	if selfClose {
		return
	}
	if w.Description != "" {
		p.text(level+1, "description", w.Description)
	}
	if w.Reference != "" {
		p.text(level+1, "reference", w.Reference)
	}
	p.closeElem(level, "when")
}

// must emits a must statement, translating the condition into mod's
// prefix namespace.
func (p *printer) must(level int, mod *schema.Module, r *schema.Restriction) {
	cond, err := p.tr.SchemaExpr(mod, r.Expr)
	if err != nil {
		p.fail(err)
		return
	}

	selfClose := !hasRestrSub(r)
	p.printf("%*s<must condition=\"%s\"%s>\n", level*2, "", xmlutil.EscapeAttr(cond), slash(selfClose))
	if selfClose {
		return
	}
	p.restrSub(level+1, r)
	p.closeElem(level, "must")
}

func (p *printer) musts(level int, mod *schema.Module, rs []*schema.Restriction) {
	for _, r := range rs {
		p.must(level, mod, r)
	}
}

// hasRestrSub reports whether restrSub would emit at least one
// element.
func hasRestrSub(r *schema.Restriction) bool {
	return r.Description != "" || r.Reference != "" || r.ErrAppTag != "" || r.ErrMessage != ""
}

// restrSub emits a restriction's optional substatement block.
func (p *printer) restrSub(level int, r *schema.Restriction) {
	if r.Description != "" {
		p.text(level, "description", r.Description)
	}
	if r.Reference != "" {
		p.text(level, "reference", r.Reference)
	}
	if r.ErrAppTag != "" {
		p.open(level, "error-app-tag", "value", r.ErrAppTag, true)
	}
	if r.ErrMessage != "" {
		p.printf("%*s<error-message>\n", level*2, "")
		p.printf("%*s<value>%s</value>\n", (level+1)*2, "", xmlutil.EscapeText(r.ErrMessage))
		p.closeElem(level, "error-message")
	}
}

// restr emits a constraint element (length, range or pattern),
// self-closing when it has no substatement block.
func (p *printer) restr(level int, name string, r *schema.Restriction) {
	selfClose := !hasRestrSub(r)
	p.open(level, name, "value", xmlutil.EscapeAttr(r.Expr), selfClose)
	if selfClose {
		return
	}
	p.restrSub(level+1, r)
	p.closeElem(level, name)
}
