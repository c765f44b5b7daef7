package yin

import (
	"strings"

	"github.com/andaru/yang/schema"
	"github.com/andaru/yang/xmlutil"
)

// hasFeatureBody reports whether a feature statement has any
// substatement to print.
func hasFeatureBody(feat *schema.Feature) bool {
	return hasCommon(feat.Meta) || len(feat.IfFeatures) > 0
}

func (p *printer) feature(level int, feat *schema.Feature) {
	selfClose := !hasFeatureBody(feat)
	p.open(level, "feature", "name", feat.Name, selfClose)
	if selfClose {
		return
	}

	level++
	p.common(level, feat.Meta)
	p.ifFeatures(level, feat.Module, feat.IfFeatures)
	level--

	p.closeElem(level, "feature")
}

// hasIdentityBody reports whether an identity statement has any
// substatement to print.
func hasIdentityBody(ident *schema.Identity) bool {
	return hasCommon(ident.Meta) || ident.Base != nil
}

func (p *printer) identity(level int, ident *schema.Identity) {
	selfClose := !hasIdentityBody(ident)
	p.open(level, "identity", "name", ident.Name, selfClose)
	if selfClose {
		return
	}

	level++
	p.common(level, ident.Meta)
	if ident.Base != nil {
		p.identityBase(level, ident.Module, ident.Base)
	}
	level--

	p.closeElem(level, "identity")
}

func (p *printer) typedef(level int, mod *schema.Module, td *schema.Typedef) {
	p.open(level, "typedef", "name", td.Name, false)

	level++
	p.common(level, td.Meta)
	p.typ(level, mod, td.Type)
	if td.Units != "" {
		p.open(level, "units", "name", td.Units, true)
	}
	if td.Default != "" {
		p.open(level, "default", "value", td.Default, true)
	}
	level--

	p.closeElem(level, "typedef")
}

func (p *printer) typedefs(level int, mod *schema.Module, tds []*schema.Typedef) {
	for _, td := range tds {
		p.typedef(level, mod, td)
	}
}

func (p *printer) unique(level int, u *schema.Unique) {
	p.printf("%*s<unique tag=\"%s\"/>\n", level*2, "", strings.Join(u.Tags, " "))
}

func (p *printer) refine(level int, mod *schema.Module, r *schema.Refine) {
	target, err := p.tr.XMLPath(mod, r.Target)
	if err != nil {
		p.fail(err)
		return
	}
	p.open(level, "refine", "target-node", xmlutil.EscapeAttr(target), false)

	level++
	switch r.Config {
	case schema.ConfigTrue:
		p.open(level, "config", "value", "true", true)
	case schema.ConfigFalse:
		p.open(level, "config", "value", "false", true)
	}
	switch r.Mandatory {
	case schema.MandatoryTrue:
		p.open(level, "mandatory", "value", "true", true)
	case schema.MandatoryFalse:
		p.open(level, "mandatory", "value", "false", true)
	}
	p.common(level, r.Meta)
	p.musts(level, mod, r.Musts)

	// exactly one override family applies, selected by the kind of
	// the refine's target node
	switch {
	case r.TargetKind&(schema.KindLeaf|schema.KindChoice) != 0:
		if r.Default != "" {
			p.open(level, "default", "value", r.Default, true)
		}
	case r.TargetKind == schema.KindContainer:
		if r.Presence != "" {
			p.open(level, "presence", "value", r.Presence, true)
		}
	case r.TargetKind&(schema.KindList|schema.KindLeafList) != 0:
		p.minMaxElements(level, r.MinElements, r.MaxElements)
	}
	level--

	p.closeElem(level, "refine")
}

// minMaxElements emits min-elements and max-elements overrides from
// their set-ness pointers; a set max of zero means unbounded.
func (p *printer) minMaxElements(level int, min, max *uint32) {
	if min != nil {
		p.unsigned(level, "min-elements", "value", *min)
	}
	if max != nil {
		if *max > 0 {
			p.unsigned(level, "max-elements", "value", *max)
		} else {
			p.open(level, "max-elements", "value", "unbounded", true)
		}
	}
}

func (p *printer) deviation(level int, mod *schema.Module, d *schema.Deviation) {
	target, err := p.tr.XMLPath(mod, d.Target)
	if err != nil {
		p.fail(err)
		return
	}
	p.open(level, "deviation", "target-node", xmlutil.EscapeAttr(target), false)

	level++
	if d.Description != "" {
		p.text(level, "description", d.Description)
	}
	if d.Reference != "" {
		p.text(level, "reference", d.Reference)
	}
	for _, dv := range d.Deviates {
		p.deviate(level, mod, dv)
	}
	level--

	p.closeElem(level, "deviation")
}

func (p *printer) deviate(level int, mod *schema.Module, dv *schema.Deviate) {
	p.open(level, "deviate", "value", dv.Kind.String(), false)

	level++
	switch dv.Config {
	case schema.ConfigTrue:
		p.open(level, "config", "value", "true", true)
	case schema.ConfigFalse:
		p.open(level, "config", "value", "false", true)
	}
	switch dv.Mandatory {
	case schema.MandatoryTrue:
		p.open(level, "mandatory", "value", "true", true)
	case schema.MandatoryFalse:
		p.open(level, "mandatory", "value", "false", true)
	}
	if dv.Default != "" {
		p.open(level, "default", "value", dv.Default, true)
	}
	p.minMaxElements(level, dv.MinElements, dv.MaxElements)
	p.musts(level, mod, dv.Musts)
	for _, u := range dv.Uniques {
		p.unique(level, u)
	}
	if dv.Type != nil {
		p.typ(level, mod, dv.Type)
	}
	if dv.Units != "" {
		p.open(level, "units", "name", dv.Units, true)
	}
	level--

	p.closeElem(level, "deviate")
}

func (p *printer) augment(level int, mod *schema.Module, a *schema.Augment) {
	target, err := p.tr.XMLPath(mod, a.Target)
	if err != nil {
		p.fail(err)
		return
	}
	p.open(level, "augment", "target-node", xmlutil.EscapeAttr(target), false)

	level++
	p.accessDefaults(level, a.Access, 0, mod)
	p.common(level, a.Meta)
	p.ifFeatures(level, mod, a.IfFeatures)
	if a.When != nil {
		p.when(level, mod, a.When)
	}
	// augment children belong to the augmenting module; no foreign
	// filter applies here
	for _, child := range a.Children {
		p.node(level, child, maskAugment)
	}
	level--

	p.closeElem(level, "augment")
}
