package yin

import (
	"strings"

	"github.com/andaru/yang/schema"
)

// Allowed-kind masks per statement context. These reproduce the YIN
// grammar's place restrictions: a choice body takes cases and
// shorthand data nodes but no grouping or uses, a case body takes no
// grouping, and only an rpc takes input and output.
const (
	maskData = schema.KindChoice | schema.KindContainer | schema.KindLeaf |
		schema.KindLeafList | schema.KindList | schema.KindUses |
		schema.KindGrouping | schema.KindAnyXML

	maskCase = schema.KindChoice | schema.KindContainer | schema.KindLeaf |
		schema.KindLeafList | schema.KindList | schema.KindUses |
		schema.KindAnyXML

	maskChoice = schema.KindContainer | schema.KindLeaf | schema.KindLeafList |
		schema.KindList | schema.KindAnyXML | schema.KindCase

	maskAugment = schema.KindChoice | schema.KindContainer | schema.KindLeaf |
		schema.KindLeafList | schema.KindList | schema.KindUses |
		schema.KindAnyXML | schema.KindCase

	maskRPC = schema.KindGrouping | schema.KindInput | schema.KindOutput
)

// node dispatches to the printer for n's kind. Kinds not in mask are
// not permitted in the calling context and are skipped. A kind
// outside the closed set aborts the document: it indicates a
// malformed tree.
func (p *printer) node(level int, n *schema.Node, mask schema.Kind) {
	if !n.Kind.Valid() {
		p.fail(&UnknownKindError{Name: n.Name, Kind: n.Kind})
		return
	}
	switch n.Kind & mask {
	case schema.KindContainer:
		p.container(level, n)
	case schema.KindChoice:
		p.choice(level, n)
	case schema.KindLeaf:
		p.leaf(level, n)
	case schema.KindLeafList:
		p.leafList(level, n)
	case schema.KindList:
		p.list(level, n)
	case schema.KindUses:
		p.uses(level, n)
	case schema.KindGrouping:
		p.grouping(level, n)
	case schema.KindAnyXML:
		p.anyxml(level, n)
	case schema.KindCase:
		p.caseNode(level, n)
	case schema.KindInput, schema.KindOutput:
		p.inputOutput(level, n)
	}
}

// children prints n's child nodes permitted by mask, skipping any
// child grafted in from another (sub)module: those are printed from
// their declaring augment statement instead.
func (p *printer) children(level int, n *schema.Node, mask schema.Kind) {
	for _, child := range n.Children {
		if child.Module != n.Module {
			continue
		}
		p.node(level, child, mask)
	}
}

func (p *printer) container(level int, n *schema.Node) {
	p.open(level, "container", "name", n.Name, false)

	level++
	p.accessDefaults(level, n.Access, n.ParentAccess(), n.Module)
	if n.When != nil {
		p.when(level, n.Module, n.When)
	}
	p.ifFeatures(level, n.Module, n.IfFeatures)
	p.musts(level, n.Module, n.Musts)
	if n.Presence != "" {
		p.open(level, "presence", "value", n.Presence, true)
	}
	p.common2(level, n)
	p.typedefs(level, n.Module, n.Typedefs)
	p.children(level, n, maskData)
	level--

	p.closeElem(level, "container")
}

func (p *printer) caseNode(level int, n *schema.Node) {
	p.open(level, "case", "name", n.Name, false)

	level++
	p.accessDefaults(level, n.Access, n.ParentAccess(), n.Module)
	p.common2(level, n)
	p.ifFeatures(level, n.Module, n.IfFeatures)
	if n.When != nil {
		p.when(level, n.Module, n.When)
	}
	p.children(level, n, maskCase)
	level--

	p.closeElem(level, "case")
}

func (p *printer) choice(level int, n *schema.Node) {
	p.open(level, "choice", "name", n.Name, false)

	level++
	p.accessDefaults(level, n.Access, n.ParentAccess(), n.Module)
	if n.DefaultCase != nil {
		p.open(level, "default", "value", n.DefaultCase.Name, true)
	}
	p.common2(level, n)
	p.ifFeatures(level, n.Module, n.IfFeatures)
	if n.When != nil {
		p.when(level, n.Module, n.When)
	}
	p.children(level, n, maskChoice)
	level--

	p.closeElem(level, "choice")
}

func (p *printer) leaf(level int, n *schema.Node) {
	p.open(level, "leaf", "name", n.Name, false)

	level++
	p.accessDefaults(level, n.Access, n.ParentAccess(), n.Module)
	if n.When != nil {
		p.when(level, n.Module, n.When)
	}
	p.ifFeatures(level, n.Module, n.IfFeatures)
	p.musts(level, n.Module, n.Musts)
	p.typ(level, n.Module, n.Type)
	p.common2(level, n)
	if n.Units != "" {
		p.open(level, "units", "name", n.Units, true)
	}
	if n.Default != "" {
		p.open(level, "default", "value", n.Default, true)
	}
	level--

	p.closeElem(level, "leaf")
}

// hasAnyxmlBody reports whether an anyxml statement has any
// substatement to print.
func hasAnyxmlBody(n *schema.Node) bool {
	return hasAccessDefaults(n.Access, n.ParentAccess()) || hasCommon2(n) ||
		len(n.IfFeatures) > 0 || len(n.Musts) > 0 || n.When != nil
}

func (p *printer) anyxml(level int, n *schema.Node) {
	selfClose := !hasAnyxmlBody(n)
	p.open(level, "anyxml", "name", n.Name, selfClose)
	if selfClose {
		return
	}

	level++
	p.accessDefaults(level, n.Access, n.ParentAccess(), n.Module)
	p.common2(level, n)
	p.ifFeatures(level, n.Module, n.IfFeatures)
	p.musts(level, n.Module, n.Musts)
	if n.When != nil {
		p.when(level, n.Module, n.When)
	}
	level--

	p.closeElem(level, "anyxml")
}

func (p *printer) leafList(level int, n *schema.Node) {
	p.open(level, "leaf-list", "name", n.Name, false)

	level++
	p.accessDefaults(level, n.Access, n.ParentAccess(), n.Module)
	if n.When != nil {
		p.when(level, n.Module, n.When)
	}
	p.ifFeatures(level, n.Module, n.IfFeatures)
	p.musts(level, n.Module, n.Musts)
	p.typ(level, n.Module, n.Type)
	p.common2(level, n)
	if n.Units != "" {
		p.open(level, "units", "name", n.Units, true)
	}
	if n.MinElements > 0 {
		p.unsigned(level, "min-elements", "value", n.MinElements)
	}
	if n.MaxElements > 0 {
		p.unsigned(level, "max-elements", "value", n.MaxElements)
	}
	if n.OrderedByUser {
		p.open(level, "ordered-by", "value", "user", true)
	}
	level--

	p.closeElem(level, "leaf-list")
}

func (p *printer) list(level int, n *schema.Node) {
	p.open(level, "list", "name", n.Name, false)

	level++
	p.accessDefaults(level, n.Access, n.ParentAccess(), n.Module)
	if n.When != nil {
		p.when(level, n.Module, n.When)
	}
	p.ifFeatures(level, n.Module, n.IfFeatures)
	p.musts(level, n.Module, n.Musts)
	if len(n.Keys) > 0 {
		names := make([]string, len(n.Keys))
		for i, key := range n.Keys {
			names[i] = key.Name
		}
		p.open(level, "key", "value", strings.Join(names, " "), true)
	}
	for _, unique := range n.Uniques {
		p.unique(level, unique)
	}
	p.common2(level, n)
	if n.MinElements > 0 {
		p.unsigned(level, "min-elements", "value", n.MinElements)
	}
	if n.MaxElements > 0 {
		p.unsigned(level, "max-elements", "value", n.MaxElements)
	}
	if n.OrderedByUser {
		p.open(level, "ordered-by", "value", "user", true)
	}
	p.typedefs(level, n.Module, n.Typedefs)
	p.children(level, n, maskData)
	level--

	p.closeElem(level, "list")
}

func (p *printer) grouping(level int, n *schema.Node) {
	p.open(level, "grouping", "name", n.Name, false)

	level++
	p.common(level, n.Meta)
	p.typedefs(level, n.Module, n.Typedefs)
	// grouping bodies are printed unexpanded: children are the
	// grouping's own declarations, so no foreign-module filter here
	for _, child := range n.Children {
		p.node(level, child, maskData)
	}
	level--

	p.closeElem(level, "grouping")
}

// hasUsesBody reports whether a uses statement has any substatement
// to print.
func hasUsesBody(n *schema.Node) bool {
	return hasAccessDefaults(n.Access, n.ParentAccess()) || hasCommon(n.Meta) ||
		len(n.IfFeatures) > 0 || n.When != nil ||
		len(n.Refines) > 0 || len(n.Augments) > 0
}

func (p *printer) uses(level int, n *schema.Node) {
	selfClose := !hasUsesBody(n)

	// the referenced grouping's owning module is recovered from the
	// uses node's expanded children; an empty grouping needs no
	// qualification
	name := n.Name
	if len(n.Children) > 0 {
		if owner := n.Children[0].Module.Base(); owner != n.Module {
			if prefix := n.Module.ImportPrefix(owner.Name); prefix != "" {
				name = prefix + ":" + name
			}
		}
	}
	p.open(level, "uses", "name", name, selfClose)
	if selfClose {
		return
	}

	level++
	p.accessDefaults(level, n.Access, n.ParentAccess(), n.Module)
	p.common(level, n.Meta)
	p.ifFeatures(level, n.Module, n.IfFeatures)
	if n.When != nil {
		p.when(level, n.Module, n.When)
	}
	for _, refine := range n.Refines {
		p.refine(level, n.Module, refine)
	}
	for _, augment := range n.Augments {
		p.augment(level, n.Module, augment)
	}
	level--

	p.closeElem(level, "uses")
}

func (p *printer) inputOutput(level int, n *schema.Node) {
	name := "input"
	if n.Kind == schema.KindOutput {
		name = "output"
	}
	p.printf("%*s<%s>\n", level*2, "", name)

	level++
	p.typedefs(level, n.Module, n.Typedefs)
	p.children(level, n, maskData)
	level--

	p.closeElem(level, name)
}

// hasRPCBody reports whether an rpc statement has any substatement
// to print.
func hasRPCBody(n *schema.Node) bool {
	return hasCommon(n.Meta) || len(n.IfFeatures) > 0 ||
		len(n.Typedefs) > 0 || len(n.Children) > 0
}

func (p *printer) rpc(level int, n *schema.Node) {
	selfClose := !hasRPCBody(n)
	p.open(level, "rpc", "name", n.Name, selfClose)
	if selfClose {
		return
	}

	level++
	p.common(level, n.Meta)
	p.ifFeatures(level, n.Module, n.IfFeatures)
	p.typedefs(level, n.Module, n.Typedefs)
	p.children(level, n, maskRPC)
	level--

	p.closeElem(level, "rpc")
}

func (p *printer) notification(level int, n *schema.Node) {
	selfClose := !hasRPCBody(n)
	p.open(level, "notification", "name", n.Name, selfClose)
	if selfClose {
		return
	}

	level++
	p.common(level, n.Meta)
	p.ifFeatures(level, n.Module, n.IfFeatures)
	p.typedefs(level, n.Module, n.Typedefs)
	p.children(level, n, maskData)
	level--

	p.closeElem(level, "notification")
}
