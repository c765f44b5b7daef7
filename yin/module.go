package yin

import "github.com/andaru/yang/schema"

// module emits the complete YIN document for a module or submodule.
func (p *printer) module(mod *schema.Module) {
	p.printf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	if mod.Deviated {
		p.printf("<!-- DEVIATED -->\n")
	}

	level := 0
	if mod.IsSubmodule() {
		p.printf("<submodule name=\"%s\"\n", mod.Name)
		p.namespaces(mod)
		p.printf(">\n")

		level++
		if mod.Version != 0 {
			// a submodule conforms to the language version of its
			// owning module
			p.open(level, "yang-version", "value", versionString(mod.Base().Version), true)
		}
		p.open(level, "belongs-to", "module", mod.BelongsTo.Name, false)
		p.open(level+1, "prefix", "value", mod.Prefix, true)
		p.closeElem(level, "belongs-to")
	} else {
		p.printf("<module name=\"%s\"\n", mod.Name)
		p.namespaces(mod)
		p.printf(">\n")

		level++
		if mod.Version != 0 {
			p.open(level, "yang-version", "value", versionString(mod.Version), true)
		}
		p.open(level, "namespace", "uri", mod.Namespace, true)
		p.open(level, "prefix", "value", mod.Prefix, true)
	}

	p.linkage(level, mod)
	p.meta(level, mod)
	p.revisions(level, mod)
	p.body(level, mod)

	if mod.IsSubmodule() {
		p.printf("</submodule>\n")
	} else {
		p.printf("</module>\n")
	}
}

// namespaces emits the root element's xmlns attributes: the YIN
// namespace as the default, the module's own prefix (a submodule has
// no namespace of its own) and one per non-external import, aligned
// under the root element's name attribute.
func (p *printer) namespaces(mod *schema.Module) {
	pad := len("<module ")
	if mod.IsSubmodule() {
		pad = len("<submodule ")
	}

	p.printf("%*sxmlns=\"%s\"", pad, "", Namespace)
	if !mod.IsSubmodule() {
		p.printf("\n%*sxmlns:%s=\"%s\"", pad, "", mod.Prefix, mod.Namespace)
	}
	for i := range mod.Imports {
		imp := &mod.Imports[i]
		if imp.External {
			continue
		}
		p.printf("\n%*sxmlns:%s=\"%s\"", pad, "", imp.Prefix, imp.Module.Namespace)
	}
}

func (p *printer) linkage(level int, mod *schema.Module) {
	for i := range mod.Imports {
		imp := &mod.Imports[i]
		if imp.External {
			continue
		}
		p.open(level, "import", "module", imp.Module.Name, false)
		p.open(level+1, "prefix", "value", imp.Prefix, true)
		if imp.Revision != "" {
			p.open(level+1, "revision-date", "date", imp.Revision, true)
		}
		p.closeElem(level, "import")
	}

	for i := range mod.Includes {
		inc := &mod.Includes[i]
		if inc.External {
			continue
		}
		if inc.Revision == "" {
			p.open(level, "include", "value", inc.Submodule.Name, true)
			continue
		}
		p.open(level, "include", "value", inc.Submodule.Name, false)
		p.open(level+1, "revision-date", "date", inc.Revision, true)
		p.closeElem(level, "include")
	}
}

func (p *printer) meta(level int, mod *schema.Module) {
	if mod.Organization != "" {
		p.text(level, "organization", mod.Organization)
	}
	if mod.Contact != "" {
		p.text(level, "contact", mod.Contact)
	}
	if mod.Description != "" {
		p.text(level, "description", mod.Description)
	}
	if mod.Reference != "" {
		p.text(level, "reference", mod.Reference)
	}
}

func (p *printer) revisions(level int, mod *schema.Module) {
	for i := range mod.Revisions {
		rev := &mod.Revisions[i]
		if rev.Description == "" && rev.Reference == "" {
			p.open(level, "revision", "date", rev.Date, true)
			continue
		}
		p.open(level, "revision", "date", rev.Date, false)
		if rev.Description != "" {
			p.text(level+1, "description", rev.Description)
		}
		if rev.Reference != "" {
			p.text(level+1, "reference", rev.Reference)
		}
		p.closeElem(level, "revision")
	}
}

// body emits the module's body statements in the order the grammar
// fixes: features, identities, typedefs, deviations, data nodes and
// finally augments. RPCs and notifications are only valid at the top
// level and route to their dedicated printers.
func (p *printer) body(level int, mod *schema.Module) {
	for _, feat := range mod.Features {
		p.feature(level, feat)
	}
	for _, ident := range mod.Identities {
		p.identity(level, ident)
	}
	p.typedefs(level, mod, mod.Typedefs)
	for _, d := range mod.Deviations {
		p.deviation(level, mod, d)
	}

	for _, n := range mod.Data {
		// nodes grafted in by other modules' augments print under
		// those modules' own augment statements
		if n.Module != mod {
			continue
		}
		switch n.Kind {
		case schema.KindRPC:
			p.rpc(level, n)
		case schema.KindNotification:
			p.notification(level, n)
		default:
			p.node(level, n, maskData)
		}
	}

	for _, a := range mod.Augments {
		p.augment(level, mod, a)
	}
}

func versionString(version int) string {
	if version == 2 {
		return "1.1"
	}
	return "1"
}
