/*
Package yang is a set of YANG (RFC6020) schema model support libraries.

The schema sub-package provides a read-only object model of a compiled
YANG module: the module header and linkage statements, typedefs,
features, identities, deviations, augments and the schema node tree
itself. Models are constructed elsewhere (by a compiler or by hand in
tests) and are never mutated by these libraries.

The yin sub-package serializes a schema module to its canonical
XML-based YIN form, suitable for exchange with NETCONF peers and other
tooling that consumes YIN rather than YANG source.

The transform sub-package translates canonically stored expressions
(XPath conditions and schema paths qualified by module name) into the
prefix namespace of a particular module, as required when rendering
when/must conditions, leafref paths and augment or deviation targets.
*/
package yang
