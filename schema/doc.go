// Copyright 2018 Andrew Fort

// Package schema is a read-only object model of a compiled YANG
// (RFC6020) module.
//
// A Module is the root of the model and owns its linkage statements
// (import, include), its top level definitions (feature, identity,
// typedef, deviation, augment) and the schema node tree. Schema nodes
// are kind-tagged Node values; the Kind constants are bit flags so a
// set of node kinds, such as the kinds permitted inside a particular
// statement, can be expressed as a single mask.
//
// Models are fully constructed and resolved before use. Nothing in
// this package mutates a model: consumers such as the yin serializer
// hold only borrowed references into the tree.
//
// Two different module name to prefix lookups exist, matching the
// YIN output rules they serve. ImportPrefix scans the module's direct
// imports only and backs if-feature, identity base and derived type
// references. ResolvePrefix additionally falls back to the imports of
// included submodules and backs the NACM annotation lookup. The
// asymmetry is deliberate and must not be unified without revisiting
// the serialized output of both statement families.
package schema
