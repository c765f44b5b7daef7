// Copyright 2018 Andrew Fort

// Package yin serializes a compiled YANG schema module to YIN, the
// XML form of YANG defined in RFC6020 section 11.
//
// Serialization is a single depth-first walk over the schema tree.
// Each statement family has a dedicated printer which emits that
// statement's substatements in the order the YIN grammar fixes for
// it, then recurses into child nodes filtered by the set of node
// kinds the enclosing statement permits. Child nodes owned by a
// different (sub)module than their structural parent were grafted in
// by an augment or carried in from a submodule; they are skipped by
// the node printers and emitted once, under their declaring augment
// statement.
//
// Elements with no substatements to print are rendered self-closing
// where the grammar makes the body entirely optional; each such
// printer has a matching predicate so the decision and the body stay
// in agreement.
//
// The printed tree is never mutated and no state is shared between
// branches of the walk: the only value threaded through calls is the
// indentation level. Recursion depth tracks schema and union nesting
// depth and is not bounded here.
package yin
