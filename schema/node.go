package schema

import "fmt"

// Kind identifies the kind of a schema node. Kinds are bit flags so
// that a set of kinds can be expressed as a mask.
type Kind uint16

const (
	// KindContainer is a container node
	KindContainer Kind = 1 << iota
	// KindChoice is a choice node
	KindChoice
	// KindLeaf is a leaf node
	KindLeaf
	// KindLeafList is a leaf-list node
	KindLeafList
	// KindList is a list node
	KindList
	// KindAnyXML is an anyxml node
	KindAnyXML
	// KindCase is a case node within a choice
	KindCase
	// KindNotification is a notification node
	KindNotification
	// KindRPC is an rpc node
	KindRPC
	// KindInput is the input block of an rpc
	KindInput
	// KindOutput is the output block of an rpc
	KindOutput
	// KindGrouping is a grouping definition node
	KindGrouping
	// KindUses is a uses (grouping instantiation) node
	KindUses

	kindMax
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindChoice:
		return "choice"
	case KindLeaf:
		return "leaf"
	case KindLeafList:
		return "leaf-list"
	case KindList:
		return "list"
	case KindAnyXML:
		return "anyxml"
	case KindCase:
		return "case"
	case KindNotification:
		return "notification"
	case KindRPC:
		return "rpc"
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	case KindGrouping:
		return "grouping"
	case KindUses:
		return "uses"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is a single member of the closed kind set.
func (k Kind) Valid() bool { return k != 0 && k&(k-1) == 0 && k < kindMax }

// Status represents the status statement enumerate.
type Status uint8

const (
	// StatusCurrent is the default status
	StatusCurrent Status = iota
	// StatusDeprecated marks a deprecated definition
	StatusDeprecated
	// StatusObsolete marks an obsolete definition
	StatusObsolete
)

func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Config represents the tri-state config statement value.
type Config uint8

const (
	// ConfigUnset means no config value is recorded; the effective
	// value is inherited from the parent node.
	ConfigUnset Config = iota
	// ConfigTrue is config true
	ConfigTrue
	// ConfigFalse is config false (state data)
	ConfigFalse
)

// Mandatory represents the tri-state mandatory statement value.
type Mandatory uint8

const (
	// MandatoryUnset means no mandatory statement is recorded
	MandatoryUnset Mandatory = iota
	// MandatoryTrue is mandatory true
	MandatoryTrue
	// MandatoryFalse is an explicit mandatory false
	MandatoryFalse
)

// Access is a set of NACM access-default annotation flags (RFC6536).
type Access uint8

const (
	// AccessDenyWrite is the default-deny-write annotation
	AccessDenyWrite Access = 1 << iota
	// AccessDenyAll is the default-deny-all annotation
	AccessDenyAll
)

// Meta holds the documentation substatements shared by most YANG
// statements.
type Meta struct {
	Status      Status
	Description string
	Reference   string
}

// When is a when statement. Condition is stored in canonical
// (module name qualified) form.
type When struct {
	Condition   string
	Description string
	Reference   string
}

// Restriction is a constraint statement (range, length, pattern or
// must) with its optional error handling substatements. Expr is the
// constraint expression; for must statements it is stored in
// canonical form.
type Restriction struct {
	Expr        string
	Description string
	Reference   string
	ErrAppTag   string
	ErrMessage  string
}

// Unique is a list unique statement: the descendant schema node
// identifiers of the constraint, in source order.
type Unique struct {
	Tags []string
}

// Node is a single schema tree node. Kind discriminates which of the
// kind-specific fields are meaningful; fields not listed for a node's
// kind are left at their zero value by model construction.
type Node struct {
	Name string
	Kind Kind

	// Module is the (sub)module the node was defined in. It differs
	// from the parent's module exactly when the node was grafted in
	// by an augment or carried in from a submodule; such nodes are
	// serialized from their declaration site, not under their
	// structural parent.
	Module *Module

	// Parent is the structural parent node, nil at top level.
	Parent *Node

	Meta
	Config    Config
	Mandatory Mandatory

	// Access holds the node's effective NACM annotation flags, as
	// resolved during model construction (inherited from the parent
	// unless overridden).
	Access Access

	When       *When
	IfFeatures []*Feature
	Musts      []*Restriction

	// Presence is a container's presence statement value.
	Presence string

	// Type is the leaf or leaf-list value type.
	Type *Type

	// Units applies to leaf and leaf-list nodes.
	Units string

	// Default is a leaf's default value.
	Default string

	// DefaultCase is a choice's default case.
	DefaultCase *Node

	// Keys are a list's key leaves in source order.
	Keys []*Node

	// Uniques are a list's unique constraints.
	Uniques []*Unique

	// MinElements and MaxElements apply to list and leaf-list nodes;
	// zero means unset.
	MinElements uint32
	MaxElements uint32

	// OrderedByUser is set for ordered-by user lists and leaf-lists.
	OrderedByUser bool

	// Typedefs are the node's local typedef definitions (container,
	// list, grouping, rpc, input, output, notification).
	Typedefs []*Typedef

	// Refines and Augments apply to uses nodes.
	Refines  []*Refine
	Augments []*Augment

	// Children are the node's child schema nodes in source order,
	// including any grafted in by augments from other modules.
	Children []*Node
}

// EffectiveConfig returns the node's effective config value,
// inheriting from the parent chain where unset. Top level nodes with
// no recorded value default to config true.
func (n *Node) EffectiveConfig() Config {
	for ; n != nil; n = n.Parent {
		if n.Config != ConfigUnset {
			return n.Config
		}
	}
	return ConfigTrue
}

// ParentAccess returns the effective NACM annotation flags of the
// node's parent, or zero at top level.
func (n *Node) ParentAccess() Access {
	if n.Parent == nil {
		return 0
	}
	return n.Parent.Access
}
