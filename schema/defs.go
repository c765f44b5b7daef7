package schema

// Refine narrows constraints of a node instantiated via a uses
// statement. Target is the descendant path of the refined node in
// canonical form; TargetKind records the kind of the target node,
// which selects the meaningful override fields.
type Refine struct {
	Meta

	Target     string
	TargetKind Kind

	Config    Config
	Mandatory Mandatory
	Musts     []*Restriction

	// Default applies to leaf and choice targets.
	Default string

	// Presence applies to container targets.
	Presence string

	// MinElements and MaxElements apply to list and leaf-list
	// targets; nil means unset. A MaxElements of zero means
	// unbounded.
	MinElements *uint32
	MaxElements *uint32
}

// DeviateKind is the edit kind of a single deviate statement.
type DeviateKind uint8

const (
	// DeviateNotSupported removes the target node entirely
	DeviateNotSupported DeviateKind = iota
	// DeviateAdd adds properties to the target node
	DeviateAdd
	// DeviateReplace replaces properties of the target node
	DeviateReplace
	// DeviateDelete removes properties from the target node
	DeviateDelete
)

func (k DeviateKind) String() string {
	switch k {
	case DeviateNotSupported:
		return "not-supported"
	case DeviateAdd:
		return "add"
	case DeviateReplace:
		return "replace"
	case DeviateDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Deviation declares overrides of a node defined elsewhere. Target is
// the absolute path of the node in canonical form.
type Deviation struct {
	Target      string
	Description string
	Reference   string
	Deviates    []*Deviate
}

// Deviate is a single deviate entry of a deviation. Only the fields
// actually set on the entry are serialized; a not-supported entry has
// no payload at all.
type Deviate struct {
	Kind DeviateKind

	Config    Config
	Mandatory Mandatory
	Default   string

	// MinElements and MaxElements follow the Refine convention:
	// nil unset, zero MaxElements means unbounded.
	MinElements *uint32
	MaxElements *uint32

	Musts   []*Restriction
	Uniques []*Unique
	Type    *Type
	Units   string
}

// Augment injects child nodes at a target path located elsewhere,
// possibly in another module. Target is stored in canonical form.
type Augment struct {
	Meta

	Target string

	// Module is the module declaring the augment.
	Module *Module

	// Access holds NACM annotation flags declared on the augment.
	Access Access

	When       *When
	IfFeatures []*Feature

	// Children are the nodes grafted in at the target, in source
	// order.
	Children []*Node
}
