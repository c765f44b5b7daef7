package schema

import "fmt"

// TypeKind identifies a YANG built-in base type.
type TypeKind uint8

const (
	// TypeBinary is the binary built-in type
	TypeBinary TypeKind = iota
	// TypeBits is the bits built-in type
	TypeBits
	// TypeBoolean is the boolean built-in type
	TypeBoolean
	// TypeDecimal64 is the decimal64 built-in type
	TypeDecimal64
	// TypeEmpty is the empty built-in type
	TypeEmpty
	// TypeEnumeration is the enumeration built-in type
	TypeEnumeration
	// TypeIdentityRef is the identityref built-in type
	TypeIdentityRef
	// TypeInstanceID is the instance-identifier built-in type
	TypeInstanceID
	// TypeLeafRef is the leafref built-in type
	TypeLeafRef
	// TypeString is the string built-in type
	TypeString
	// TypeUnion is the union built-in type
	TypeUnion
	// TypeInt8 is the int8 built-in type
	TypeInt8
	// TypeInt16 is the int16 built-in type
	TypeInt16
	// TypeInt32 is the int32 built-in type
	TypeInt32
	// TypeInt64 is the int64 built-in type
	TypeInt64
	// TypeUint8 is the uint8 built-in type
	TypeUint8
	// TypeUint16 is the uint16 built-in type
	TypeUint16
	// TypeUint32 is the uint32 built-in type
	TypeUint32
	// TypeUint64 is the uint64 built-in type
	TypeUint64
)

func (k TypeKind) String() string {
	switch k {
	case TypeBinary:
		return "binary"
	case TypeBits:
		return "bits"
	case TypeBoolean:
		return "boolean"
	case TypeDecimal64:
		return "decimal64"
	case TypeEmpty:
		return "empty"
	case TypeEnumeration:
		return "enumeration"
	case TypeIdentityRef:
		return "identityref"
	case TypeInstanceID:
		return "instance-identifier"
	case TypeLeafRef:
		return "leafref"
	case TypeString:
		return "string"
	case TypeUnion:
		return "union"
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeUint64:
		return "uint64"
	default:
		return fmt.Sprintf("TypeKind(%d)", int(k))
	}
}

// Numeric reports whether k is one of the integer built-in types.
func (k TypeKind) Numeric() bool { return k >= TypeInt8 && k <= TypeUint64 }

// RequireInstance is the tri-state require-instance statement value
// of an instance-identifier type.
type RequireInstance uint8

const (
	// RequireUnset means no require-instance statement is recorded
	RequireUnset RequireInstance = iota
	// RequireTrue is require-instance true
	RequireTrue
	// RequireFalse is require-instance false
	RequireFalse
)

// Type describes a leaf or leaf-list value type. Kind selects the
// base type; only the restriction fields meaningful to that base are
// populated. A type derived from a typedef additionally carries the
// typedef's Name and defining ModuleName.
type Type struct {
	Kind TypeKind

	// Name is the typedef name for a derived type; empty for a
	// direct use of a built-in type.
	Name string

	// ModuleName is the name of the module defining the typedef a
	// derived type refers to; empty for a built-in type.
	ModuleName string

	// Range restricts numeric and decimal64 types.
	Range *Restriction

	// Length restricts string and binary types.
	Length *Restriction

	// Patterns restrict string types, in source order.
	Patterns []*Restriction

	// Enums are the members of an enumeration type.
	Enums []*Enum

	// Bits are the members of a bits type.
	Bits []*Bit

	// Types are the member types of a union, in source order.
	Types []*Type

	// IdentityBase is the base identity of an identityref type.
	IdentityBase *Identity

	// Path is a leafref target path in canonical form.
	Path string

	// RequireInstance applies to instance-identifier types.
	RequireInstance RequireInstance

	// FractionDigits applies to decimal64 types.
	FractionDigits uint8
}

// Enum is one member of an enumeration type.
type Enum struct {
	Meta
	Name  string
	Value int32
}

// Bit is one member of a bits type.
type Bit struct {
	Meta
	Name     string
	Position uint32
}

// Feature is a top level feature definition.
type Feature struct {
	Meta
	Name string

	// Module is the (sub)module defining the feature.
	Module *Module

	// IfFeatures are the feature's own if-feature dependencies.
	IfFeatures []*Feature
}

// Identity is a top level identity definition.
type Identity struct {
	Meta
	Name string

	// Module is the (sub)module defining the identity.
	Module *Module

	// Base is the identity's base identity, if any.
	Base *Identity
}

// Typedef is a named type definition, top level or nested within a
// schema node.
type Typedef struct {
	Meta
	Name string

	// Module is the (sub)module defining the typedef.
	Module *Module

	Type    *Type
	Units   string
	Default string
}
