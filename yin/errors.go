package yin

import (
	"fmt"

	"github.com/andaru/yang/schema"
)

// UnknownKindError is returned when the schema tree contains a node
// whose kind is not a member of the schema.Kind set, indicating a
// malformed input tree.
type UnknownKindError struct {
	// Name is the name of the offending node.
	Name string
	// Kind is the unrecognized kind value.
	Kind schema.Kind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("node %q has unknown kind %s", e.Name, e.Kind)
}
