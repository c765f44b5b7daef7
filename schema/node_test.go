package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{
		KindContainer, KindChoice, KindLeaf, KindLeafList, KindList,
		KindAnyXML, KindCase, KindNotification, KindRPC, KindInput,
		KindOutput, KindGrouping, KindUses,
	} {
		assert.True(t, k.Valid(), "kind %s", k)
		assert.NotContains(t, k.String(), "Kind(")
	}

	assert.False(t, Kind(0).Valid())
	assert.False(t, (KindLeaf | KindList).Valid())
	assert.False(t, kindMax.Valid())
	assert.False(t, Kind(0x8000).Valid())
}

func TestEffectiveConfig(t *testing.T) {
	top := &Node{Name: "top", Kind: KindContainer, Config: ConfigFalse}
	mid := &Node{Name: "mid", Kind: KindContainer, Parent: top}
	leaf := &Node{Name: "leaf", Kind: KindLeaf, Parent: mid}
	override := &Node{Name: "o", Kind: KindLeaf, Parent: mid, Config: ConfigTrue}

	// unset config inherits through the parent chain
	assert.Equal(t, ConfigFalse, leaf.EffectiveConfig())
	assert.Equal(t, ConfigFalse, mid.EffectiveConfig())
	assert.Equal(t, ConfigTrue, override.EffectiveConfig())

	// an unparented node with no recorded value defaults to true
	assert.Equal(t, ConfigTrue, (&Node{}).EffectiveConfig())
}

func TestParentAccess(t *testing.T) {
	parent := &Node{Name: "p", Kind: KindContainer, Access: AccessDenyWrite}
	child := &Node{Name: "c", Kind: KindLeaf, Parent: parent}

	assert.Equal(t, AccessDenyWrite, child.ParentAccess())
	assert.Equal(t, Access(0), parent.ParentAccess())
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "current", StatusCurrent.String())
	assert.Equal(t, "deprecated", StatusDeprecated.String())
	assert.Equal(t, "obsolete", StatusObsolete.String())
}

func TestDeviateKindStrings(t *testing.T) {
	assert.Equal(t, "not-supported", DeviateNotSupported.String())
	assert.Equal(t, "add", DeviateAdd.String())
	assert.Equal(t, "replace", DeviateReplace.String())
	assert.Equal(t, "delete", DeviateDelete.String())
}
