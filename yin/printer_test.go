package yin

import (
	"bytes"
	"encoding/xml"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/yang/schema"
	"github.com/andaru/yang/transform"
	"github.com/andaru/yang/xmlutil"
)

// render serializes mod, failing the test on error.
func render(t *testing.T, mod *schema.Module) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, mod))
	return buf.String()
}

// parse parses a rendered document, which also checks it is
// well-formed (every open tag matched by a close tag).
func parse(t *testing.T, doc string) *xmlquery.Node {
	t.Helper()
	n, err := xmlquery.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return n
}

// link sets parent and owner back-references for a hand-built tree.
func link(mod *schema.Module, parent *schema.Node, nodes ...*schema.Node) {
	for _, n := range nodes {
		if n.Module == nil {
			n.Module = mod
		}
		n.Parent = parent
		link(n.Module, n, n.Children...)
	}
}

func TestWriteGolden(t *testing.T) {
	mod := &schema.Module{
		Name:      "m",
		Namespace: "urn:m",
		Prefix:    "m",
	}
	leaf := &schema.Node{
		Name: "x",
		Kind: schema.KindLeaf,
		Type: &schema.Type{
			Kind:   schema.TypeString,
			Length: &schema.Restriction{Expr: "1..10"},
		},
		Meta: schema.Meta{Description: "d"},
	}
	mod.Data = []*schema.Node{leaf}
	link(mod, nil, mod.Data...)

	const want = `<?xml version="1.0" encoding="UTF-8"?>
<module name="m"
        xmlns="urn:ietf:params:xml:ns:yang:yin:1"
        xmlns:m="urn:m">
  <namespace uri="urn:m"/>
  <prefix value="m"/>
  <leaf name="x">
    <type name="string">
      <length value="1..10"/>
    </type>
    <description>
      <text>d</text>
    </description>
  </leaf>
</module>
`
	assert.Equal(t, want, render(t, mod))
}

func TestWriteModuleHeader(t *testing.T) {
	imported := &schema.Module{Name: "dep", Namespace: "urn:dep", Prefix: "dep"}
	mod := &schema.Module{
		Name:      "hdr",
		Namespace: "urn:hdr",
		Prefix:    "h",
		Version:   2,
		Imports: []schema.Import{
			{Module: imported, Prefix: "d", Revision: "2018-01-01"},
			{Module: &schema.Module{Name: "ext", Namespace: "urn:ext"}, Prefix: "e", External: true},
		},
		Includes: []schema.Include{
			{Submodule: &schema.Module{Name: "hdr-types"}, Revision: "2018-02-02"},
			{Submodule: &schema.Module{Name: "hdr-unrev"}},
		},
		Organization: "example corp",
		Contact:      "support@example.com",
		Description:  "header test",
		Reference:    "RFC0000",
		Revisions: []schema.Revision{
			{Date: "2018-03-03", Description: "first"},
			{Date: "2018-01-01"},
		},
		Deviated: true,
	}

	out := render(t, mod)
	doc := parse(t, out)

	assert.Contains(t, out, "<!-- DEVIATED -->")
	// external imports appear neither as xmlns nor as import statements
	assert.NotContains(t, out, "urn:ext")
	assert.Contains(t, out, `        xmlns:d="urn:dep"`)

	// the root element's xmlns declarations mirror the module's
	// namespace map, plus the YIN default namespace
	root := xmlquery.FindOne(doc, `/module`)
	require.NotNil(t, root)
	var attrs []xml.Attr
	for _, a := range root.Attr {
		attrs = append(attrs, xml.Attr{Name: a.Name, Value: a.Value})
	}
	declared := xmlutil.NewPrefixMap(attrs...)
	for prefix, uri := range mod.Namespaces() {
		assert.Equal(t, uri, declared.Namespace(prefix))
	}
	assert.Equal(t, []string{"h"}, declared.Prefix("urn:hdr"))

	assert.NotNil(t, xmlquery.FindOne(doc, `//yang-version[@value='1.1']`))
	assert.NotNil(t, xmlquery.FindOne(doc, `//import[@module='dep']/prefix[@value='d']`))
	assert.NotNil(t, xmlquery.FindOne(doc, `//import[@module='dep']/revision-date[@date='2018-01-01']`))
	assert.NotNil(t, xmlquery.FindOne(doc, `//include[@value='hdr-types']/revision-date[@date='2018-02-02']`))
	assert.NotNil(t, xmlquery.FindOne(doc, `//include[@value='hdr-unrev']`))
	assert.NotNil(t, xmlquery.FindOne(doc, `//organization/text`))
	assert.NotNil(t, xmlquery.FindOne(doc, `//revision[@date='2018-03-03']/description/text`))
	assert.NotNil(t, xmlquery.FindOne(doc, `//revision[@date='2018-01-01']`))
}

func TestWriteSubmoduleHeader(t *testing.T) {
	owner := &schema.Module{Name: "base", Namespace: "urn:base", Prefix: "b", Version: 2}
	sub := &schema.Module{
		Name:      "base-types",
		BelongsTo: owner,
		Prefix:    "bt",
		Version:   1,
	}

	out := render(t, sub)
	doc := parse(t, out)

	assert.True(t, strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<submodule name=\"base-types\"\n"))
	// a submodule declares no namespace of its own
	assert.NotContains(t, out, "xmlns:bt")
	assert.Contains(t, out, `           xmlns="urn:ietf:params:xml:ns:yang:yin:1">`)
	// language version comes from the owning module
	assert.NotNil(t, xmlquery.FindOne(doc, `//yang-version[@value='1.1']`))
	assert.NotNil(t, xmlquery.FindOne(doc, `//belongs-to[@module='base']/prefix[@value='bt']`))
	assert.True(t, strings.HasSuffix(out, "</submodule>\n"))
}

func TestWriteDeviation(t *testing.T) {
	target := &schema.Module{Name: "tgt", Namespace: "urn:tgt", Prefix: "t"}
	unbounded := uint32(0)
	mod := &schema.Module{
		Name:      "dev",
		Namespace: "urn:dev",
		Prefix:    "d",
		Imports:   []schema.Import{{Module: target, Prefix: "t"}},
		Deviations: []*schema.Deviation{
			{
				Target:      "/tgt:sessions",
				Description: "unsupported on this platform",
				Deviates:    []*schema.Deviate{{Kind: schema.DeviateNotSupported}},
			},
			{
				Target: "/tgt:servers",
				Deviates: []*schema.Deviate{{
					Kind:        schema.DeviateAdd,
					MaxElements: &unbounded,
				}},
			},
		},
	}

	out := render(t, mod)
	doc := parse(t, out)

	// a not-supported deviate carries no overrides at all
	notSupported := xmlquery.FindOne(doc, `//deviation[@target-node='/t:sessions']/deviate`)
	require.NotNil(t, notSupported)
	assert.Equal(t, "not-supported", notSupported.SelectAttr("value"))
	assert.Nil(t, notSupported.SelectElement("*"))

	// an explicitly set max of zero renders as unbounded
	assert.NotNil(t, xmlquery.FindOne(doc,
		`//deviation[@target-node='/t:servers']/deviate[@value='add']/max-elements[@value='unbounded']`))
}

func TestWriteDeviateOverrides(t *testing.T) {
	min, max := uint32(1), uint32(16)
	mod := &schema.Module{
		Name:      "dev2",
		Namespace: "urn:dev2",
		Prefix:    "d",
		Deviations: []*schema.Deviation{{
			Target: "/dev2:things/dev2:thing",
			Deviates: []*schema.Deviate{{
				Kind:        schema.DeviateReplace,
				Config:      schema.ConfigFalse,
				Mandatory:   schema.MandatoryTrue,
				Default:     "none",
				MinElements: &min,
				MaxElements: &max,
				Musts:       []*schema.Restriction{{Expr: "count(dev2:thing) > 0"}},
				Uniques:     []*schema.Unique{{Tags: []string{"name", "id"}}},
				Type:        &schema.Type{Kind: schema.TypeString},
				Units:       "things",
			}},
		}},
	}

	doc := parse(t, render(t, mod))
	deviate := xmlquery.FindOne(doc, `//deviate[@value='replace']`)
	require.NotNil(t, deviate)

	for _, q := range []string{
		`config[@value='false']`,
		`mandatory[@value='true']`,
		`default[@value='none']`,
		`min-elements[@value='1']`,
		`max-elements[@value='16']`,
		`must[@condition='count(d:thing) > 0']`,
		`unique[@tag='name id']`,
		`type[@name='string']`,
		`units[@name='things']`,
	} {
		assert.NotNil(t, xmlquery.FindOne(deviate, q), "missing %s", q)
	}
}

func TestWriteBodyOrder(t *testing.T) {
	mod := &schema.Module{Name: "m", Namespace: "urn:m", Prefix: "m"}

	bare := &schema.Feature{Name: "f1", Module: mod}
	documented := &schema.Feature{
		Name:   "f2",
		Module: mod,
		Meta:   schema.Meta{Description: "gated"},
	}
	mod.Features = []*schema.Feature{bare, documented}

	base := &schema.Identity{Name: "i1", Module: mod}
	derived := &schema.Identity{Name: "i2", Module: mod, Base: base}
	mod.Identities = []*schema.Identity{base, derived}

	mod.Typedefs = []*schema.Typedef{{
		Name:   "port",
		Module: mod,
		Type:   &schema.Type{Kind: schema.TypeUint16},
	}}
	mod.Deviations = []*schema.Deviation{{
		Target:   "/m:x",
		Deviates: []*schema.Deviate{{Kind: schema.DeviateNotSupported}},
	}}
	mod.Data = []*schema.Node{{
		Name: "x",
		Kind: schema.KindLeaf,
		Type: &schema.Type{Kind: schema.TypeString},
	}}
	mod.Augments = []*schema.Augment{{
		Target: "/m:x",
		Module: mod,
		Children: []*schema.Node{{
			Name:   "y",
			Kind:   schema.KindLeaf,
			Module: mod,
			Type:   &schema.Type{Kind: schema.TypeString},
		}},
	}}
	link(mod, nil, mod.Data...)

	out := render(t, mod)
	doc := parse(t, out)

	// body statement families print in grammar order after the header
	root := xmlquery.FindOne(doc, `/module`)
	require.NotNil(t, root)
	assert.Equal(t, []string{
		"namespace",
		"prefix",
		"feature",
		"feature",
		"identity",
		"identity",
		"typedef",
		"deviation",
		"leaf",
		"augment",
	}, elementNames(root))

	// a feature with no substatements self-closes
	assert.Contains(t, out, `<feature name="f1"/>`)
	assert.NotNil(t, xmlquery.FindOne(doc, `//feature[@name='f2']/description/text`))

	// a bare identity self-closes; a derived one carries its base
	assert.Contains(t, out, `<identity name="i1"/>`)
	assert.NotNil(t, xmlquery.FindOne(doc, `//identity[@name='i2']/base[@name='i1']`))

	assert.NotNil(t, xmlquery.FindOne(doc, `//typedef[@name='port']/type[@name='uint16']`))
	assert.NotNil(t, xmlquery.FindOne(doc, `//deviation[@target-node='/m:x']/deviate[@value='not-supported']`))
	assert.NotNil(t, xmlquery.FindOne(doc, `//augment[@target-node='/m:x']/leaf[@name='y']`))
}

type failWriter struct{ err error }

func (w *failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteSinkFailure(t *testing.T) {
	sinkErr := errors.New("sink full")
	mod := &schema.Module{Name: "m", Namespace: "urn:m", Prefix: "m"}
	err := Write(&failWriter{err: sinkErr}, mod)
	require.Error(t, err)
	assert.Equal(t, sinkErr, errors.Cause(err))
}

func TestWriteTranslationFailure(t *testing.T) {
	mod := &schema.Module{Name: "m", Namespace: "urn:m", Prefix: "m"}
	leaf := &schema.Node{
		Name: "x",
		Kind: schema.KindLeaf,
		When: &schema.When{Condition: "../other:thing = 'y'"},
		Type: &schema.Type{Kind: schema.TypeString},
	}
	mod.Data = []*schema.Node{leaf}
	link(mod, nil, mod.Data...)

	var buf bytes.Buffer
	err := Write(&buf, mod)
	require.Error(t, err)

	var terr *transform.Error
	require.True(t, stderrors.As(err, &terr))
	assert.Equal(t, "other", terr.Name)
	assert.Equal(t, "m", terr.Module)

	// failure aborts the element: no partial when statement appears
	assert.NotContains(t, buf.String(), "<when")
	assert.NotContains(t, buf.String(), "(!error!)")
}

func TestWriteCustomTranslator(t *testing.T) {
	mod := &schema.Module{Name: "m", Namespace: "urn:m", Prefix: "m"}
	leaf := &schema.Node{
		Name: "x",
		Kind: schema.KindLeaf,
		When: &schema.When{Condition: "canonical"},
		Type: &schema.Type{Kind: schema.TypeString},
	}
	mod.Data = []*schema.Node{leaf}
	link(mod, nil, mod.Data...)

	var buf bytes.Buffer
	p := NewPrinter(WithTranslator(verbatimTranslator{}))
	require.NoError(t, p.Print(&buf, mod))
	assert.Contains(t, buf.String(), `<when condition="canonical"/>`)
}

type verbatimTranslator struct{}

func (verbatimTranslator) SchemaExpr(m *schema.Module, expr string) (string, error) {
	return expr, nil
}

func (verbatimTranslator) XMLPath(m *schema.Module, path string) (string, error) {
	return path, nil
}
