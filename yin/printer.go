package yin

import (
	"fmt"
	"io"

	"github.com/andaru/yang/schema"
	"github.com/andaru/yang/transform"
	"github.com/andaru/yang/xmlutil"
	"github.com/pkg/errors"
)

// Namespace is the YIN XML namespace URI (RFC6020 section 11).
const Namespace = "urn:ietf:params:xml:ns:yang:yin:1"

// Translator renders canonically stored expressions in a module's
// local prefix namespace. See package transform for the default
// implementation and the failure contract.
type Translator interface {
	// SchemaExpr translates a when/must condition or leafref path.
	SchemaExpr(m *schema.Module, expr string) (string, error)
	// XMLPath translates an augment, deviation or refine target path.
	XMLPath(m *schema.Module, path string) (string, error)
}

// Printer serializes schema modules to YIN documents.
type Printer struct {
	tr Translator
}

// Option is a Printer option function
type Option func(*Printer)

// WithTranslator sets the expression translator used for when/must
// conditions, leafref paths and statement target paths.
func WithTranslator(tr Translator) Option { return func(p *Printer) { p.tr = tr } }

// NewPrinter returns a Printer configured by opts.
func NewPrinter(opts ...Option) *Printer {
	p := &Printer{tr: defaultTranslator{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print serializes mod as a complete YIN document to w. The first
// write error aborts serialization and is returned; a translation
// failure aborts with a *transform.Error before any further output.
func (p *Printer) Print(w io.Writer, mod *schema.Module) error {
	pr := &printer{w: w, tr: p.tr}
	pr.module(mod)
	return pr.err
}

// Write serializes mod as a complete YIN document to w using the
// default translator.
func Write(w io.Writer, mod *schema.Module) error {
	return NewPrinter().Print(w, mod)
}

type defaultTranslator struct{}

func (defaultTranslator) SchemaExpr(m *schema.Module, expr string) (string, error) {
	return transform.SchemaExpr(m, expr)
}

func (defaultTranslator) XMLPath(m *schema.Module, path string) (string, error) {
	return transform.XMLPath(m, path)
}

// printer is the per-document serialization state: the sink, the
// translator and the first error raised, which short-circuits all
// later output.
type printer struct {
	w   io.Writer
	tr  Translator
	err error
}

func (p *printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = errors.Wrap(err, "writing YIN document")
	}
}

// open emits an element carrying a single attribute, self-closing
// when selfClose is set. Attribute values are emitted verbatim;
// callers escape any value not constrained to identifier characters.
func (p *printer) open(level int, name, attr, value string, selfClose bool) {
	p.printf("%*s<%s %s=\"%s\"%s>\n", level*2, "", name, attr, value, slash(selfClose))
}

func (p *printer) closeElem(level int, name string) {
	p.printf("%*s</%s>\n", level*2, "", name)
}

// text emits a text-bearing element of the form used by description,
// reference, organization and contact statements.
func (p *printer) text(level int, name, body string) {
	p.printf("%*s<%s>\n", level*2, "", name)
	p.printf("%*s<text>%s</text>\n", (level+1)*2, "", xmlutil.EscapeText(body))
	p.printf("%*s</%s>\n", level*2, "", name)
}

// unsigned emits a self-closing element with a non-negative integer
// attribute.
func (p *printer) unsigned(level int, name, attr string, value uint32) {
	p.printf("%*s<%s %s=\"%d\"/>\n", level*2, "", name, attr, value)
}

func slash(selfClose bool) string {
	if selfClose {
		return "/"
	}
	return ""
}
