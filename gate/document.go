// Package gate reads and writes GATE XML standoff documents: a text body plus
// annotation sets of typed spans carrying name/value features. It is the
// annotation-file collaborator of the turns package and owns no linguistics of
// its own.
package gate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

var (
	gateRootQuery      = xpath.MustCompile("/GateDocument")
	textWithNodesQuery = xpath.MustCompile("/GateDocument/TextWithNodes")
	annotationSetQuery = xpath.MustCompile("/GateDocument/AnnotationSet")
)

// Document is a parsed GATE XML document. Offsets are rune offsets into the
// document text, following GATE's node numbering.
type Document struct {
	path string
	text []rune
	sets []*AnnotationSet

	root *xmlquery.Node // XML document node
	gate *xmlquery.Node // GateDocument element
}

// AnnotationSet groups annotations under an optional name. The default
// (unnamed) set has an empty name.
type AnnotationSet struct {
	name        string
	doc         *Document
	annotations []*Annotation
	node        *xmlquery.Node // nil until first flush for sets created in memory
}

// Load parses the GATE XML file at path. The returned document remembers the
// path, so SaveChanges writes back to the same file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	doc.path = path
	return doc, nil
}

// Parse reads a GATE XML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	gateEl := xmlquery.QuerySelector(root, gateRootQuery)
	if gateEl == nil {
		return nil, errors.New("missing GateDocument element")
	}
	textEl := xmlquery.QuerySelector(root, textWithNodesQuery)
	if textEl == nil {
		return nil, errors.New("missing TextWithNodes element")
	}

	d := &Document{
		text: []rune(textEl.InnerText()),
		root: root,
		gate: gateEl,
	}
	for _, setEl := range xmlquery.QuerySelectorAll(root, annotationSetQuery) {
		set := &AnnotationSet{name: setEl.SelectAttr("Name"), doc: d, node: setEl}
		for _, annEl := range setEl.SelectElements("Annotation") {
			a, err := d.parseAnnotation(annEl)
			if err != nil {
				return nil, fmt.Errorf("annotation set %q: %w", set.name, err)
			}
			set.annotations = append(set.annotations, a)
		}
		d.sets = append(d.sets, set)
	}
	return d, nil
}

func (d *Document) parseAnnotation(el *xmlquery.Node) (*Annotation, error) {
	id, err := intAttr(el, "Id")
	if err != nil {
		return nil, err
	}
	start, err := intAttr(el, "StartNode")
	if err != nil {
		return nil, fmt.Errorf("annotation %d: %w", id, err)
	}
	end, err := intAttr(el, "EndNode")
	if err != nil {
		return nil, fmt.Errorf("annotation %d: %w", id, err)
	}
	if start < 0 || end < start || end > len(d.text) {
		return nil, fmt.Errorf("annotation %d: offsets [%d,%d) outside text of length %d",
			id, start, end, len(d.text))
	}

	a := &Annotation{
		id:       id,
		typ:      el.SelectAttr("Type"),
		start:    start,
		end:      end,
		text:     string(d.text[start:end]),
		features: map[string]string{},
		node:     el,
	}
	for _, f := range el.SelectElements("Feature") {
		nameEl := f.SelectElement("Name")
		if nameEl == nil {
			continue
		}
		var value string
		if valEl := f.SelectElement("Value"); valEl != nil {
			value = valEl.InnerText()
		}
		a.features[nameEl.InnerText()] = value
	}
	return a, nil
}

func intAttr(el *xmlquery.Node, name string) (int, error) {
	raw := el.SelectAttr(name)
	if raw == "" {
		return 0, fmt.Errorf("missing %s attribute", name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("bad %s attribute %q: %w", name, raw, err)
	}
	return n, nil
}

// Path returns the file the document was loaded from, if any.
func (d *Document) Path() string { return d.path }

// Text returns the full document text.
func (d *Document) Text() string { return string(d.text) }

// Annotations returns every annotation across all sets, in parse order.
func (d *Document) Annotations() []*Annotation {
	var out []*Annotation
	for _, set := range d.sets {
		out = append(out, set.annotations...)
	}
	return out
}

// AnnotationsOfType filters Annotations by type, ignoring case.
func (d *Document) AnnotationsOfType(typ string) []*Annotation {
	var out []*Annotation
	for _, a := range d.Annotations() {
		if strings.EqualFold(a.typ, typ) {
			out = append(out, a)
		}
	}
	return out
}

// AnnotationSet returns the named set, or nil when it does not exist.
func (d *Document) AnnotationSet(name string) *AnnotationSet {
	for _, set := range d.sets {
		if set.name == name {
			return set
		}
	}
	return nil
}

// CreateAnnotationSet returns the named set, creating it when missing. The
// new set reaches the XML on the next save.
func (d *Document) CreateAnnotationSet(name string) *AnnotationSet {
	if set := d.AnnotationSet(name); set != nil {
		return set
	}
	set := &AnnotationSet{name: name, doc: d}
	d.sets = append(d.sets, set)
	return set
}

func (d *Document) nextID() int {
	max := 0
	for _, a := range d.Annotations() {
		if a.id > max {
			max = a.id
		}
	}
	return max + 1
}

// Name returns the set's name; empty for the default set.
func (s *AnnotationSet) Name() string { return s.name }

// Annotations returns the set's annotations in creation order.
func (s *AnnotationSet) Annotations() []*Annotation { return s.annotations }

// Create adds a new annotation over [start,end) to the set, with a fresh id
// and text sliced from the document.
func (s *AnnotationSet) Create(typ string, start, end int) (*Annotation, error) {
	if start < 0 || end < start || end > len(s.doc.text) {
		return nil, fmt.Errorf("create %s: offsets [%d,%d) outside text of length %d",
			typ, start, end, len(s.doc.text))
	}
	a := &Annotation{
		id:       s.doc.nextID(),
		typ:      typ,
		start:    start,
		end:      end,
		text:     string(s.doc.text[start:end]),
		features: map[string]string{},
	}
	s.annotations = append(s.annotations, a)
	return a, nil
}

// SaveChanges writes feature updates and new annotations back to the file the
// document was loaded from.
func (d *Document) SaveChanges() error {
	if d.path == "" {
		return errors.New("document has no backing file")
	}
	return d.SaveAs(d.path)
}

// SaveAs writes the updated document to path.
func (d *Document) SaveAs(path string) error {
	d.flush()
	return os.WriteFile(path, []byte(d.serialize()), 0o644)
}

// WriteTo writes the updated document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	d.flush()
	n, err := io.WriteString(w, d.serialize())
	return int64(n), err
}

// serialize keeps whitespace-only text nodes; TextWithNodes offsets depend on
// every space between Node markers surviving the round trip.
func (d *Document) serialize() string {
	return d.root.OutputXMLWithOptions(xmlquery.WithPreserveSpace())
}

// flush folds pending feature updates and freshly created sets/annotations
// into the XML tree.
func (d *Document) flush() {
	for _, set := range d.sets {
		if set.node == nil {
			el := &xmlquery.Node{Type: xmlquery.ElementNode, Data: "AnnotationSet"}
			if set.name != "" {
				xmlquery.AddAttr(el, "Name", set.name)
			}
			xmlquery.AddChild(d.gate, el)
			set.node = el
		}
		for _, a := range set.annotations {
			if a.node == nil {
				el := &xmlquery.Node{Type: xmlquery.ElementNode, Data: "Annotation"}
				xmlquery.AddAttr(el, "Id", strconv.Itoa(a.id))
				xmlquery.AddAttr(el, "Type", a.typ)
				xmlquery.AddAttr(el, "StartNode", strconv.Itoa(a.start))
				xmlquery.AddAttr(el, "EndNode", strconv.Itoa(a.end))
				for _, name := range sortedKeys(a.features) {
					xmlquery.AddChild(el, featureNode(name, a.features[name]))
				}
				xmlquery.AddChild(set.node, el)
				a.node = el
				a.pending = nil
				continue
			}
			for _, name := range sortedKeys(a.pending) {
				upsertFeature(a.node, name, a.pending[name])
			}
			a.pending = nil
		}
	}
}

func featureNode(name, value string) *xmlquery.Node {
	feat := &xmlquery.Node{Type: xmlquery.ElementNode, Data: "Feature"}
	nameEl := &xmlquery.Node{Type: xmlquery.ElementNode, Data: "Name"}
	xmlquery.AddAttr(nameEl, "className", "java.lang.String")
	xmlquery.AddChild(nameEl, &xmlquery.Node{Type: xmlquery.TextNode, Data: name})
	valEl := &xmlquery.Node{Type: xmlquery.ElementNode, Data: "Value"}
	xmlquery.AddAttr(valEl, "className", "java.lang.String")
	xmlquery.AddChild(valEl, &xmlquery.Node{Type: xmlquery.TextNode, Data: value})
	xmlquery.AddChild(feat, nameEl)
	xmlquery.AddChild(feat, valEl)
	return feat
}

func upsertFeature(annEl *xmlquery.Node, name, value string) {
	for _, f := range annEl.SelectElements("Feature") {
		nameEl := f.SelectElement("Name")
		if nameEl == nil || nameEl.InnerText() != name {
			continue
		}
		valEl := f.SelectElement("Value")
		if valEl == nil {
			valEl = &xmlquery.Node{Type: xmlquery.ElementNode, Data: "Value"}
			xmlquery.AddAttr(valEl, "className", "java.lang.String")
			xmlquery.AddChild(f, valEl)
		}
		setText(valEl, value)
		return
	}
	xmlquery.AddChild(annEl, featureNode(name, value))
}

func setText(el *xmlquery.Node, s string) {
	el.FirstChild = nil
	el.LastChild = nil
	xmlquery.AddChild(el, &xmlquery.Node{Type: xmlquery.TextNode, Data: s})
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
