package gate

import (
	"errors"
	"fmt"

	"github.com/antchfx/xmlquery"
)

// ErrFeatureConflict is returned by AddFeature when a feature already holds a
// different value and overwrite was not requested.
var ErrFeatureConflict = errors.New("feature already set")

// Annotation is a typed text span inside a Document. Identity (id, type,
// offsets, text) is fixed once the annotation exists; only the feature map and
// the previous/next links change afterwards.
type Annotation struct {
	id    int
	typ   string
	start int
	end   int
	text  string

	features map[string]string
	pending  map[string]string

	prev *Annotation
	next *Annotation

	node *xmlquery.Node // backing XML element, nil until first flush for created annotations
}

// NewAnnotation builds a detached annotation. Useful for callers that work on
// spans without a backing document; detached annotations are never saved.
func NewAnnotation(id int, typ string, start, end int, text string) *Annotation {
	return &Annotation{
		id:       id,
		typ:      typ,
		start:    start,
		end:      end,
		text:     text,
		features: map[string]string{},
	}
}

func (a *Annotation) ID() int          { return a.id }
func (a *Annotation) Type() string     { return a.typ }
func (a *Annotation) StartOffset() int { return a.start }
func (a *Annotation) EndOffset() int   { return a.end }
func (a *Annotation) Text() string     { return a.text }

// Feature reads a named feature; ok is false when it has never been set.
func (a *Annotation) Feature(name string) (value string, ok bool) {
	value, ok = a.features[name]
	return value, ok
}

// Features returns a copy of the feature map.
func (a *Annotation) Features() map[string]string {
	out := make(map[string]string, len(a.features))
	for k, v := range a.features {
		out[k] = v
	}
	return out
}

// AddFeature sets a named feature. Re-setting the same value is a no-op;
// replacing a different value requires overwrite, otherwise the call fails
// with ErrFeatureConflict.
func (a *Annotation) AddFeature(name, value string, overwrite bool) error {
	if cur, ok := a.features[name]; ok && cur != value && !overwrite {
		return fmt.Errorf("annotation %d, feature %q: %w (have %q, new %q)",
			a.id, name, ErrFeatureConflict, cur, value)
	}
	a.features[name] = value
	if a.pending == nil {
		a.pending = map[string]string{}
	}
	a.pending[name] = value
	return nil
}

// Previous and Next are the document-order links set by the linker.
func (a *Annotation) Previous() *Annotation { return a.prev }
func (a *Annotation) Next() *Annotation     { return a.next }

func (a *Annotation) SetPrevious(p *Annotation) { a.prev = p }
func (a *Annotation) SetNext(n *Annotation)     { a.next = n }
