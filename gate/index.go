package gate

import (
	"sort"
	"strings"
)

// Index answers interval-overlap queries over a fixed document. Build it once
// per document and query as often as needed; annotations added to the
// document afterwards are not visible to it.
type Index struct {
	byType map[string][]*Annotation // key lowercased, slices sorted by start offset
}

// NewIndex indexes every annotation of doc by type.
func NewIndex(doc *Document) *Index {
	ix := &Index{byType: map[string][]*Annotation{}}
	for _, a := range doc.Annotations() {
		key := strings.ToLower(a.Type())
		ix.byType[key] = append(ix.byType[key], a)
	}
	for _, anns := range ix.byType {
		anns := anns
		sort.SliceStable(anns, func(i, j int) bool {
			return anns[i].StartOffset() < anns[j].StartOffset()
		})
	}
	return ix
}

// Overlapping returns the annotations of the given type whose half-open
// interval [start,end) intersects the target's. Zero-length spans never
// intersect anything, themselves included. Result order is unspecified.
func (ix *Index) Overlapping(target *Annotation, typ string) []*Annotation {
	if target == nil || target.StartOffset() >= target.EndOffset() {
		return nil
	}
	anns := ix.byType[strings.ToLower(typ)]
	// only annotations starting before the target ends can intersect
	n := sort.Search(len(anns), func(i int) bool {
		return anns[i].StartOffset() >= target.EndOffset()
	})
	var out []*Annotation
	for _, a := range anns[:n] {
		if a.StartOffset() >= a.EndOffset() {
			continue
		}
		if a.EndOffset() > target.StartOffset() {
			out = append(out, a)
		}
	}
	return out
}

// Tokens returns the Token annotations overlapping the sentence.
func (ix *Index) Tokens(sentence *Annotation) []*Annotation {
	return ix.Overlapping(sentence, "Token")
}
