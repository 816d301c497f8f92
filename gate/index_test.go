package gate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Text: "I saw you today" with token and sentence spans, plus a zero-length
// marker at offset 6.
const indexXML = `<?xml version="1.0" encoding="UTF-8"?>
<GateDocument>
<TextWithNodes><Node id="0"/>I saw you today<Node id="15"/></TextWithNodes>
<AnnotationSet>
<Annotation Id="1" Type="Sentence" StartNode="0" EndNode="15"/>
<Annotation Id="2" Type="Token" StartNode="0" EndNode="1"/>
<Annotation Id="3" Type="Token" StartNode="2" EndNode="5"/>
<Annotation Id="4" Type="Token" StartNode="6" EndNode="9"/>
<Annotation Id="5" Type="Token" StartNode="10" EndNode="15"/>
<Annotation Id="6" Type="Marker" StartNode="6" EndNode="6"/>
<Annotation Id="7" Type="Space" StartNode="5" EndNode="6"/>
</AnnotationSet>
</GateDocument>`

func parseIndexDoc(t *testing.T) (*Document, *Index) {
	t.Helper()
	doc, err := Parse(strings.NewReader(indexXML))
	require.NoError(t, err)
	return doc, NewIndex(doc)
}

func annotationByID(t *testing.T, doc *Document, id int) *Annotation {
	t.Helper()
	for _, a := range doc.Annotations() {
		if a.ID() == id {
			return a
		}
	}
	t.Fatalf("annotation %d not found", id)
	return nil
}

func TestTokensOfSentence(t *testing.T) {
	doc, ix := parseIndexDoc(t)
	sentence := annotationByID(t, doc, 1)

	tokens := ix.Tokens(sentence)
	require.Len(t, tokens, 4)
	texts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		texts = append(texts, tok.Text())
	}
	assert.ElementsMatch(t, []string{"I", "saw", "you", "today"}, texts)
}

func TestOverlapIsHalfOpen(t *testing.T) {
	doc, ix := parseIndexDoc(t)
	saw := annotationByID(t, doc, 3)   // [2,5)
	you := annotationByID(t, doc, 4)   // [6,9)
	space := annotationByID(t, doc, 7) // [5,6)

	// spans sharing only a boundary do not overlap
	assert.Empty(t, ix.Overlapping(saw, "Space"))
	assert.Empty(t, ix.Overlapping(you, "Space"))
	assert.Empty(t, filterID(ix.Overlapping(space, "Token"), 3))

	// a span overlaps itself
	assert.Len(t, filterID(ix.Overlapping(saw, "Token"), 3), 1)
}

func TestOverlapSymmetry(t *testing.T) {
	doc, ix := parseIndexDoc(t)
	anns := doc.Annotations()
	for _, a := range anns {
		for _, b := range anns {
			ab := len(filterID(ix.Overlapping(a, b.Type()), b.ID())) > 0
			ba := len(filterID(ix.Overlapping(b, a.Type()), a.ID())) > 0
			assert.Equal(t, ab, ba, "overlap(%d,%d) not symmetric", a.ID(), b.ID())
		}
	}
}

func TestZeroLengthNeverOverlaps(t *testing.T) {
	doc, ix := parseIndexDoc(t)
	marker := annotationByID(t, doc, 6)
	sentence := annotationByID(t, doc, 1)

	assert.Nil(t, ix.Overlapping(marker, "Token"))
	assert.Nil(t, ix.Overlapping(marker, "Marker"))
	assert.Empty(t, filterID(ix.Overlapping(sentence, "Marker"), 6))
}

func TestRepeatedQueries(t *testing.T) {
	doc, ix := parseIndexDoc(t)
	sentence := annotationByID(t, doc, 1)

	first := ix.Tokens(sentence)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ix.Tokens(sentence))
	}
}

func TestOverlappingNilTarget(t *testing.T) {
	_, ix := parseIndexDoc(t)
	assert.Nil(t, ix.Overlapping(nil, "Token"))
}

func filterID(anns []*Annotation, id int) []*Annotation {
	var out []*Annotation
	for _, a := range anns {
		if a.ID() == id {
			out = append(out, a)
		}
	}
	return out
}
