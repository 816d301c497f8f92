package causation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hilt-lab/hiltnlp/gate"
)

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("because", "because"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.InDelta(t, 1.0-1.0/7.0, Similarity("becase", "because"), 1e-9)
	assert.Less(t, Similarity("banana", "because"), 0.5)
}

func TestIsCausalWord(t *testing.T) {
	vocab := DefaultWords
	assert.True(t, IsCausalWord("because", vocab, DefaultThreshold))
	assert.True(t, IsCausalWord("Because", vocab, DefaultThreshold))
	// one edit of slack
	assert.True(t, IsCausalWord("becase", vocab, DefaultThreshold))
	assert.False(t, IsCausalWord("banana", vocab, DefaultThreshold))
	assert.False(t, IsCausalWord("be", vocab, DefaultThreshold))
}

// Text: "because cats becase" with an exact and a misspelled causal token.
const causalXML = `<?xml version="1.0" encoding="UTF-8"?>
<GateDocument>
<TextWithNodes><Node id="0"/>because cats becase<Node id="19"/></TextWithNodes>
<AnnotationSet>
<Annotation Id="1" Type="Sentence" StartNode="0" EndNode="19"/>
<Annotation Id="2" Type="Token" StartNode="0" EndNode="7"/>
<Annotation Id="3" Type="Token" StartNode="8" EndNode="12"/>
<Annotation Id="4" Type="Token" StartNode="13" EndNode="19"/>
</AnnotationSet>
</GateDocument>`

func TestTag(t *testing.T) {
	doc, err := gate.Parse(strings.NewReader(causalXML))
	require.NoError(t, err)

	count, err := Tag(doc, DefaultWords, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	set := doc.AnnotationSet(SetName)
	require.NotNil(t, set)
	require.Len(t, set.Annotations(), 2)
	assert.Equal(t, "because", set.Annotations()[0].Text())
	assert.Equal(t, AnnotationType, set.Annotations()[0].Type())
	assert.Equal(t, "becase", set.Annotations()[1].Text())

	// the new set survives a round trip through the XML
	var buf bytes.Buffer
	_, err = doc.WriteTo(&buf)
	require.NoError(t, err)
	reloaded, err := gate.Parse(&buf)
	require.NoError(t, err)
	require.NotNil(t, reloaded.AnnotationSet(SetName))
	assert.Len(t, reloaded.AnnotationSet(SetName).Annotations(), 2)
}
