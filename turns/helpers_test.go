package turns

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hilt-lab/hiltnlp/gate"
)

// makeSentences lays texts out as consecutive sentence spans separated by a
// single character, ids starting at 1.
func makeSentences(texts ...string) []*gate.Annotation {
	out := make([]*gate.Annotation, 0, len(texts))
	offset := 0
	for i, text := range texts {
		end := offset + len([]rune(text))
		out = append(out, gate.NewAnnotation(i+1, "Sentence", offset, end, text))
		offset = end + 1
	}
	return out
}

// taggedSentences links and speaker-tags a transcript.
func taggedSentences(t *testing.T, texts ...string) []*gate.Annotation {
	t.Helper()
	sentences := Dlink(makeSentences(texts...))
	require.NoError(t, TagSpeakers(sentences, false))
	return sentences
}

func speakerOf(t *testing.T, s *gate.Annotation) string {
	t.Helper()
	v, err := Speaker(s)
	require.NoError(t, err)
	return v
}

func headOf(t *testing.T, s *gate.Annotation) bool {
	t.Helper()
	v, err := IsTurnHead(s)
	require.NoError(t, err)
	return v
}
