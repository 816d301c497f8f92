package turns

import (
	"errors"
	"strings"

	"github.com/hilt-lab/hiltnlp/gate"
)

// Turn is a maximal run of consecutive same-speaker sentences. The speaker is
// fixed from the first sentence when the Turn is built and never recomputed,
// even if the sentence's feature changes later. Previous/next links are typed
// *Turn fields, so a turn can only ever link to another turn.
type Turn struct {
	speaker   string
	sentences []*gate.Annotation
	prev      *Turn
	next      *Turn
}

// NewTurn builds a Turn over a non-empty, speaker-tagged sentence run.
func NewTurn(sentences []*gate.Annotation) (*Turn, error) {
	if len(sentences) == 0 {
		return nil, errors.New("turn needs at least one sentence")
	}
	speaker, err := Speaker(sentences[0])
	if err != nil {
		return nil, err
	}
	return &Turn{
		speaker:   speaker,
		sentences: append([]*gate.Annotation(nil), sentences...),
	}, nil
}

func (t *Turn) Speaker() string { return t.speaker }

// Sentences returns the turn's sentence run in document order.
func (t *Turn) Sentences() []*gate.Annotation { return t.sentences }

func (t *Turn) Len() int { return len(t.sentences) }

func (t *Turn) Sentence(i int) *gate.Annotation { return t.sentences[i] }

func (t *Turn) SetSentence(i int, s *gate.Annotation) { t.sentences[i] = s }

func (t *Turn) Append(s *gate.Annotation) { t.sentences = append(t.sentences, s) }

// StartOffset and EndOffset are derived from the first and last sentence.
func (t *Turn) StartOffset() int { return t.sentences[0].StartOffset() }
func (t *Turn) EndOffset() int   { return t.sentences[len(t.sentences)-1].EndOffset() }

func (t *Turn) Previous() *Turn { return t.prev }
func (t *Turn) Next() *Turn     { return t.next }

func (t *Turn) SetPrevious(p *Turn) { t.prev = p }
func (t *Turn) SetNext(n *Turn)     { t.next = n }

// String joins the sentence texts with newlines.
func (t *Turn) String() string {
	texts := make([]string, 0, len(t.sentences))
	for _, s := range t.sentences {
		texts = append(texts, s.Text())
	}
	return strings.Join(texts, "\n")
}
