package turns

import "github.com/hilt-lab/hiltnlp/gate"

// Sentences returns the document's sentence annotations, doubly linked in
// document order.
func Sentences(doc *gate.Document) []*gate.Annotation {
	return Dlink(doc.AnnotationsOfType("sentence"))
}

// Segmentation is the result of a turn-extraction pass: the turns in document
// order plus a handle from each sentence back to its owning turn. The back
// reference lives outside the annotations, keyed by annotation id, so the
// sentence/turn cycle stays a lookup rather than an owning pointer.
type Segmentation struct {
	turns []*Turn
	owner map[int]*Turn
}

// Turns returns the document's turns in document order.
func (g *Segmentation) Turns() []*Turn { return g.turns }

func (g *Segmentation) Len() int { return len(g.turns) }

// TurnOf reports the Turn owning the sentence, or nil when the sentence was
// not part of the segmented collection.
func (g *Segmentation) TurnOf(sentence *gate.Annotation) *Turn {
	if sentence == nil {
		return nil
	}
	return g.owner[sentence.ID()]
}

// Extract runs the full segmentation pass over a sentence collection: link in
// document order, tag speakers, tag turn heads, group head-to-head runs into
// Turns, link the Turns, and record sentence ownership. The overwrite flag and
// the media extensions are forwarded to the tagging stages.
func Extract(sentences []*gate.Annotation, overwrite bool, extensions ...string) (*Segmentation, error) {
	ordered := Dlink(sentences)
	if err := TagSpeakers(ordered, overwrite, extensions...); err != nil {
		return nil, err
	}
	if err := TagTurnHeads(ordered, overwrite); err != nil {
		return nil, err
	}

	var list []*Turn
	var run []*gate.Annotation
	for _, s := range ordered {
		head, err := IsTurnHead(s)
		if err != nil {
			return nil, err
		}
		// the run before the very first head is empty and is not a turn
		if head && len(run) > 0 {
			t, err := NewTurn(run)
			if err != nil {
				return nil, err
			}
			list = append(list, t)
			run = run[:0]
		}
		run = append(run, s)
	}
	if len(run) > 0 {
		t, err := NewTurn(run)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}

	Dlink(list)

	seg := &Segmentation{turns: list, owner: make(map[int]*Turn, len(ordered))}
	for _, t := range list {
		for _, s := range t.Sentences() {
			seg.owner[s.ID()] = t
		}
	}
	return seg, nil
}
