package turns

import "github.com/hilt-lab/hiltnlp/gate"

// TagTurnHeads assigns the Turn_head feature ("True"/"False") to every
// sentence. Sentences must already be speaker-tagged and linked; reading an
// untagged sentence fails with ErrMissingFeature.
func TagTurnHeads(sentences []*gate.Annotation, overwrite bool) error {
	for _, s := range sortedByStart(sentences) {
		head, err := classifyHead(s)
		if err != nil {
			return err
		}
		if err := s.AddFeature(FeatureTurnHead, head, overwrite); err != nil {
			return err
		}
	}
	return nil
}

// classifyHead decides whether a sentence opens a new turn from a window of
// at most two sentences back. First match wins:
//
//	no speaker               -> False
//	first or second sentence -> True
//	same speaker as previous -> False
//	previous has no speaker  -> False when the speaker two back matches,
//	                            True otherwise
//	different speaker        -> True
func classifyHead(s *gate.Annotation) (string, error) {
	speaker, err := Speaker(s)
	if err != nil {
		return "", err
	}
	if speaker == NoSpeaker {
		return "False", nil
	}
	prev := s.Previous()
	if prev == nil {
		return "True", nil
	}
	if prev.Previous() == nil {
		return "True", nil
	}

	prevSpeaker, err := Speaker(prev)
	if err != nil {
		return "", err
	}
	if prevSpeaker == speaker {
		return "False", nil
	}
	if prevSpeaker == NoSpeaker {
		// A lone non-speech line does not break the surrounding turn. The
		// window is exactly two sentences; longer no-speaker gaps always
		// open a new turn.
		before, err := Speaker(prev.Previous())
		if err != nil {
			return "", err
		}
		if before == speaker {
			return "False", nil
		}
		return "True", nil
	}
	return "True", nil
}

// IsTurnHead reads the Turn_head feature; ErrMissingFeature when
// TagTurnHeads has not run over the sentence yet.
func IsTurnHead(sentence *gate.Annotation) (bool, error) {
	v, err := featureValue(sentence, FeatureTurnHead)
	if err != nil {
		return false, err
	}
	return v == "True", nil
}
