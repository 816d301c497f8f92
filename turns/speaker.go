// Package turns segments speaker-annotated conversation transcripts into
// turns: it links sentence spans in document order, propagates speaker tags,
// classifies turn heads, and groups the runs into linked Turn values.
package turns

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hilt-lab/hiltnlp/gate"
)

const (
	// FeatureSpeaker is the sentence feature written by TagSpeakers.
	FeatureSpeaker = "Speaker"
	// FeatureTurnHead is the sentence feature written by TagTurnHeads.
	FeatureTurnHead = "Turn_head"
	// NoSpeaker marks a sentence with no identifiable speaker, such as a
	// media-file reference line. Distinct from any real speaker name.
	NoSpeaker = "None"
)

var (
	// ErrMissingFeature signals a pipeline-ordering violation: a stage read a
	// feature that an earlier stage should have written.
	ErrMissingFeature = errors.New("feature not set")
	// ErrNotSentence signals a collection element that is not a
	// sentence-typed annotation.
	ErrNotSentence = errors.New("not a sentence annotation")
)

// MediaExtensions are the default substrings that mark a sentence as a
// media-file reference rather than speech. Matching is case-insensitive.
// Callers with their own list pass it to TagSpeakers or Extract.
var MediaExtensions = []string{".mp3", ".mp4", ".aiff", ".raw", ".wav", ".flac"}

// Speaker reads the sentence's Speaker feature; ErrMissingFeature when
// TagSpeakers has not run over the sentence yet.
func Speaker(sentence *gate.Annotation) (string, error) {
	return featureValue(sentence, FeatureSpeaker)
}

func featureValue(a *gate.Annotation, name string) (string, error) {
	v, ok := a.Feature(name)
	if !ok {
		return "", fmt.Errorf("annotation %d, feature %q: %w", a.ID(), name, ErrMissingFeature)
	}
	return v, nil
}

// TagSpeakers assigns the Speaker feature to every sentence, in document
// order. A line naming a media file gets NoSpeaker and never disturbs the
// running tag; a line with a colon updates the running tag to the prefix
// before the first colon; every other line carries the running tag forward.
// The running tag starts at NoSpeaker. Media lines are recognized by the
// given extensions, MediaExtensions when none are given.
func TagSpeakers(sentences []*gate.Annotation, overwrite bool, extensions ...string) error {
	if len(extensions) == 0 {
		extensions = MediaExtensions
	}
	for i, s := range sentences {
		if s == nil {
			return fmt.Errorf("speaker tagging: element %d is nil: %w", i, ErrNotSentence)
		}
		if !strings.EqualFold(s.Type(), "sentence") {
			return fmt.Errorf("speaker tagging: annotation %d has type %q: %w",
				s.ID(), s.Type(), ErrNotSentence)
		}
	}

	speaker := NoSpeaker
	for _, s := range sortedByStart(sentences) {
		text := s.Text()
		if isMediaReference(text, extensions) {
			if err := s.AddFeature(FeatureSpeaker, NoSpeaker, overwrite); err != nil {
				return err
			}
			continue
		}
		if i := strings.Index(text, ":"); i >= 0 {
			speaker = text[:i]
		}
		if err := s.AddFeature(FeatureSpeaker, speaker, overwrite); err != nil {
			return err
		}
	}
	return nil
}

func isMediaReference(text string, extensions []string) bool {
	lower := strings.ToLower(text)
	for _, ext := range extensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

func sortedByStart(sentences []*gate.Annotation) []*gate.Annotation {
	ordered := make([]*gate.Annotation, len(sentences))
	copy(ordered, sentences)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartOffset() < ordered[j].StartOffset()
	})
	return ordered
}
