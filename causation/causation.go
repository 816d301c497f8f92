// Package causation tags causal connective words (like "because") in a GATE
// document, matching tokens fuzzily against a small vocabulary.
package causation

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/hilt-lab/hiltnlp/gate"
)

// SetName is the annotation set the tagger writes into.
const SetName = "causal_words"

// AnnotationType is the type of the annotations the tagger creates.
const AnnotationType = "causal_word"

// DefaultWords is the built-in causal vocabulary.
var DefaultWords = []string{"because"}

// DefaultThreshold admits roughly one edit of slack on a seven-letter word.
const DefaultThreshold = 0.85

// Similarity is 1 - editDistance/longerLength, in [0,1]; 1 for equal strings.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(longest)
}

// IsCausalWord reports whether word is close enough to any vocabulary entry.
// Comparison is case-insensitive.
func IsCausalWord(word string, vocab []string, threshold float64) bool {
	w := strings.ToLower(strings.TrimSpace(word))
	for _, c := range vocab {
		if Similarity(w, strings.ToLower(c)) > threshold {
			return true
		}
	}
	return false
}

// Tag scans the document's Token annotations and re-annotates causal words in
// the causal_words set. Returns the number of annotations created.
func Tag(doc *gate.Document, vocab []string, threshold float64) (int, error) {
	set := doc.CreateAnnotationSet(SetName)
	count := 0
	for _, tok := range doc.AnnotationsOfType("Token") {
		if !IsCausalWord(tok.Text(), vocab, threshold) {
			continue
		}
		if _, err := set.Create(AnnotationType, tok.StartOffset(), tok.EndOffset()); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
