package turns

import (
	"strings"
	"unicode"

	"github.com/hilt-lab/hiltnlp/gate"
)

// Person is the grammatical person an explicit reference word points at.
type Person int

const (
	PersonNone Person = iota
	PersonFirst
	PersonSecond
	PersonThird
)

func (p Person) String() string {
	switch p {
	case PersonFirst:
		return "first"
	case PersonSecond:
		return "second"
	case PersonThird:
		return "third"
	default:
		return "none"
	}
}

var personWords = map[string]Person{
	"i": PersonFirst, "me": PersonFirst, "my": PersonFirst, "mine": PersonFirst,
	"myself": PersonFirst, "we": PersonFirst, "us": PersonFirst, "our": PersonFirst,
	"ours": PersonFirst, "ourselves": PersonFirst,

	"you": PersonSecond, "your": PersonSecond, "yours": PersonSecond,
	"yourself": PersonSecond, "yourselves": PersonSecond,

	"he": PersonThird, "him": PersonThird, "his": PersonThird, "himself": PersonThird,
	"she": PersonThird, "her": PersonThird, "hers": PersonThird, "herself": PersonThird,
	"it": PersonThird, "its": PersonThird, "itself": PersonThird,
	"they": PersonThird, "them": PersonThird, "their": PersonThird,
	"theirs": PersonThird, "themselves": PersonThird,
}

// PersonOf classifies a single word; unknown words map to PersonNone.
// Matching ignores case and surrounding punctuation.
func PersonOf(word string) Person {
	w := strings.TrimFunc(strings.ToLower(word), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	return personWords[w]
}

// ReferencedPersons reports which grammatical persons the sentence's tokens
// reference, in first-occurrence order.
func ReferencedPersons(ix *gate.Index, sentence *gate.Annotation) []Person {
	var out []Person
	seen := map[Person]bool{}
	for _, tok := range ix.Tokens(sentence) {
		p := PersonOf(tok.Text())
		if p == PersonNone || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
