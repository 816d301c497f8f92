package turns

import "sort"

// Linkable is anything carrying a start offset and previous/next links of its
// own type. Sentence annotations and Turns both qualify.
type Linkable[T any] interface {
	StartOffset() int
	SetPrevious(T)
	SetNext(T)
}

// Dlink orders items by ascending start offset (stable for ties, so document
// order wins) and chains them with previous/next links. The first item's
// previous and the last item's next are zero-valued. Relinking the same
// collection yields the same links. The input slice is left untouched; the
// sorted order is returned.
func Dlink[T Linkable[T]](items []T) []T {
	ordered := make([]T, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartOffset() < ordered[j].StartOffset()
	})
	var none T
	for i, it := range ordered {
		if i == 0 {
			it.SetPrevious(none)
		} else {
			it.SetPrevious(ordered[i-1])
		}
		if i == len(ordered)-1 {
			it.SetNext(none)
		} else {
			it.SetNext(ordered[i+1])
		}
	}
	return ordered
}
