package turns

// Record is the flat, serializable view of a Turn used by the CLI exporters.
type Record struct {
	Speaker     string   `json:"speaker" yaml:"speaker"`
	StartOffset int      `json:"start_offset" yaml:"start_offset"`
	EndOffset   int      `json:"end_offset" yaml:"end_offset"`
	Sentences   []string `json:"sentences" yaml:"sentences"`
}

// Records flattens turns into export records, in turn order.
func Records(ts []*Turn) []Record {
	out := make([]Record, 0, len(ts))
	for _, t := range ts {
		texts := make([]string, 0, t.Len())
		for _, s := range t.Sentences() {
			texts = append(texts, s.Text())
		}
		out = append(out, Record{
			Speaker:     t.Speaker(),
			StartOffset: t.StartOffset(),
			EndOffset:   t.EndOffset(),
			Sentences:   texts,
		})
	}
	return out
}
