package prakriya

import "github.com/emirpasic/gods/sets/hashset"

// Term is one morpheme in a derivation: a dhātu, a vikaraṇa, an
// abhyāsa, a pratyaya, an upasarga, or a member of a compound. Text
// holds its current surface form, mutated in place as rules fire;
// Upadesha preserves the form the term was introduced under (including
// any it-markers, before dhātu-kārya/it-saṃjñā strip them), for rules
// that key off the original aupadeśika shape rather than the current
// one.
type Term struct {
	Upadesha string
	Text     string
	Tags     *hashset.Set
	Gana     string // only meaningful when Tags has TagDhatu
}

// NewTerm creates a term whose upadeśa and current text both start out
// equal to text.
func NewTerm(text string, tags ...Tag) *Term {
	return &Term{Upadesha: text, Text: text, Tags: newTagSet(tags...)}
}

// AddTag marks t with tag.
func (t *Term) AddTag(tag Tag) {
	t.Tags.Add(tag)
}

// HasTag reports whether t carries tag.
func (t *Term) HasTag(tag Tag) bool {
	return hasTag(t.Tags, tag)
}

// Clone makes an independent copy of t, safe to mutate without
// affecting the original. enumerate does not call it: each forked
// choice path reruns the pipeline from freshly built terms.
func (t *Term) Clone() *Term {
	tags := hashset.New()
	if t.Tags != nil {
		tags.Add(t.Tags.Values()...)
	}
	return &Term{Upadesha: t.Upadesha, Text: t.Text, Gana: t.Gana, Tags: tags}
}
