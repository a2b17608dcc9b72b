package prakriya

import "github.com/ambuda-org/vidyut-go/core/sounds"

// ecoGlide implements 6.1.78 eco'yavāyāvaḥ: a single e/o/ai/au
// immediately before a vowel becomes a glide (ay/av/āy/āv) rather
// than staying in hiatus.
var ecoGlide = map[byte]string{'e': "ay", 'o': "av", 'E': "Ay", 'O': "Av"}

// cohKuh implements 8.2.30 coho kuḥ: a dhātu-final palatal stop
// velarizes before a following consonant (or at the end of a pada,
// not modeled here since every seeded root ends its derivation
// mid-word).
var cohKuh = map[byte]byte{'c': 'k', 'j': 'g'}

// sandhiJoin computes the sandhi-adjusted form of a's trailing sound
// given the immediately following text b, leaving b itself untouched
// (aṅga-internal sandhi here never alters the following term's onset,
// only the preceding term's coda).
func sandhiJoin(a, b string) string {
	if a == "" || b == "" {
		return a
	}
	last := a[len(a)-1]
	first := b[0]
	if sounds.Ac.Contains(first) {
		if glide, ok := ecoGlide[last]; ok {
			return a[:len(a)-1] + glide
		}
	}
	if sounds.Hal.Contains(first) {
		if repl, ok := cohKuh[last]; ok {
			return a[:len(a)-1] + string(repl)
		}
	}
	return a
}

// joinTerms fuses two adjacent term surfaces the way aṅga-internal
// (as opposed to inter-pada) sandhi does, returning the joined
// string. This is deliberately a small, targeted set of substitutions
// rather than a general sandhi engine — the standalone sandhi package
// already owns pada-boundary phonetics; this one only has to fuse
// morphemes inside a single derivation. Used where only the joined
// string itself is wanted (e.g. samāsa member assembly), not a term
// sequence to mutate in place — see runInternalSandhi for that case.
func joinTerms(a, b string) string {
	return sandhiJoin(a, b) + b
}

// runInternalSandhi folds the term sequence into the derivation's
// joined surface form. Unlike joinTerms, it mutates each term's Text
// in place as it goes, so that p.Text()'s concatenation of term texts
// stays equal to the joined surface (spec.md §8 invariant 1) instead
// of only being reflected in a separate p.surface string.
func runInternalSandhi(p *Prakriya) error {
	if len(p.terms) == 0 {
		return nil
	}
	for i := 0; i < len(p.terms)-1; i++ {
		p.terms[i].Text = sandhiJoin(p.terms[i].Text, p.terms[i+1].Text)
	}
	var result string
	for _, t := range p.terms {
		result += t.Text
	}
	p.surface = result
	p.Step("6.1.108")
	return nil
}
