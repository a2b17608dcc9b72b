package chandas

import (
	"regexp"

	"github.com/ambuda-org/vidyut-go/core/sounds"
)

// MatchType reports how much of a verse matched a catalogued metre.
type MatchType int

const (
	// None means no catalogued metre matched any part of the verse.
	None MatchType = iota
	// Prefix means the verse's pādas are a genuine, in-order prefix of
	// a metre that needs more pādas than the verse supplied.
	Prefix
	// Pada means exactly one pāda was given and it matches one pāda of
	// a metre, without enough context to confirm the whole verse.
	Pada
	// Full means every pāda of the verse matches the metre completely.
	Full
)

func (t MatchType) String() string {
	switch t {
	case Full:
		return "Full"
	case Pada:
		return "Pada"
	case Prefix:
		return "Prefix"
	default:
		return "None"
	}
}

// Result is the outcome of classifying a verse: the name of the
// best-matching catalogued metre (vṛtta, jāti, or "anustubh"), and how
// well it matched.
type Result struct {
	Name string
	Type MatchType
}

// padaBoundary splits on any run of characters that aren't SLP1
// Sanskrit sounds: whitespace, daṇḍa ("|", "||"), and any other
// punctuation a verse might be typeset with.
var padaBoundary = regexp.MustCompile(`[^a-zA-Z]+`)

// splitPadas breaks verse into its constituent pādas.
func splitPadas(verse string) []string {
	raw := padaBoundary.Split(verse, -1)
	var out []string
	for _, s := range raw {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func scanPadas(verse string) [][]sounds.Akshara {
	padaTexts := splitPadas(verse)
	scanned := make([][]sounds.Akshara, len(padaTexts))
	for i, pada := range padaTexts {
		scanned[i] = sounds.SplitAkshara(pada)
	}
	return scanned
}

// matchVrttaPada reports whether scanned (one pāda's weights) fully
// satisfies pattern (one pāda of a catalogued vṛtta).
func matchVrttaPada(scanned []sounds.Akshara, pattern []Weight) bool {
	if len(scanned) != len(pattern) {
		return false
	}
	for i, w := range pattern {
		if !w.matches(scanned[i].Weight) {
			return false
		}
	}
	return true
}

// classifyVrtta matches padas (the verse's scanned pādas) against v,
// returning v's match type against this verse alone.
func classifyVrtta(padas [][]sounds.Akshara, v Vrtta) MatchType {
	if len(padas) == 1 && len(v.Weights) > 1 {
		for _, pattern := range v.Weights {
			if matchVrttaPada(padas[0], pattern) {
				return Pada
			}
		}
		return None
	}
	if len(padas) > len(v.Weights) {
		return None
	}
	for i, pada := range padas {
		if !matchVrttaPada(pada, v.Weights[i]) {
			return None
		}
	}
	if len(padas) == len(v.Weights) {
		return Full
	}
	return Prefix
}

// classifyJati matches padas against j by mora count, the same
// Full/Pada/Prefix/None logic as classifyVrtta but comparing against
// each pāda's list of acceptable counts instead of an exact weight
// sequence.
func classifyJati(padas [][]sounds.Akshara, j Jati) MatchType {
	contains := func(counts []int, n int) bool {
		for _, c := range counts {
			if c == n {
				return true
			}
		}
		return false
	}
	if len(padas) == 1 && len(j.Matras) > 1 {
		for _, counts := range j.Matras {
			if contains(counts, totalMatras(padas[0])) {
				return Pada
			}
		}
		return None
	}
	if len(padas) > len(j.Matras) {
		return None
	}
	for i, pada := range padas {
		if !contains(j.Matras[i], totalMatras(pada)) {
			return None
		}
	}
	if len(padas) == len(j.Matras) {
		return Full
	}
	return Prefix
}

// anustubhPadaOK checks the traditional pathyā slot constraints on
// one anuṣṭubh pāda: syllable 5 laghu, syllable 6 guru, and syllable 7
// guru in an odd pāda (1st/3rd) or laghu in an even pāda (2nd/4th).
// oddPada is only meaningful when the caller knows the pāda's
// position in the verse; a lone pāda is checked against both parities.
func anustubhPadaOK(pada []sounds.Akshara, oddPada bool) bool {
	if len(pada) != 8 {
		return false
	}
	if pada[4].Weight != sounds.L {
		return false
	}
	if pada[5].Weight != sounds.G {
		return false
	}
	want := sounds.L
	if oddPada {
		want = sounds.G
	}
	return pada[6].Weight == want
}

func classifyAnustubh(padas [][]sounds.Akshara) MatchType {
	if len(padas) == 1 {
		if anustubhPadaOK(padas[0], true) || anustubhPadaOK(padas[0], false) {
			return Pada
		}
		return None
	}
	if len(padas) > 4 {
		return None
	}
	for i, pada := range padas {
		if !anustubhPadaOK(pada, i%2 == 0) {
			return None
		}
	}
	if len(padas) == 4 {
		return Full
	}
	return Prefix
}

// rank orders match types so the best result found across a whole
// catalog can be kept as matches are compared one metre at a time.
func rank(t MatchType) int { return int(t) }
