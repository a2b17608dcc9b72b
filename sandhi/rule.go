package sandhi

// Kind classifies a Split by how confidently it should be trusted.
type Kind int

const (
	// Standard marks a split produced by an obligatory (nitya) sandhi
	// rule.
	Standard Kind = iota
	// Hiatus marks a split whose result leaves two vowels in hiatus
	// (svara-sandhi that Classical usage often leaves unresolved, e.g.
	// across a verse-quarter boundary).
	Hiatus
	// Optional marks a split produced by a vikalpa (optional) rule,
	// where the unsandhied form is also attested.
	Optional
)

func (k Kind) String() string {
	switch k {
	case Hiatus:
		return "Hiatus"
	case Optional:
		return "Optional"
	default:
		return "Standard"
	}
}

// Rule is one phonetic-junction rewrite: first meeting second at a pada
// boundary becomes result.
type Rule struct {
	First, Second, Result string
	Kind                   Kind
}

// vowelSandhiRules covers the common ac-sandhi outcomes: vrddhi/guna
// substitution, semivowel (yan) substitution for a vowel before a
// dissimilar vowel, and the lengthening/elision that results from like
// vowels meeting.
func vowelSandhiRules() []Rule {
	var rules []Rule
	add := func(first, second, result string, kind Kind) {
		rules = append(rules, Rule{first, second, result, kind})
	}

	// a/A + a/A -> A (savarna-dirgha and sabrdhi into the same vowel).
	for _, f := range []string{"a", "A"} {
		for _, s := range []string{"a", "A"} {
			add(f, s, "A", Standard)
		}
	}
	// i/I + i/I -> I; u/U + u/U -> U; f/F + f/F -> F.
	likeVowel := map[string][2]string{"i": {"i", "I"}, "u": {"u", "U"}, "f": {"f", "F"}}
	longOf := map[string]string{"i": "I", "u": "U", "f": "F"}
	for base, pair := range likeVowel {
		for _, f := range pair {
			for _, s := range pair {
				add(f, s, longOf[base], Standard)
			}
		}
	}
	// guna: a/A + i/I -> e; a/A + u/U -> o; a/A + f/F -> ar.
	for _, f := range []string{"a", "A"} {
		add(f, "i", "e", Standard)
		add(f, "I", "e", Standard)
		add(f, "u", "o", Standard)
		add(f, "U", "o", Standard)
		add(f, "f", "ar", Standard)
	}
	// vrddhi: a/A + e/E -> E; a/A + o/O -> O.
	for _, f := range []string{"a", "A"} {
		add(f, "e", "E", Standard)
		add(f, "E", "E", Standard)
		add(f, "o", "O", Standard)
		add(f, "O", "O", Standard)
	}
	// yan: i/I, u/U, f before a dissimilar vowel become y, v, r.
	yan := map[string]string{"i": "y", "I": "y", "u": "v", "U": "v", "f": "r"}
	likeOf := map[string]string{"i": "i", "I": "i", "u": "u", "U": "u", "f": "f"}
	for base, semi := range yan {
		for _, s := range []string{"a", "A", "i", "I", "u", "U", "e", "o"} {
			if likeOf[s] == likeOf[base] {
				continue // like vowels lengthen instead (see above)
			}
			add(base, s, semi+s, Standard)
		}
	}
	// e/o + a -> e '/o ' with elision of a (avagraha), offered as an
	// optional outcome alongside the vrddhi/guna readings above.
	add("e", "a", "e", Optional)
	add("o", "a", "o", Optional)
	// Vowel hiatus left unresolved across some boundaries.
	add("I", "a", "I", Hiatus)
	add("U", "a", "U", Hiatus)

	return rules
}

// consonantSandhiRules covers voicing assimilation at a pada boundary:
// an unvoiced final stop before a voiced initial becomes voiced (a voiced
// final before an unvoiced initial is not covered), and nasals assimilate
// in place of articulation.
func consonantSandhiRules() []Rule {
	var rules []Rule
	add := func(first, second, result string, kind Kind) {
		rules = append(rules, Rule{first, second, result, kind})
	}

	voicingPairs := map[string]string{"k": "g", "c": "j", "w": "q", "t": "d", "p": "b"}
	voicedInitials := []string{"a", "A", "i", "I", "u", "U", "g", "j", "q", "d", "b", "y", "v", "r", "l", "m", "n", "h"}
	for unvoiced, voiced := range voicingPairs {
		for _, s := range voicedInitials {
			add(unvoiced, s, voiced+s, Standard)
		}
	}
	// m before a consonant becomes the homorganic nasal or anusvara.
	nasalBefore := map[string]string{"k": "N", "K": "N", "g": "N", "G": "N", "N": "N",
		"c": "Y", "C": "Y", "j": "Y", "J": "Y", "Y": "Y",
		"w": "R", "W": "R", "q": "R", "Q": "R", "R": "R",
		"t": "n", "T": "n", "d": "n", "D": "n", "n": "n",
		"p": "M", "P": "M", "b": "M", "B": "M"}
	for c, nasal := range nasalBefore {
		add("m", c, nasal+c, Standard)
	}
	// n before c/C/j/J becomes the palatal nasal Y (anusvara-free form).
	for _, c := range []string{"c", "C", "j", "J"} {
		add("n", c, "Y"+c, Standard)
	}
	return rules
}

// visargaSandhiRules covers the fate of a final visarga before a
// following sound: retention, loss, or conversion to r/s/o depending on
// what follows.
func visargaSandhiRules() []Rule {
	var rules []Rule
	add := func(first, second, result string, kind Kind) {
		rules = append(rules, Rule{first, second, result, kind})
	}

	// H + voiced consonant/vowel -> r (when preceded by a, it instead
	// elides with the following a -> o, handled separately below).
	for _, s := range []string{"g", "G", "j", "J", "q", "Q", "d", "D", "b", "B", "y", "v", "r", "l", "h"} {
		add("H", s, "r"+s, Standard)
	}
	// aH + a -> o  (visarga + a elides, a-vowel becomes o).
	add("aH", "a", "o", Standard)
	// H before k/K/p/P is retained unchanged as visarga.
	for _, s := range []string{"k", "K", "p", "P"} {
		add("H", s, "H"+s, Standard)
	}
	// H + S/z/s assimilates to the following sibilant.
	add("H", "S", "SS", Optional)
	add("H", "z", "zz", Optional)
	add("H", "s", "ss", Optional)
	return rules
}

// GenerateRules returns the catalog of common phonetic-junction rewrite
// rules between two padas: vowel (ac) sandhi, consonant sandhi, and
// visarga sandhi. It favors high coverage of the regular cases over
// completeness for every morphophonemic exception.
func GenerateRules() []Rule {
	var rules []Rule
	rules = append(rules, vowelSandhiRules()...)
	rules = append(rules, consonantSandhiRules()...)
	rules = append(rules, visargaSandhiRules()...)
	return rules
}
