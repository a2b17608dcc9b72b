/*
Package vedic supplies sakha-specific Vedic accent notation as
extensions.TransliterationExtension implementations: Rigveda Śākala,
Taittirīya Yajurveda, Sāmaveda Kauthuma, and Atharvaveda Śaunaka. Each
sakha uses its own ASCII notation for its accents. Rigveda, Taittirīya and
Atharvaveda map udātta to U+0951 and anudātta to U+0952; Rigveda renders
svarita as the U+0952 U+0951 combination, Taittirīya as U+0953, and
Atharvaveda has no svarita mark. Sāmaveda renders its numeric notation as
the Devanagari digits १, २ and ३.
*/
package vedic

import "github.com/ambuda-org/vidyut-go/lipi"

// Accent names a Vedic pitch accent.
type Accent int

const (
	Udatta Accent = iota
	Anudatta
	Svarita
)

// AccentMark is one sakha-specific accent notation: from is the ASCII
// token as written in the source text, to is its Unicode rendering.
type AccentMark struct {
	From, To string
	Accent   Accent
}

// PhoneticMark is a sakha-specific non-accent notation, e.g. a Vedic
// vowel or a verse-separator danda variant.
type PhoneticMark struct {
	From, To string
}

// extend adds every accent and phonetic mark to m. Shared by all four
// sakha extensions so each one only has to supply its own mark tables.
func extend(m *lipi.Mapping, accents []AccentMark, phonetics []PhoneticMark) {
	for _, a := range accents {
		m.Add(a.From, a.To)
	}
	for _, p := range phonetics {
		m.Add(p.From, p.To)
	}
}
