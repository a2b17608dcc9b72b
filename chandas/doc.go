// Package chandas classifies Sanskrit verses against a catalog of
// vṛtta (fixed syllable-weight) and jāti (fixed mora-count) metres.
//
// A verse is syllabified into (akṣara, weight) pairs via
// core/sounds.SplitAkshara, grouped into pādas, and compared pāda by
// pāda against each catalogued pattern: an "X" slot in the pattern
// matches either weight, "L"/"G" must match exactly. Classify reports
// how much of the verse matched a catalogued metre. Anuṣṭubh (śloka)
// additionally enforces the traditional pathyā slot constraints on
// syllables 5-7 of each pāda rather than a fixed weight sequence,
// since those three syllables are the only ones the tradition
// constrains.
package chandas
