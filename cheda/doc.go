// Package cheda implements the segmenter (chedaka): normalize input
// text, enumerate sandhi splits at each position whose first half is
// a kosha key, and run a Viterbi search over the resulting
// position-indexed lattice to emit the highest-probability sequence
// of tagged words.
//
// Pipeline: Normalize strips whitespace spans and separates remaining
// text/symbol spans with a single space, following
// vidyut-cheda/src/normalize_text.rs. Config resolves the base
// directory for the sandhi-rules CSV, the kosha directory, and the
// transitions/emissions/lemma-count model CSVs, following
// vidyut-cheda/src/config.rs. Chedaka ties a Kosha, a sandhi Splitter,
// and a Model together into Segment.
package cheda
