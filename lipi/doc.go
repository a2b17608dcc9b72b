/*
Package lipi transliterates text between Sanskrit scripts and romanizations.

A Mapping is a (from, to) scheme pair precomputed into a longest-match
lookup table: scanning left to right, Transliterate consumes the longest
prefix of the remaining input that has an entry in the table and emits the
mapped output, repeating until the input is exhausted. Abugida targets
(Devanagari and kin) fold the "consonant cluster + vowel or inherent a"
decision into the table itself at construction time, rather than special-
casing it during the scan: every consonant is paired with every vowel sign
up front, plus a virama fallback for a consonant with no following vowel.

Lipika wraps a cache of built Mappings so that repeated transliteration
calls against the same scheme pair, a common pattern when processing many
lines of a single text, do not rebuild the table each time. Extensions
(see the extensions and extensions/vedic subpackages) hook into Mapping
construction and pre/post-process the surrounding text, letting a single
scheme pair support sakha-specific Vedic accent notations without the
core tables knowing about them.
*/
package lipi
