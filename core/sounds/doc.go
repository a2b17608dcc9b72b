/*
Package sounds implements constant-time membership tests over the SLP1
Sanskrit phonetic alphabet, plus the akṣara (syllable) splitter that
chandas uses to scan metre.

A Set is a fixed 128-entry bitmap, one bit per ASCII byte. The named sets
are package-level variables built once at package initialization and never
mutated afterwards: pure lookup tables, no teardown.
*/
package sounds
