/*
Package sandhi generates the phonetic-junction rewrite rules that fire at
pada boundaries, and inverts them: given a surface string and an index,
Splitter.SplitAt enumerates every pair of padas that could have produced
that string, via sandhi, by rejoining at that index.

A Rule is a (first, second, result) triple of SLP1 strings: when first
meets second at a pada boundary, sandhi rewrites them to result. SplitAt
runs this backwards — for each rule whose result occurs in the text
straddling the requested index, it reconstructs the (first, second) pair
that could have produced it, alongside the trivial identity split. Splits
are deduplicated and returned in a fixed, lexicographic order so that
callers (the cheda segmenter, in particular) get the same enumeration
on every run.
*/
package sandhi
