// Package kosha implements the packed morphological lexicon: a sorted
// string-to-value store mapping an inflected surface form (an SLP1
// byte string) to one or more 32-bit packed morphological descriptors,
// plus the dhātu and prātipadika side registries a packed entry's id
// fields dereference into.
//
// Build phase: a Builder accepts (key, PadaEntry) pairs in strictly
// ascending key order, interns each entry's dhātu/prātipadika into its
// registry, and packs the result plus registry id into one uint32 per
// entry. Finish writes three files to a directory: padas.fst (the
// sorted key → packed-entry-list store), dhatus.registry, and
// pratipadikas.registry.
//
// Query phase: Open memory-reads those three files back. ContainsKey
// and GetAll are lookups against the store; Unpack dereferences a
// packed entry's registry id (when it has one) to reconstruct a full
// PadaEntry; Stream yields every (key, entry) pair in ascending key
// order.
//
// This package substitutes github.com/derekparker/trie for the
// fst crate the original Rust implementation is built on — no Go FST
// library appears anywhere in the retrieved example corpus, and
// derekparker/trie already ships in this module's dependency set. The
// substitution means padas.fst is not a literal finite-state
// transducer; it is this package's own length-prefixed binary
// serialization of a sorted key list plus a trie built back from it
// at load time. The on-disk *directory contract* (three named files,
// one packing-version header each) is preserved even though the
// internal byte layout of padas.fst is not standard FST.
package kosha
