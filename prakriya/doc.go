/*
Package prakriya implements the rule-ordered derivation engine: given a
dhātu, a prātipadika, or a compound's members plus a set of grammatical
arguments (lakāra, puruṣa, vacana, kṛt-pratyaya, ...), it produces every
valid derived word, together with the history of rule applications that
produced it.

A derivation is a sequence of terms (Term) threaded through a fixed
phase pipeline: dhātu-kārya, sanādi, pratyaya introduction,
pratyaya-specific it-saṃjñā, vikaraṇa, saṃjñā, aṅga operations, internal
sandhi, tripādī, and svara. Each phase is a plain function operating on
a *Prakriya and is called in strict sequence by the five public
operations (DeriveDhatus, DeriveSubantas, DeriveTinantas,
DeriveKrdantas, DeriveSamasas).

Some rules are optional (vikalpa): both taking and skipping them produce
an attested form. A single call to one of the Derive* functions
therefore does not run the pipeline once — it runs it once per distinct
combination of optional-rule choices, using a worklist (see engine.go)
that explores the choice tree lazily and without revisiting any prefix
already explored. Results are memoized in a small package-level cache
keyed by operation and argument signature (see cache.go).

Dhātu-level paradigm data is seeded only for the roots exercised by
this package's own tests; prakriya is the machinery of derivation,
not a hand-entered dhātupāṭha.
*/
package prakriya
