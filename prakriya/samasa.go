package prakriya

import "github.com/ambuda-org/vidyut-go/prakriya/args"

// joinPadas folds a compound's members into a single stem using the
// same internal-sandhi joining runInternalSandhi applies to a dhātu
// and its pratyayas; a samāsa's members combine the same way a
// dhātu/pratyaya sequence does.
func joinPadas(padas []string) string {
	if len(padas) == 0 {
		return ""
	}
	out := padas[0]
	for _, next := range padas[1:] {
		out = joinTerms(out, next)
	}
	return out
}

// runSamasaKarya builds the compound's members into the term
// sequence. Every traditional samāsa type (avyayībhāva, tatpuruṣa,
// karmadhāraya, dvigu, bahuvrīhi, dvandva) folds its padas into one
// stem the same way; what distinguishes them — which member, if any,
// governs the resulting gender and whether the compound denotes its
// own referent (bahuvrīhi) or one of its members' — is a semantic
// distinction this package leaves to the caller's choice of Sup/Stri
// rather than inferring from SamasaType.
func runSamasaKarya(p *Prakriya) error {
	sa := p.request.samasa
	if sa == nil {
		return nil
	}
	for i, pada := range sa.Padas {
		tags := []Tag{TagSamasa}
		if i < len(sa.Padas)-1 {
			tags = append(tags, TagAnga)
		}
		p.AppendTerm(NewTerm(pada, tags...))
	}
	p.AddTag(TagSamasa)
	p.Step("2.1.3")

	if !sa.Stri && sa.Sup.IsNone() {
		return nil
	}
	stem := joinPadas(sa.Padas)
	subanta := &args.SubantaArgs{Pratipadika: stem}
	if sa.Stri {
		subanta.Linga = args.Stri
	}
	if !sa.Sup.IsNone() {
		spec := sa.Sup.Unwrap().(args.SupSpec)
		subanta.Linga = spec.Linga
		subanta.Vibhakti = spec.Vibhakti
		subanta.Vacana = spec.Vacana
	}
	p.request.subanta = subanta
	return nil
}

// samasaPhases covers DeriveSamasas: member assembly, an optional
// strī-pratyaya and sup-pratyaya for the finished compound (reusing
// the subanta pipeline's own phases against the synthetic subanta
// request runSamasaKarya builds), saṃjñā, internal sandhi, tripādī.
func samasaPhases() []Phase {
	return []Phase{
		runSamasaKarya,
		runStritva,
		runSupPratyayaIntroduction,
		runItSamjna,
		runSamjna,
		runInternalSandhi,
		runTripadi,
		runSvara,
	}
}
