package prakriya

// runSvara would apply udātta/anudātta/svarita accent placement
// (phiṭsūtra-governed for nominal stems, the tiṅ-accent rules of
// 6.1/8.1 for finite verbs). Classical-register output, which is all
// every seeded derivation in this package produces, is not written
// with pitch-accent marks, so there is nothing for this phase to do;
// it is kept as an explicit pipeline stage (rather than omitted)
// because a Vedic-accented derivation would need to hook in here.
func runSvara(p *Prakriya) error {
	return nil
}
