package prakriya

// runPratipadikaKarya instantiates the prātipadika term for a subanta
// request, the nominal counterpart of runDhatukarya.
func runPratipadikaKarya(p *Prakriya) error {
	if p.request.subanta == nil {
		return nil
	}
	stem := NewTerm(p.request.subanta.Pratipadika, TagAnga)
	p.AppendTerm(stem)
	p.Step("1.2.45")
	return nil
}
