package prakriya

// runSamjna applies the saṃjñā ("aṅga") designation: every term before
// the final pratyaya is part of the aṅga the pratyaya attaches to
// (1.4.13 yasmāt pratyayavidhis tad ādi pratyaye 'ṅgam), and records
// whether this derivation's governing affix is sārvadhātuka or
// ārdhadhātuka, a distinction later phases consult when deciding
// whether guṇa is mandatory (7.3.84) or merely default.
func runSamjna(p *Prakriya) error {
	if len(p.terms) == 0 {
		return nil
	}
	for _, t := range p.terms[:len(p.terms)-1] {
		t.AddTag(TagAnga)
	}
	switch {
	case p.request.tinanta != nil:
		switch p.request.tinanta.Lakara {
		case "Lat", "Lan", "Lot", "VidhiLin", "Let":
			p.AddTag(TagSarvadhatuka)
		default:
			p.AddTag(TagArdhadhatuka)
		}
	case p.request.krdanta != nil:
		p.AddTag(TagArdhadhatuka)
	}
	p.Step("1.4.13")
	return nil
}
