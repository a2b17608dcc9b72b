package prakriya

// vikaranaFor returns the aupadeśika vikaraṇa for a gaṇa and whether
// that gaṇa is seeded at all. The full vikaraṇa table has ten distinct
// entries (one per gaṇa); only bhvādi (śap) and tanādi (u) are seeded
// here, since those are the only gaṇas this package models a paradigm
// root for. Any other gaṇa is reported as unseeded rather than
// defaulted to śap, so the caller can abort the path instead of
// producing a verb form with the wrong vikaraṇa.
func vikaranaFor(gana string) (string, bool) {
	switch gana {
	case "Bhvadi":
		return "Sap", true
	case "Tanadi":
		return "u", true
	default:
		return "", false
	}
}

// runVikarana inserts the vikaraṇa term between the dhātu (and any
// sanādi suffix) and the tiṅ-pratyaya, for sārvadhātuka lakāras only.
func runVikarana(p *Prakriya) error {
	if p.request.tinanta == nil {
		return nil // krdanta/subanta/samasa derivations never take a vikarana
	}
	ta := p.request.tinanta
	switch ta.Lakara {
	case "Lat", "Lan", "Lot", "VidhiLin", "Let":
	default:
		return nil // ārdhadhātuka lakāras (liT included) take no vikarana; see runAngaOperations' dvitva handling
	}
	dhatuIdx := -1
	for i, t := range p.terms {
		if t.HasTag(TagDhatu) {
			dhatuIdx = i
		}
	}
	if dhatuIdx < 0 {
		return nil
	}
	upadesha, ok := vikaranaFor(string(ta.Dhatu.Gana))
	if !ok {
		return abort("no vikarana seeded for gana=%v", ta.Dhatu.Gana)
	}
	vik := &Term{Upadesha: upadesha, Text: stripIt(upadesha), Tags: newTagSet(TagVikarana, TagAnga)}
	p.InsertTerm(dhatuIdx+1, vik)
	p.Step("3.1.68")
	return nil
}
