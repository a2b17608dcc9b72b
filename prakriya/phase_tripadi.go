package prakriya

// tripadiVisarga implements the narrow slice of 8.2.66 sasajuṣo ruḥ +
// 8.3.15 kharavasānayor visarjanīyaḥ this package needs: a
// word-final r (itself already the ru-substitute of a final s)
// becomes visarga at the end of an utterance.
func tripadiVisarga(s string) string {
	if s == "" {
		return s
	}
	if s[len(s)-1] == 'r' {
		return s[:len(s)-1] + "H"
	}
	return s
}

// runTripadi applies the tripādī (8.2-8.4), the final three pādas of
// the Aṣṭādhyāyī, which mostly govern pada-final visarga/nasalization
// and retroflexion across a cluster. Only the single visarga
// substitution this package's derivations can actually reach is
// implemented; the remaining tripādī rules (8.3's ṣatva, 8.4's ṇatva
// and jaśtva) have no seeded root/pratyaya combination that would
// exercise them and are left unimplemented.
func runTripadi(p *Prakriya) error {
	before := p.surface
	p.surface = tripadiVisarga(p.surface)
	if p.surface != before {
		// Keep the final term's text in step with the surface, so the
		// concatenated term texts still equal p.Text().
		for i := len(p.terms) - 1; i >= 0; i-- {
			if p.terms[i].Text != "" {
				p.terms[i].Text = tripadiVisarga(p.terms[i].Text)
				break
			}
		}
		p.Step("8.3.15")
	}
	return nil
}
