package prakriya

import "github.com/ambuda-org/vidyut-go/core/sounds"

// gunaOf maps a dhātu's final vowel to its guṇa-grade substitute
// (7.3.84 sārvadhātukārdhadhātukayoḥ, narrowed to the vowels this
// package's seeded roots actually end in).
var gunaOf = map[byte]string{
	'i': "e", 'I': "e",
	'u': "o", 'U': "o",
	'f': "ar", 'F': "ar",
}

// dhatuIndex returns the position of the term tagged TagDhatu, or -1.
func dhatuIndex(p *Prakriya) int {
	for i, t := range p.terms {
		if t.HasTag(TagDhatu) {
			return i
		}
	}
	return -1
}

// runAngaOperations is the largest phase: it carries out every
// operation that rewrites the aṅga (the dhātu plus anything already
// attached to it) before the pratyaya is joined on. For this
// package's scope that is: liṭ reduplication (dvitva) with its
// optional weak-grade retention (7.2.62), and default guṇa
// substitution of a sārvadhātuka aṅga's final vowel before a
// vowel-initial vikaraṇa.
//
// A complete aṅga-operations phase additionally covers samprasāraṇa,
// num-augment insertion, vrddhi for Ṇic-causatives, and dozens of
// per-root exceptions; none of those are exercised by the seeded root
// table (dhatudata.go) and are left unimplemented rather than guessed
// at.
func runAngaOperations(p *Prakriya) error {
	idx := dhatuIndex(p)
	if idx < 0 {
		return nil
	}
	dhatu := p.terms[idx]

	if p.request.tinanta != nil && p.request.tinanta.Lakara == "Lit" {
		return applyLitReduplication(p, idx)
	}

	if p.HasTag(TagSarvadhatuka) && idx+1 < len(p.terms) {
		next := p.terms[idx+1]
		if len(dhatu.Text) > 0 && len(next.Text) > 0 && sounds.Ac.Contains(next.Text[0]) {
			last := dhatu.Text[len(dhatu.Text)-1]
			if guna, ok := gunaOf[last]; ok {
				dhatu.Text = dhatu.Text[:len(dhatu.Text)-1] + guna
				dhatu.AddTag(TagGuna)
				p.Step("7.3.84")
			}
		}
	}
	return nil
}

// applyLitReduplication carries out liṭ's mandatory dvitva (6.1.8
// liṭi dhātor anabhyāsasya) and then offers the dhātu's guṇa
// substitution as a vikalpa (7.2.62, narrowed here to vocalic-ṛ-final
// roots, the only shape this package's tanādi test root needs):
// taking it yields the strong grade (kf -> kar), declining it leaves
// the weak grade attested alongside it.
func applyLitReduplication(p *Prakriya, idx int) error {
	applyDvitva(p, idx)
	p.Step("6.1.8")
	dhatu := p.Term(idx + 1) // the dhatu shifted right by the inserted abhyasa
	rule := Rule{
		Code:     "7.2.62",
		Optional: true,
		Guard: func(p *Prakriya) bool {
			return len(dhatu.Text) > 0 && (dhatu.Text[len(dhatu.Text)-1] == 'f' || dhatu.Text[len(dhatu.Text)-1] == 'F')
		},
		Apply: func(p *Prakriya) error {
			last := dhatu.Text[len(dhatu.Text)-1]
			if guna, ok := gunaOf[last]; ok {
				dhatu.Text = dhatu.Text[:len(dhatu.Text)-1] + guna
				dhatu.AddTag(TagGuna)
			}
			return nil
		},
	}
	_, err := rule.Try(p)
	return err
}
