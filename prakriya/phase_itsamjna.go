package prakriya

import "github.com/ambuda-org/vidyut-go/core/sounds"

// initialIt is the set of sounds that, when they open a pratyaya's
// aupadeśika form, are themselves an it-marker (1.3.7 cuṭū for
// palatals and retroflexes; 1.3.8 laśakvataddite: la, śa, and the
// guttural/kavarga consonants are it when not before a taddhita).
// Among this package's seeded affixes the genuine initial it-markers
// are śa ("S", as in śap's "Sap"), ṭa ("w", as in ṭāp's "wAp") and ṅa
// ("N", as in ṅīp's "NIp" and ṅīṣ's "NIz"). "k"
// is deliberately absent: ktvā's leading "k" is a real letter of the
// affix, not an it-marker, even though it happens to fall in the
// kavarga set that 1.3.8 covers in general.
var initialIt = sounds.NewSet("SwN")

// stripIt removes the it-markers conventionally attached to an
// aupadeśika affix form: a marked initial sound (1.3.8) and a final
// consonant (1.3.3 halantyam). It is applied as soon as a term bearing
// such markers is introduced (see phase_pratyaya.go, phase_vikarana.go).
func stripIt(upadesha string) string {
	s := upadesha
	if len(s) > 0 && initialIt.Contains(s[0]) {
		s = s[1:]
	}
	if len(s) > 0 && sounds.Hal.Contains(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

// runItSamjna is a defensive pass over every pratyaya/vikarana/kṛt
// term: any one introduced without having its it-markers stripped
// already (stripIt is normally applied inline at introduction time)
// is cleaned up here, so the invariant "no term carries an
// unprocessed it-marker past this phase" always holds regardless of
// which phase introduced the term. Sup-pratyayas are excluded: their
// table in phase_supratyaya.go already encodes the post-stripping
// surface form directly, since their aupadeśika it-markers (sU's final
// u, jas's initial j) don't fit stripIt's narrow tiṅ/kṛt-shaped
// heuristic, which would also drop jas's genuine final s.
func runItSamjna(p *Prakriya) error {
	changed := false
	for _, t := range p.terms {
		if !t.HasTag(TagPratyaya) && !t.HasTag(TagVikarana) {
			continue
		}
		if t.HasTag(TagSup) {
			continue
		}
		if t.Text == t.Upadesha && t.Upadesha != "" {
			cleaned := stripIt(t.Text)
			if cleaned != t.Text {
				t.Text = cleaned
				changed = true
			}
		}
	}
	if changed {
		p.Step("1.3.9")
	}
	return nil
}
