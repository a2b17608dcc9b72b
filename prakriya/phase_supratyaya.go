package prakriya

import "github.com/ambuda-org/vidyut-go/prakriya/args"

// supKey indexes the sup-pratyaya (nominal case-ending) table.
type supKey struct {
	linga    args.Linga
	vibhakti args.Vibhakti
	vacana   args.Vacana
}

// supEndings seeds the masculine a-stem (prathamā, singular/dual/
// plural) sup-pratyaya cells exercised by this package's subanta
// test, stored as already-stripped surface endings (the aupadeśika
// forms "sU" and "jas" lose their it-markers, sU's final u and jas's
// initial j, and "O" has none; so these do not need a further stripIt
// pass the way "tip"-style tiṅ-pratyayas do). The full sup paradigm
// (8 vibhaktis x 3 vacanas x however many stem-final-sound-dependent
// variants) is out of scope; see dhatudata.go's rootTable for the
// parallel scoping decision on the dhātu side.
var supEndings = map[supKey]string{
	{args.Pum, args.VibhaktiPrathama, args.Eka}:  "s",
	{args.Pum, args.VibhaktiPrathama, args.Dvi}:  "O",
	{args.Pum, args.VibhaktiPrathama, args.Bahu}: "as",
}

// runSupPratyayaIntroduction introduces the declensional ending term
// for a subanta request.
func runSupPratyayaIntroduction(p *Prakriya) error {
	if p.request.subanta == nil {
		return nil
	}
	sa := p.request.subanta
	if sa.Vibhakti == "" && sa.Vacana == "" {
		return nil // a samasa synthesized this subanta for stritva alone, with no case ending requested
	}
	key := supKey{sa.Linga, sa.Vibhakti, sa.Vacana}
	ending, ok := supEndings[key]
	if !ok {
		return abort("no sup ending seeded for linga=%v vibhakti=%v vacana=%v", sa.Linga, sa.Vibhakti, sa.Vacana)
	}
	pratyaya := &Term{Upadesha: ending, Text: ending, Tags: newTagSet(TagPratyaya, TagSup)}
	p.AppendTerm(pratyaya)
	p.Step("4.1.2")
	return nil
}
