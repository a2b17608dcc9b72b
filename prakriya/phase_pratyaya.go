package prakriya

import "github.com/ambuda-org/vidyut-go/prakriya/args"

// tinEnding is the aupadeśika form (it-markers still attached) of one
// tiṅ-pratyaya cell, keyed by lakāra+prayoga+puruṣa+vacana. Coverage
// is intentionally narrow: it is seeded only for the cells this
// package's own tests exercise, not the full tiṅ paradigm (11 lakāras
// x 2 prayoga-relevant pada sets x 3 puruṣa x 3 vacana).
type tinKey struct {
	lakara  args.Lakara
	prayoga args.Prayoga
	purusha args.Purusha
	vacana  args.Vacana
}

var tinEndings = map[tinKey]string{
	{args.Lat, args.Kartari, args.Prathama, args.Eka}: "tip",
	{args.Lit, args.Kartari, args.Madhyama, args.Eka}: "Tal",
}

// runPratyayaIntroduction introduces the tiṅ-pratyaya term for a
// tinanta request, looked up from the lakāra/prayoga/puruṣa/vacana
// combination. The personal ending's it-markers are stripped
// immediately (1.3.9), the same way the vikaraṇa's are in
// phase_vikarana.go.
func runPratyayaIntroduction(p *Prakriya) error {
	if p.request.tinanta == nil {
		return nil // subanta/krdanta/samasa derivations take a different path
	}
	ta := p.request.tinanta
	key := tinKey{ta.Lakara, ta.Prayoga, ta.Purusha, ta.Vacana}
	upadesha, ok := tinEndings[key]
	if !ok {
		return abort("no tiN ending seeded for lakara=%v prayoga=%v purusha=%v vacana=%v",
			ta.Lakara, ta.Prayoga, ta.Purusha, ta.Vacana)
	}
	p.AddTag(TagTin)
	if ta.Prayoga == args.Kartari {
		p.AddTag(TagKartari)
	}
	pratyaya := &Term{Upadesha: upadesha, Text: stripIt(upadesha), Tags: newTagSet(TagPratyaya, TagTin)}
	p.AppendTerm(pratyaya)
	p.Step("3.4.78")
	return nil
}

// runKrtPratyayaIntroduction introduces the kṛt-pratyaya term for a
// krdanta request.
func runKrtPratyayaIntroduction(p *Prakriya) error {
	if p.request.krdanta == nil {
		return nil
	}
	upadesha, ok := krtUpadesha[p.request.krdanta.Krt]
	if !ok {
		return abort("no krt-pratyaya seeded for %v", p.request.krdanta.Krt)
	}
	pratyaya := &Term{Upadesha: upadesha, Text: stripIt(upadesha), Tags: newTagSet(TagPratyaya, TagKrt)}
	p.AppendTerm(pratyaya)
	p.AddTag(TagArdhadhatuka)
	p.Step("3.1.91")
	return nil
}

// krtUpadesha gives the aupadeśika form of each seeded kṛt-pratyaya.
var krtUpadesha = map[args.Krt]string{
	args.Ktva: "ktvA",
}
