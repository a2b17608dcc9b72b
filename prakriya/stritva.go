package prakriya

import "github.com/ambuda-org/vidyut-go/prakriya/args"

// ajaAdi, svasrAdi, and bahuAdi are representative members of the
// gaṇas 4.1.4/4.1.5/4.1.10/4.1.45 key off of, trimmed from the much
// longer lists a complete strītva implementation enumerates (the
// aja-ādi gaṇa alone runs past sixty members) to the handful that
// exercise each branch of runStritva.
var ajaAdi = map[string]bool{
	"aja": true, "eqaka": true, "kokila": true, "cawaka": true, "aSva": true,
	"mUzika": true, "bAla": true, "vatsa": true, "jyezWa": true, "kanizWa": true,
	"maDyama": true,
}

var svasrAdi = map[string]bool{
	"svasf": true, "duhitf": true, "mAtf": true, "nanAndf": true, "yAtf": true,
}

var bahuAdi = map[string]bool{
	"bahu": true, "muni": true, "kapi": true, "ahi": true, "caRqa": true,
}

// appendStriPratyaya introduces a feminine-stem pratyaya immediately
// after the prātipadika, stripping its it-markers the same way every
// other introduced affix does.
func appendStriPratyaya(p *Prakriya, upadesha string) {
	t := &Term{Upadesha: upadesha, Text: stripIt(upadesha), Tags: newTagSet(TagPratyaya, TagStri)}
	p.AppendTerm(t)
}

// runStritva adds (or, for bahv-ādi stems, optionally adds) the
// strī-pratyaya a feminine prātipadika takes, per 4.1.4 (wāp after an
// a-final or aja-ādi stem), 4.1.5 (ṅīp after a stem ending in ṛ or n),
// and 4.1.45 (ṅīṣ, optionally, after a bahv-ādi stem). 4.1.10's
// svasr-ādi exception is recognized (no pratyaya is added) but the
// sat-augment it additionally requires is not modeled.
func runStritva(p *Prakriya) error {
	if p.request.subanta == nil || p.request.subanta.Linga != args.Stri {
		return nil
	}
	if len(p.terms) == 0 {
		return nil
	}
	last := p.terms[len(p.terms)-1]
	switch {
	case bahuAdi[last.Text]:
		rule := Rule{
			Code:     "4.1.45",
			Optional: true,
			Apply:    func(p *Prakriya) error { appendStriPratyaya(p, "NIz"); return nil },
		}
		_, err := rule.Try(p)
		return err
	case ajaAdi[last.Text] || (len(last.Text) > 0 && last.Text[len(last.Text)-1] == 'a'):
		appendStriPratyaya(p, "wAp")
		p.Step("4.1.4")
	case svasrAdi[last.Text]:
		p.Step("4.1.10")
	case len(last.Text) > 0 && (last.Text[len(last.Text)-1] == 'f' || last.Text[len(last.Text)-1] == 'n'):
		appendStriPratyaya(p, "NIp")
		p.Step("4.1.5")
	}
	return nil
}
