package prakriya

// runDhatukarya is the first phase of every pipeline: it instantiates
// the dhātu term from whichever request field names one, stripping
// its upadeśa decoration down to the form later phases operate on.
func runDhatukarya(p *Prakriya) error {
	var upadesha, gana string
	switch {
	case p.request.dhatu != nil:
		upadesha, gana = p.request.dhatu.Upadesha, string(p.request.dhatu.Gana)
	case p.request.tinanta != nil:
		upadesha, gana = p.request.tinanta.Dhatu.Upadesha, string(p.request.tinanta.Dhatu.Gana)
	case p.request.krdanta != nil:
		upadesha, gana = p.request.krdanta.Dhatu.Upadesha, string(p.request.krdanta.Dhatu.Gana)
	default:
		return nil // subanta/samasa derivations have no dhatu-karya phase
	}
	dhatu := &Term{Upadesha: upadesha, Text: cleanUpadesha(upadesha), Gana: gana, Tags: newTagSet(TagDhatu, TagAnga)}
	p.AppendTerm(dhatu)
	p.Step("1.3.1")
	return nil
}
