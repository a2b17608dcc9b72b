package prakriya

import "github.com/ambuda-org/vidyut-go/prakriya/args"

// sanadiSuffix gives the bare pratyaya text introduced for each sanādi
// affix, after its own it-markers are already removed. Full
// reduplication bookkeeping for San/Yan/YanLuk (desiderative/intensive,
// which both prefix an abhyāsa of their own before the dhātu) is
// handled by dvitva.go; this phase only introduces the suffix term
// itself. YanLuk (yaṅ-luk) reduplicates exactly like Yan but elides
// the "ya" affix entirely (luk), so it maps to the empty string rather
// than sharing Yan's "ya".
var sanadiSuffix = map[string]string{
	"Nic":    "i",
	"San":    "sa",
	"Yan":    "ya",
	"YanLuk": "",
	"Kyac":   "ya",
}

// runSanadi introduces an optional derivational affix (causative,
// desiderative, intensive, denominative) immediately after the dhātu,
// when the request names one.
func runSanadi(p *Prakriya) error {
	var sanadi string
	switch {
	case p.request.dhatu != nil && !p.request.dhatu.Sanadi.IsNone():
		sanadi = string(p.request.dhatu.Sanadi.Unwrap().(args.Sanadi))
	case p.request.tinanta != nil && !p.request.tinanta.Dhatu.Sanadi.IsNone():
		sanadi = string(p.request.tinanta.Dhatu.Sanadi.Unwrap().(args.Sanadi))
	case p.request.krdanta != nil && !p.request.krdanta.Dhatu.Sanadi.IsNone():
		sanadi = string(p.request.krdanta.Dhatu.Sanadi.Unwrap().(args.Sanadi))
	default:
		return nil
	}
	suffix, ok := sanadiSuffix[sanadi]
	if !ok {
		return abort("no sanadi suffix seeded for %v", sanadi)
	}
	if suffix != "" {
		term := NewTerm(suffix, TagPratyaya, TagAnga)
		p.AppendTerm(term)
	}
	if sanadi == "San" || sanadi == "Yan" || sanadi == "YanLuk" {
		applyDvitva(p, 0) // reduplicate the dhatu at index 0 for desiderative/intensive
	}
	p.Step("3.1.32")
	return nil
}
