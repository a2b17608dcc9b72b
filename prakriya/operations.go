package prakriya

import (
	"fmt"

	"github.com/ambuda-org/vidyut-go/prakriya/args"
)

// DeriveDhatus derives the surface form(s) of a bare dhātu, after any
// sanādi affix is applied. Most calls return exactly one Prakriya;
// more than one means an optional sanādi-related rule fired in two
// attested ways.
func DeriveDhatus(config Config, a args.DhatuArgs) ([]*Prakriya, error) {
	key := fmt.Sprintf("dhatu:%s:%s:%v", a.Upadesha, a.Gana, a.Sanadi)
	return cachedEnumerate(config, key, func(p *Prakriya) error {
		p.request.dhatu = &a
		return nil
	}, dhatuPhasesOnly())
}

// DeriveSubantas derives the declined form(s) of a prātipadika for one
// liṅga/vibhakti/vacana combination.
func DeriveSubantas(config Config, a args.SubantaArgs) ([]*Prakriya, error) {
	key := fmt.Sprintf("subanta:%s:%s:%s:%s", a.Pratipadika, a.Linga, a.Vibhakti, a.Vacana)
	return cachedEnumerate(config, key, func(p *Prakriya) error {
		p.request.subanta = &a
		return nil
	}, subantaPhases())
}

// DeriveTinantas derives the finite verb form(s) for one lakāra/
// prayoga/puruṣa/vacana combination of a dhātu. More than one result
// means an optional rule (e.g. 7.2.62's guṇa-or-not choice for liṭ)
// fired in more than one attested way.
func DeriveTinantas(config Config, a args.TinantaArgs) ([]*Prakriya, error) {
	key := fmt.Sprintf("tinanta:%s:%s:%s:%s:%s:%s:%v",
		a.Dhatu.Upadesha, a.Dhatu.Gana, a.Lakara, a.Prayoga, a.Purusha, a.Vacana, a.Dhatu.Sanadi)
	return cachedEnumerate(config, key, func(p *Prakriya) error {
		p.request.tinanta = &a
		return nil
	}, dhatuPhases())
}

// DeriveKrdantas derives the kṛt-nominal form(s) for one dhātu/kṛt
// combination.
func DeriveKrdantas(config Config, a args.KrdantaArgs) ([]*Prakriya, error) {
	key := fmt.Sprintf("krdanta:%s:%s:%s", a.Dhatu.Upadesha, a.Dhatu.Gana, a.Krt)
	return cachedEnumerate(config, key, func(p *Prakriya) error {
		p.request.krdanta = &a
		return nil
	}, krdantaPhases())
}

// DeriveSamasas derives the surface form(s) of one compound from its
// padas, samāsa type, and any requested strī/sup treatment of the
// finished stem.
func DeriveSamasas(config Config, a args.SamasaArgs) ([]*Prakriya, error) {
	key := fmt.Sprintf("samasa:%v:%s:%v:%v", a.Padas, a.Type, a.Stri, a.Sup)
	return cachedEnumerate(config, key, func(p *Prakriya) error {
		p.request.samasa = &a
		return nil
	}, samasaPhases())
}
