package args

import "github.com/ambuda-org/vidyut-go/core"

// TinantaArgs requests one finite verb form: a dhātu plus the
// lakāra/prayoga/puruṣa/vacana combination that selects its personal
// ending.
type TinantaArgs struct {
	Dhatu   DhatuArgs
	Lakara  Lakara
	Prayoga Prayoga
	Purusha Purusha
	Vacana  Vacana
}

// TinantaArgsBuilder builds a TinantaArgs incrementally.
type TinantaArgsBuilder struct {
	a TinantaArgs
}

func NewTinantaArgs() *TinantaArgsBuilder { return &TinantaArgsBuilder{} }

func (b *TinantaArgsBuilder) Dhatu(d DhatuArgs) *TinantaArgsBuilder {
	b.a.Dhatu = d
	return b
}

func (b *TinantaArgsBuilder) Lakara(l Lakara) *TinantaArgsBuilder {
	b.a.Lakara = l
	return b
}

func (b *TinantaArgsBuilder) Prayoga(p Prayoga) *TinantaArgsBuilder {
	b.a.Prayoga = p
	return b
}

func (b *TinantaArgsBuilder) Purusha(p Purusha) *TinantaArgsBuilder {
	b.a.Purusha = p
	return b
}

func (b *TinantaArgsBuilder) Vacana(v Vacana) *TinantaArgsBuilder {
	b.a.Vacana = v
	return b
}

func (b *TinantaArgsBuilder) Build() (TinantaArgs, error) {
	if b.a.Dhatu.Upadesha == "" {
		return TinantaArgs{}, core.Error(core.EMISSINGFIELD, "args: TinantaArgs.Dhatu is required")
	}
	if b.a.Lakara == "" {
		return TinantaArgs{}, core.Error(core.EMISSINGFIELD, "args: TinantaArgs.Lakara is required")
	}
	if b.a.Prayoga == "" {
		b.a.Prayoga = Kartari
	}
	if b.a.Purusha == "" {
		return TinantaArgs{}, core.Error(core.EMISSINGFIELD, "args: TinantaArgs.Purusha is required")
	}
	if b.a.Vacana == "" {
		return TinantaArgs{}, core.Error(core.EMISSINGFIELD, "args: TinantaArgs.Vacana is required")
	}
	return b.a, nil
}
