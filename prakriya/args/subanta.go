package args

import "github.com/ambuda-org/vidyut-go/core"

// SubantaArgs requests one declined form (a "subanta") of a bare
// prātipadika.
type SubantaArgs struct {
	Pratipadika string
	Linga       Linga
	Vibhakti    Vibhakti
	Vacana      Vacana
}

// SubantaArgsBuilder builds a SubantaArgs incrementally.
type SubantaArgsBuilder struct {
	a SubantaArgs
}

func NewSubantaArgs() *SubantaArgsBuilder { return &SubantaArgsBuilder{} }

func (b *SubantaArgsBuilder) Pratipadika(s string) *SubantaArgsBuilder {
	b.a.Pratipadika = s
	return b
}

func (b *SubantaArgsBuilder) Linga(l Linga) *SubantaArgsBuilder {
	b.a.Linga = l
	return b
}

func (b *SubantaArgsBuilder) Vibhakti(v Vibhakti) *SubantaArgsBuilder {
	b.a.Vibhakti = v
	return b
}

func (b *SubantaArgsBuilder) Vacana(v Vacana) *SubantaArgsBuilder {
	b.a.Vacana = v
	return b
}

func (b *SubantaArgsBuilder) Build() (SubantaArgs, error) {
	if b.a.Pratipadika == "" {
		return SubantaArgs{}, core.Error(core.EMISSINGFIELD, "args: SubantaArgs.Pratipadika is required")
	}
	if b.a.Linga == "" {
		return SubantaArgs{}, core.Error(core.EMISSINGFIELD, "args: SubantaArgs.Linga is required")
	}
	if b.a.Vibhakti == "" {
		return SubantaArgs{}, core.Error(core.EMISSINGFIELD, "args: SubantaArgs.Vibhakti is required")
	}
	if b.a.Vacana == "" {
		return SubantaArgs{}, core.Error(core.EMISSINGFIELD, "args: SubantaArgs.Vacana is required")
	}
	return b.a, nil
}
