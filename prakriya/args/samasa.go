package args

import (
	"github.com/ambuda-org/vidyut-go/core"
	"github.com/ambuda-org/vidyut-go/core/option"
)

// SupSpec is the liṅga/vibhakti/vacana triple a finished compound
// takes its own declension from, when the caller wants the compound
// derived as a full subanta rather than left as a bare prātipadika.
type SupSpec struct {
	Linga    Linga
	Vibhakti Vibhakti
	Vacana   Vacana
}

// SamasaArgs requests one compound, built from two or more
// prātipadika members in left-to-right order plus the traditional
// classification that determines which member governs accent and
// case agreement.
type SamasaArgs struct {
	Padas []string
	Type  SamasaType
	Sup   option.RefT
	Stri  bool
}

// SamasaArgsBuilder builds a SamasaArgs incrementally.
type SamasaArgsBuilder struct {
	a SamasaArgs
}

func NewSamasaArgs() *SamasaArgsBuilder { return &SamasaArgsBuilder{a: SamasaArgs{Sup: option.Nothing()}} }

func (b *SamasaArgsBuilder) Padas(padas ...string) *SamasaArgsBuilder {
	b.a.Padas = padas
	return b
}

func (b *SamasaArgsBuilder) Type(t SamasaType) *SamasaArgsBuilder {
	b.a.Type = t
	return b
}

// WithSup requests that the finished compound take its own
// sup-pratyaya, as though it were a single prātipadika.
func (b *SamasaArgsBuilder) WithSup(spec SupSpec) *SamasaArgsBuilder {
	b.a.Sup = option.Something(spec)
	return b
}

// WithStri requests that the finished compound take a strī-pratyaya
// before any sup-pratyaya is introduced.
func (b *SamasaArgsBuilder) WithStri(val bool) *SamasaArgsBuilder {
	b.a.Stri = val
	return b
}

func (b *SamasaArgsBuilder) Build() (SamasaArgs, error) {
	if len(b.a.Padas) < 2 {
		return SamasaArgs{}, core.Error(core.EMISSINGFIELD, "args: SamasaArgs.Padas needs at least two members")
	}
	if b.a.Type == "" {
		return SamasaArgs{}, core.Error(core.EMISSINGFIELD, "args: SamasaArgs.Type is required")
	}
	return b.a, nil
}
