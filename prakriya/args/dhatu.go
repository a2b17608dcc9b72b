package args

import (
	"github.com/ambuda-org/vidyut-go/core"
	"github.com/ambuda-org/vidyut-go/core/option"
)

// DhatuArgs names the dhātu a derivation starts from, plus the
// gaṇa it belongs to (required to select a vikaraṇa) and an optional
// sanādi affix.
type DhatuArgs struct {
	Upadesha string
	Gana     Gana
	Sanadi   option.RefT
}

// DhatuArgsBuilder builds a DhatuArgs incrementally.
type DhatuArgsBuilder struct {
	a DhatuArgs
}

// NewDhatuArgs starts a builder with no fields set.
func NewDhatuArgs() *DhatuArgsBuilder {
	return &DhatuArgsBuilder{a: DhatuArgs{Sanadi: option.Nothing()}}
}

func (b *DhatuArgsBuilder) Upadesha(s string) *DhatuArgsBuilder {
	b.a.Upadesha = s
	return b
}

func (b *DhatuArgsBuilder) Gana(g Gana) *DhatuArgsBuilder {
	b.a.Gana = g
	return b
}

func (b *DhatuArgsBuilder) Sanadi(s Sanadi) *DhatuArgsBuilder {
	b.a.Sanadi = option.Something(s)
	return b
}

// Build validates that every required field was set.
func (b *DhatuArgsBuilder) Build() (DhatuArgs, error) {
	if b.a.Upadesha == "" {
		return DhatuArgs{}, core.Error(core.EMISSINGFIELD, "args: DhatuArgs.Upadesha is required")
	}
	if b.a.Gana == "" {
		return DhatuArgs{}, core.Error(core.EMISSINGFIELD, "args: DhatuArgs.Gana is required")
	}
	return b.a, nil
}
