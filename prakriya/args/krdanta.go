package args

import "github.com/ambuda-org/vidyut-go/core"

// KrdantaArgs requests one kṛt-pratyaya nominal derived directly from
// a dhātu.
type KrdantaArgs struct {
	Dhatu DhatuArgs
	Krt   Krt
}

// KrdantaArgsBuilder builds a KrdantaArgs incrementally.
type KrdantaArgsBuilder struct {
	a KrdantaArgs
}

func NewKrdantaArgs() *KrdantaArgsBuilder { return &KrdantaArgsBuilder{} }

func (b *KrdantaArgsBuilder) Dhatu(d DhatuArgs) *KrdantaArgsBuilder {
	b.a.Dhatu = d
	return b
}

func (b *KrdantaArgsBuilder) Krt(k Krt) *KrdantaArgsBuilder {
	b.a.Krt = k
	return b
}

func (b *KrdantaArgsBuilder) Build() (KrdantaArgs, error) {
	if b.a.Dhatu.Upadesha == "" {
		return KrdantaArgs{}, core.Error(core.EMISSINGFIELD, "args: KrdantaArgs.Dhatu is required")
	}
	if b.a.Krt == "" {
		return KrdantaArgs{}, core.Error(core.EMISSINGFIELD, "args: KrdantaArgs.Krt is required")
	}
	return b.a, nil
}
