package prakriya_test

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"

	"github.com/ambuda-org/vidyut-go/prakriya"
	"github.com/ambuda-org/vidyut-go/prakriya/args"
)

func TestDeriveSamasasBareCompound(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	sa, err := args.NewSamasaArgs().
		Padas("rAjan", "puruza").
		Type(args.Tatpurusha).
		Build()
	assert.NoError(t, err)

	results, err := prakriya.DeriveSamasas(prakriya.DefaultConfig(), sa)
	assert.NoError(t, err)
	assert.Contains(t, texts(results), "rAjanpuruza")
}

func TestDeriveSamasasWithSup(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	sa, err := args.NewSamasaArgs().
		Padas("rAjan", "puruza").
		Type(args.Tatpurusha).
		WithSup(args.SupSpec{Linga: args.Pum, Vibhakti: args.VibhaktiPrathama, Vacana: args.Eka}).
		Build()
	assert.NoError(t, err)

	results, err := prakriya.DeriveSamasas(prakriya.DefaultConfig(), sa)
	assert.NoError(t, err)
	assert.Contains(t, texts(results), "rAjanpuruzas")
}
