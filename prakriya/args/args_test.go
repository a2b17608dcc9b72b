package args_test

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"

	"github.com/ambuda-org/vidyut-go/core"
	"github.com/ambuda-org/vidyut-go/prakriya/args"
)

func TestDhatuArgsBuilderRequiresGana(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	_, err := args.NewDhatuArgs().Upadesha("BU").Build()
	assert.Error(t, err)
	assert.Equal(t, core.EMISSINGFIELD, core.Code(err))
}

func TestDhatuArgsBuilderSucceeds(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	a, err := args.NewDhatuArgs().Upadesha("BU").Gana(args.Bhvadi).Build()
	assert.NoError(t, err)
	assert.Equal(t, "BU", a.Upadesha)
	assert.True(t, a.Sanadi.IsNone())
}

func TestParseGanaRejectsUnknown(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	_, err := args.ParseGana("NotAGana")
	assert.Error(t, err)
	assert.Equal(t, core.EENUMPARSE, core.Code(err))
}

func TestTinantaArgsDefaultsToKartari(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	dhatu, err := args.NewDhatuArgs().Upadesha("BU").Gana(args.Bhvadi).Build()
	assert.NoError(t, err)
	ta, err := args.NewTinantaArgs().
		Dhatu(dhatu).
		Lakara(args.Lat).
		Purusha(args.Prathama).
		Vacana(args.Eka).
		Build()
	assert.NoError(t, err)
	assert.Equal(t, args.Kartari, ta.Prayoga)
}

func TestSamasaArgsRequiresTwoPadas(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	_, err := args.NewSamasaArgs().Padas("rAjan").Type(args.Tatpurusha).Build()
	assert.Error(t, err)
}
