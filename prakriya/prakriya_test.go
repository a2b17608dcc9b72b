package prakriya_test

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"

	"github.com/ambuda-org/vidyut-go/prakriya"
	"github.com/ambuda-org/vidyut-go/prakriya/args"
)

func texts(results []*prakriya.Prakriya) []string {
	out := make([]string, len(results))
	for i, p := range results {
		out[i] = p.Text()
	}
	return out
}

func TestDeriveTinantasBhavati(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	dhatu, err := args.NewDhatuArgs().Upadesha("BU").Gana(args.Bhvadi).Build()
	assert.NoError(t, err)
	ta, err := args.NewTinantaArgs().
		Dhatu(dhatu).
		Lakara(args.Lat).
		Prayoga(args.Kartari).
		Purusha(args.Prathama).
		Vacana(args.Eka).
		Build()
	assert.NoError(t, err)

	results, err := prakriya.DeriveTinantas(prakriya.DefaultConfig(), ta)
	assert.NoError(t, err)
	assert.Contains(t, texts(results), "Bavati")

	var history []string
	for _, p := range results {
		if p.Text() == "Bavati" {
			for _, h := range p.History() {
				history = append(history, h.Code)
			}
		}
	}
	i378 := indexOf(history, "3.4.78")
	i168 := indexOf(history, "3.1.68")
	iSandhi := indexOf(history, "6.1.108")
	assert.True(t, i378 >= 0 && i168 >= 0 && iSandhi >= 0)
	assert.True(t, i378 < i168)
	assert.True(t, i168 < iSandhi)
}

func indexOf(ss []string, target string) int {
	for i, s := range ss {
		if s == target {
			return i
		}
	}
	return -1
}

func TestDeriveTinantasKrVikalpa(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	dhatu, err := args.NewDhatuArgs().Upadesha("qukf\\Y").Gana(args.Tanadi).Build()
	assert.NoError(t, err)
	ta, err := args.NewTinantaArgs().
		Dhatu(dhatu).
		Lakara(args.Lit).
		Purusha(args.Madhyama).
		Vacana(args.Eka).
		Build()
	assert.NoError(t, err)

	results, err := prakriya.DeriveTinantas(prakriya.DefaultConfig(), ta)
	assert.NoError(t, err)
	got := texts(results)
	assert.Contains(t, got, "cakarTa")
	assert.Contains(t, got, "cakfTa")
}

func TestDeriveKrdantasPaktva(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	dhatu, err := args.NewDhatuArgs().Upadesha("qupa\\ca~^z").Gana(args.Bhvadi).Build()
	assert.NoError(t, err)
	ka, err := args.NewKrdantaArgs().Dhatu(dhatu).Krt(args.Ktva).Build()
	assert.NoError(t, err)

	results, err := prakriya.DeriveKrdantas(prakriya.DefaultConfig(), ka)
	assert.NoError(t, err)
	assert.Contains(t, texts(results), "paktvA")
}

func TestDeriveDhatusBareSurface(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	dhatu, err := args.NewDhatuArgs().Upadesha("BU").Gana(args.Bhvadi).Build()
	assert.NoError(t, err)
	results, err := prakriya.DeriveDhatus(prakriya.DefaultConfig(), dhatu)
	assert.NoError(t, err)
	assert.Contains(t, texts(results), "BU")
}

func TestDeriveTinantasCachesRepeatedArgs(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	dhatu, err := args.NewDhatuArgs().Upadesha("BU").Gana(args.Bhvadi).Build()
	assert.NoError(t, err)
	ta, err := args.NewTinantaArgs().
		Dhatu(dhatu).Lakara(args.Lat).Purusha(args.Prathama).Vacana(args.Eka).Build()
	assert.NoError(t, err)

	a, err := prakriya.DeriveTinantas(prakriya.DefaultConfig(), ta)
	assert.NoError(t, err)
	b, err := prakriya.DeriveTinantas(prakriya.DefaultConfig(), ta)
	assert.NoError(t, err)
	assert.Equal(t, texts(a), texts(b))
}
