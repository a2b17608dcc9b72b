package cheda_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"

	"github.com/ambuda-org/vidyut-go/cheda"
	"github.com/ambuda-org/vidyut-go/kosha"
)

func TestNormalize(t *testing.T) {
	cases := []struct{ in, out string }{
		{"devaH", "devaH"},
		{"devo gacCati", "devo gacCati"},
		{"      deva iti", "deva iti"},
		{"deva iti      ", "deva iti"},
		{"  deva   iti  ", "deva iti"},
		{"deva!", "deva !"},
		{"deva--iti", "deva -- iti"},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, cheda.Normalize(c.in))
	}
}

func buildFixture(t *testing.T) cheda.Config {
	t.Helper()
	base := t.TempDir()
	cfg := cheda.NewConfig(base)
	assert.NoError(t, cfg.CreateDirs())

	b := kosha.NewBuilder()
	assert.NoError(t, b.Add("devas", kosha.PadaEntry{
		Type:        kosha.TypeSubanta,
		Pratipadika: &kosha.Pratipadika{Kind: kosha.PratipadikaBasic, Text: "deva"},
		Linga:       1, Vibhakti: 1, Vacana: 1,
	}))
	assert.NoError(t, b.Add("gacCati", kosha.PadaEntry{
		Type:  kosha.TypeTinanta,
		Dhatu: &kosha.Dhatu{Upadesha: "gam", Gana: "Bhvadi"},
	}))
	assert.NoError(t, b.Finish(cfg.Lexicon()))

	writeCSV(t, cfg.Sandhi(), "first,second,result\n"+
		"as,g,og\n")
	writeCSV(t, cfg.ModelTransitions(), "prevTag,tag,count\n"+
		"START,Subanta,5\nSubanta,Tinanta,5\n")
	writeCSV(t, cfg.ModelEmissions(), "tag,lemma,count\n"+
		"Subanta,devas,5\nTinanta,gacCati,5\n")
	writeCSV(t, cfg.ModelLemmaCounts(), "lemma,count\n"+
		"devas,5\ngacCati,5\n")
	return cfg
}

func writeCSV(t *testing.T, path, content string) {
	t.Helper()
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestChedakaSegmentJoinedWords(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	cfg := buildFixture(t)
	c, err := cheda.New(cfg)
	assert.NoError(t, err)

	padas, err := c.Segment(cheda.Normalize("devogacCati"))
	assert.NoError(t, err)
	var texts []string
	for _, p := range padas {
		texts = append(texts, p.Text)
	}
	assert.Equal(t, []string{"devas", "gacCati"}, texts)
	assert.Equal(t, "deva", padas[0].Lemma())
	assert.Equal(t, "gam", padas[1].Lemma())
}

func TestChedakaSegmentFallsBackToUnknown(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	cfg := buildFixture(t)
	c, err := cheda.New(cfg)
	assert.NoError(t, err)

	padas, err := c.Segment(cheda.Normalize("xyzpqr"))
	assert.NoError(t, err)
	assert.Len(t, padas, 1)
	assert.Equal(t, kosha.TypeUnknown, padas[0].Entry.Type)
}

func TestChedakaSegmentPassesThroughSymbols(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	cfg := buildFixture(t)
	c, err := cheda.New(cfg)
	assert.NoError(t, err)

	padas, err := c.Segment(cheda.Normalize("deva!"))
	assert.NoError(t, err)
	assert.Len(t, padas, 2)
	assert.Equal(t, "!", padas[1].Text)
	assert.Equal(t, kosha.TypeUnknown, padas[1].Entry.Type)
}
