package kosha_test

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"

	"github.com/ambuda-org/vidyut-go/kosha"
)

func TestBuilderFinishThenOpenRoundTrips(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	b := kosha.NewBuilder()
	err := b.Add("devas", kosha.PadaEntry{
		Type:        kosha.TypeSubanta,
		Pratipadika: &kosha.Pratipadika{Kind: kosha.PratipadikaBasic, Text: "deva"},
		Linga:       1, Vibhakti: 1, Vacana: 1,
	})
	assert.NoError(t, err)
	err = b.Add("gacCati", kosha.PadaEntry{
		Type:  kosha.TypeTinanta,
		Dhatu: &kosha.Dhatu{Upadesha: "gam", Gana: "Bhvadi"},
	})
	assert.NoError(t, err)

	dir := t.TempDir()
	assert.NoError(t, b.Finish(dir))

	k, err := kosha.Open(dir)
	assert.NoError(t, err)

	assert.True(t, k.ContainsKey("devas"))
	assert.False(t, k.ContainsKey("nosuchkey"))

	entries := k.GetAll("devas")
	assert.Len(t, entries, 1)

	unpacked, err := k.Unpack(entries[0])
	assert.NoError(t, err)
	assert.Equal(t, "deva", unpacked.Lemma())

	tinEntries := k.GetAll("gacCati")
	assert.Len(t, tinEntries, 1)
	tinUnpacked, err := k.Unpack(tinEntries[0])
	assert.NoError(t, err)
	assert.Equal(t, "gam", tinUnpacked.Lemma())

	stream := k.Stream()
	assert.Len(t, stream, 2)
	assert.Equal(t, "devas", stream[0].Key)
	assert.Equal(t, "gacCati", stream[1].Key)
}

func TestBuilderRejectsOutOfOrderKeys(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	b := kosha.NewBuilder()
	assert.NoError(t, b.Add("gacCati", kosha.PadaEntry{Type: kosha.TypeUnknown}))
	err := b.Add("devas", kosha.PadaEntry{Type: kosha.TypeUnknown})
	assert.Error(t, err)
}
