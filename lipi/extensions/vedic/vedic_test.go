package vedic_test

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"

	"github.com/ambuda-org/vidyut-go/lipi"
	"github.com/ambuda-org/vidyut-go/lipi/extensions/vedic"
)

func TestRigvedaShakalaUdattaToDevanagari(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	l := lipi.NewLipika().WithExtension(vedic.RigvedaShakala{})
	got := l.Transliterate("agni'mILe", lipi.HarvardKyoto, lipi.Devanagari)
	assert.Contains(t, got, "॑")
}

func TestRigvedaShakalaNumericAccentNotation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	l := lipi.NewLipika().WithExtension(vedic.RigvedaShakala{})
	withMarks := l.Transliterate("a'gnimILe", lipi.HarvardKyoto, lipi.Devanagari)
	withNumeric := l.Transliterate("a3gnimILe", lipi.HarvardKyoto, lipi.Devanagari)
	assert.Equal(t, withMarks, withNumeric)
}

func TestTaittiriyaYajurvedaAccents(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	l := lipi.NewLipika().WithExtension(vedic.TaittiriyaYajurveda{})
	got := l.Transliterate("i#She", lipi.HarvardKyoto, lipi.Devanagari)
	assert.Contains(t, got, "॑")
}

func TestSamavedaKauthumaNumericAccents(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	l := lipi.NewLipika().WithExtension(vedic.SamavedaKauthuma{})
	got := l.Transliterate("a1gnim", lipi.HarvardKyoto, lipi.Devanagari)
	assert.Contains(t, got, "१")
}
