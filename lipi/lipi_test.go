package lipi_test

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"

	"github.com/ambuda-org/vidyut-go/lipi"
)

func TestTransliterateSlp1ToDevanagariBhavati(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	got := lipi.Transliterate("Bavati", lipi.Slp1, lipi.Devanagari)
	assert.Equal(t, "भवति", got)
}

func TestTransliterateSlp1ToDevanagariBareConsonant(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	// "Bagavat" ends in a bare "t" with no following vowel, which takes
	// the virama fallback.
	got := lipi.Transliterate("Bagavat", lipi.Slp1, lipi.Devanagari)
	assert.Equal(t, "भगवत्", got)
}

func TestTransliterateRoundTripDevanagariToSlp1(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	deva := lipi.Transliterate("Bavati", lipi.Slp1, lipi.Devanagari)
	back := lipi.Transliterate(deva, lipi.Devanagari, lipi.Slp1)
	assert.Equal(t, "Bavati", back)
}

func TestTransliterateSlp1ToIast(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	got := lipi.Transliterate("kfzRa", lipi.Slp1, lipi.Iast)
	assert.Equal(t, "kṛṣṇa", got)
}

func TestTransliterateUnsupportedPairPassesThrough(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	got := lipi.Transliterate("hello", lipi.Tamil, lipi.Sinhala)
	assert.Equal(t, "hello", got)
}

func TestLipikaCachesMapping(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	l := lipi.NewLipika()
	first := l.Transliterate("Bavati", lipi.Slp1, lipi.Devanagari)
	second := l.Transliterate("Bavati", lipi.Slp1, lipi.Devanagari)
	assert.Equal(t, first, second)
	assert.Equal(t, "भवति", second)
}
