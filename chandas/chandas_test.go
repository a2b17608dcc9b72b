package chandas_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"

	"github.com/ambuda-org/vidyut-go/chandas"
)

func TestParseVrttaAndGanas(t *testing.T) {
	v, err := chandas.ParseVrtta("indravajra\tGGLGGLLGGLGG")
	assert.NoError(t, err)
	assert.Equal(t, "indravajra", v.Name)
	assert.Len(t, v.Weights, 1)
	assert.Len(t, v.Weights[0], 12)

	ganas := v.Ganas()
	assert.Len(t, ganas, 1)
	assert.Equal(t, "ta", ganas[0][0].String())
}

func TestParseJati(t *testing.T) {
	j, err := chandas.ParseJati("arya\t12/18/12/15")
	assert.NoError(t, err)
	assert.Equal(t, "arya", j.Name)
	assert.Equal(t, [][]int{{12}, {18}, {12}, {15}}, j.Matras)
}

func TestClassifyMatchesAFullVrtta(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	c := chandas.NewChandas()
	// A short, made-up single-pāda pattern so the test is
	// self-contained: four light syllables.
	v, err := chandas.ParseVrtta("caturlaghu\tLLLL")
	assert.NoError(t, err)
	c.AddVrtta(v)

	result := c.Classify("kamalana")
	assert.Equal(t, "caturlaghu", result.Name)
	assert.Equal(t, chandas.Full, result.Type)
}

func TestClassifyNoneWhenNothingMatches(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	c := chandas.NewChandas()
	v, err := chandas.ParseVrtta("allguru\tGGGG")
	assert.NoError(t, err)
	c.AddVrtta(v)

	result := c.Classify("kamalana")
	assert.Equal(t, chandas.None, result.Type)
}

func TestClassifyAnustubhFull(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	c := chandas.NewChandas()
	// 8 syllables per pāda, single-consonant onsets so weight is
	// governed purely by vowel length: short "a" scans light, long
	// "A" scans heavy. Syllables 1-5 and 8 are light; syllable 6 is
	// always heavy; syllable 7 is heavy in the odd (1st/3rd) pādas and
	// light in the even (2nd/4th) pādas, per the pathyā rule.
	oddPada := "kakakakakakAkAka"
	evenPada := "kakakakakakAkaka"
	verse := strings.Join([]string{oddPada, evenPada, oddPada, evenPada}, " | ")

	result := c.Classify(verse)
	assert.Equal(t, "anustubh", result.Name)
	assert.Equal(t, chandas.Full, result.Type)
}
