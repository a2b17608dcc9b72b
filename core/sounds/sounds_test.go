package sounds_test

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"

	"github.com/ambuda-org/vidyut-go/core/sounds"
)

func TestSetMembership(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	for _, c := range "aAiIuUfFxXeEoO" {
		assert.True(t, sounds.Ac.Contains(byte(c)), "%c should be in Ac", c)
		assert.False(t, sounds.Hal.Contains(byte(c)))
	}
	for _, c := range "kKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzsh" {
		assert.True(t, sounds.Hal.Contains(byte(c)), "%c should be in Hal", c)
		assert.False(t, sounds.Ac.Contains(byte(c)))
	}
}

func TestSetUnion(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	u := sounds.Ac.Union(sounds.Hal)
	assert.True(t, u.Contains('a'))
	assert.True(t, u.Contains('k'))
	assert.False(t, u.Contains('M'))
}

func TestStringTraditionalOrder(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	s := sounds.NewSet("kaN")
	assert.Equal(t, "akN", s.String())
}

func TestIsSamyogadi(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	assert.True(t, sounds.IsSamyogadi("kra"))
	assert.False(t, sounds.IsSamyogadi("ka"))
	assert.False(t, sounds.IsSamyogadi("a"))
}

func TestSplitAksharaBhavati(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	aks := sounds.SplitAkshara("Bavati")
	assert.Len(t, aks, 3)
	assert.Equal(t, "Ba", aks[0].Text)
	assert.Equal(t, sounds.L, aks[0].Weight)
	assert.Equal(t, "va", aks[1].Text)
	assert.Equal(t, sounds.L, aks[1].Weight)
	assert.Equal(t, "ti", aks[2].Text)
	assert.Equal(t, sounds.L, aks[2].Weight)
}

func TestSplitAksharaHeavyByCluster(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	// "rAmaH" -> "rA" (heavy: long A) and "maH" (heavy: short a before visarga).
	aks := sounds.SplitAkshara("rAmaH")
	assert.Len(t, aks, 2)
	assert.Equal(t, sounds.G, aks[0].Weight) // long A
	assert.Equal(t, sounds.G, aks[1].Weight) // short a followed by visarga
}

func TestSplitAksharaClusterMakesHeavy(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	// "agni" - short "a" followed by the conjunct "gn" is guru.
	aks := sounds.SplitAkshara("agni")
	assert.Len(t, aks, 2)
	assert.Equal(t, sounds.G, aks[0].Weight)

	// "indra" - short "i" followed by the conjunct "ndr" is guru.
	aks2 := sounds.SplitAkshara("indra")
	assert.Equal(t, sounds.G, aks2[0].Weight)
}
