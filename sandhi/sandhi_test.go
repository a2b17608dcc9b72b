package sandhi_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"

	"github.com/ambuda-org/vidyut-go/sandhi"
)

func TestGenerateRulesNonEmpty(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	rules := sandhi.GenerateRules()
	assert.NotEmpty(t, rules)
	for _, r := range rules {
		assert.NotEmpty(t, r.First)
		assert.NotEmpty(t, r.Result)
	}
}

func TestSplitAtIdentitySplit(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	s := sandhi.NewSplitter(sandhi.GenerateRules())
	splits := s.SplitAt("devoham", 3)
	var sawIdentity bool
	for _, sp := range splits {
		if sp.First() == "dev" && sp.Second() == "oham" {
			sawIdentity = true
		}
	}
	assert.True(t, sawIdentity, "expected identity split among results: %+v", splits)
}

func TestSplitAtFindsSandhiReversal(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	// "devoham" -> "devaH" + "aham" via aH+a->o visarga sandhi (index 4
	// is the right edge of the "o" at index 3, which counts as straddling).
	s := sandhi.NewSplitter(sandhi.GenerateRules())
	text := "devoham"
	splits := s.SplitAt(text, 4)
	var sawReversal bool
	for _, sp := range splits {
		if strings.HasSuffix(sp.First(), "aH") && strings.HasPrefix(sp.Second(), "a") {
			sawReversal = true
		}
	}
	assert.True(t, sawReversal, "expected a visarga-sandhi reversal among results: %+v", splits)
}

func TestSplitAtOutOfRangeReturnsNil(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	s := sandhi.NewSplitter(sandhi.GenerateRules())
	assert.Nil(t, s.SplitAt("rama", 0))
	assert.Nil(t, s.SplitAt("rama", 4))
}

func TestSplitAtIsDeterministicallyOrdered(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	s := sandhi.NewSplitter(sandhi.GenerateRules())
	a := s.SplitAt("devoham", 4)
	b := s.SplitAt("devoham", 4)
	assert.Equal(t, a, b)
	for i := 1; i < len(a); i++ {
		before := a[i-1].First() < a[i].First() ||
			(a[i-1].First() == a[i].First() && a[i-1].Second() <= a[i].Second())
		assert.True(t, before, "splits not sorted at index %d", i)
	}
}

func TestSplitIsValidHeuristic(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	s := sandhi.NewSplitter(sandhi.GenerateRules())
	splits := s.SplitAt("devoham", 3)
	for _, sp := range splits {
		if sp.First() == "dev" {
			// "dev" ends in a consonant not in the legal pada-final set.
			assert.False(t, sp.IsValid())
		}
	}
}
