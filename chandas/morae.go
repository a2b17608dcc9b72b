package chandas

import (
	"github.com/npillmayer/arithm"

	"github.com/ambuda-org/vidyut-go/core/sounds"
)

// moraCounts tallies, for one pāda's scanned syllables, how many are
// light and how many are heavy, using arithm.Pair as a 2D (laghu,
// guru) accumulator in the same spirit it accumulates (x, y)
// coordinates for a Metafont/Hobby path elsewhere in this dependency.
func moraCounts(aksharas []sounds.Akshara) arithm.Pair {
	var acc arithm.Pair
	for _, a := range aksharas {
		if a.Weight == sounds.G {
			acc = acc.Plus(arithm.Pair{X: 0, Y: 1})
		} else {
			acc = acc.Plus(arithm.Pair{X: 1, Y: 0})
		}
	}
	return acc
}

// totalMatras returns the mora count of a pāda: one per laghu
// syllable, two per guru syllable.
func totalMatras(aksharas []sounds.Akshara) int {
	counts := moraCounts(aksharas)
	return int(counts.X) + 2*int(counts.Y)
}
