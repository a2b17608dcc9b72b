package chandas

import (
	"strconv"
	"strings"

	"github.com/ambuda-org/vidyut-go/core"
	"github.com/ambuda-org/vidyut-go/core/sounds"
)

// Weight is one slot of a catalogued metrical pattern: L and G are
// exact, X matches either. This is distinct from sounds.Weight, which
// has no wildcard and describes an actually-scanned syllable.
type Weight int

const (
	L Weight = iota
	G
	X
)

func (w Weight) String() string {
	switch w {
	case G:
		return "G"
	case X:
		return "X"
	default:
		return "L"
	}
}

// matches reports whether a scanned syllable of weight actual
// satisfies this pattern slot.
func (w Weight) matches(actual sounds.Weight) bool {
	switch w {
	case X:
		return true
	case G:
		return actual == sounds.G
	default:
		return actual == sounds.L
	}
}

func parseWeights(text string) ([]Weight, error) {
	out := make([]Weight, 0, len(text))
	for _, c := range text {
		switch c {
		case 'X':
			out = append(out, X)
		case 'L':
			out = append(out, L)
		case 'G':
			out = append(out, G)
		default:
			return nil, core.Error(core.EENUMPARSE, "chandas: unrecognized weight symbol %q", c)
		}
	}
	return out, nil
}

// Gana is the traditional three-syllable shorthand for a run of three
// weights, plus the one-syllable la/ga remainder for a trailing pair
// or singleton.
type Gana int

const (
	Ya Gana = iota // L G G
	Ma              // G G G
	Ta              // G G L
	Ra              // G L G
	Ja              // L G L
	Bha             // G L L
	Na              // L L L
	Sa              // L L G
	La              // L (lone light syllable)
	Ga              // G (lone heavy syllable)
)

func (g Gana) String() string {
	switch g {
	case Ya:
		return "ya"
	case Ma:
		return "ma"
	case Ta:
		return "ta"
	case Ra:
		return "ra"
	case Ja:
		return "ja"
	case Bha:
		return "bha"
	case Na:
		return "na"
	case Sa:
		return "sa"
	case La:
		return "la"
	default:
		return "ga"
	}
}

var ganaOf = map[[3]Weight]Gana{
	{L, G, G}: Ya,
	{G, G, G}: Ma,
	{G, G, L}: Ta,
	{G, L, G}: Ra,
	{L, G, L}: Ja,
	{G, L, L}: Bha,
	{L, L, L}: Na,
	{L, L, G}: Sa,
}

// Vrtta is a vṛtta: a metre defined by an exact (modulo X wildcards)
// per-pāda sequence of syllable weights.
type Vrtta struct {
	Name    string
	Weights [][]Weight
}

// NewVrtta returns a Vrtta named name with the given per-pāda weight
// sequences.
func NewVrtta(name string, weights [][]Weight) Vrtta {
	return Vrtta{Name: name, Weights: weights}
}

// ParseVrtta parses one catalog line of the form
// "name<TAB>LGG.../LLG..." (pādas separated by "/"), the format
// vidyut-chandas's vṛtta catalog ships in.
func ParseVrtta(line string) (Vrtta, error) {
	fields := strings.SplitN(line, "\t", 2)
	if len(fields) != 2 {
		return Vrtta{}, core.Error(core.EINVALIDFILE, "chandas: malformed vrtta catalog line %q", line)
	}
	name, patternStr := fields[0], fields[1]
	var weights [][]Weight
	for _, pada := range strings.Split(patternStr, "/") {
		w, err := parseWeights(pada)
		if err != nil {
			return Vrtta{}, err
		}
		weights = append(weights, w)
	}
	return NewVrtta(name, weights), nil
}

// Ganas decomposes each pāda of v into its gaṇa sequence: every
// complete run of 3 weights becomes one named Gana (X is treated as
// G, matching the tradition's convention of scanning a metre's fixed
// positions as guru when a slot is genuinely invariant); a trailing
// run of 1 or 2 weights becomes one La/Ga per syllable.
func (v Vrtta) Ganas() [][]Gana {
	result := make([][]Gana, 0, len(v.Weights))
	for _, pada := range v.Weights {
		var ganas []Gana
		i := 0
		for ; i+3 <= len(pada); i += 3 {
			key := [3]Weight{normalizeGanaWeight(pada[i]), normalizeGanaWeight(pada[i+1]), normalizeGanaWeight(pada[i+2])}
			if g, ok := ganaOf[key]; ok {
				ganas = append(ganas, g)
				continue
			}
			for _, w := range key {
				ganas = append(ganas, singleGana(w))
			}
		}
		for ; i < len(pada); i++ {
			ganas = append(ganas, singleGana(normalizeGanaWeight(pada[i])))
		}
		result = append(result, ganas)
	}
	return result
}

func normalizeGanaWeight(w Weight) Weight {
	if w == X {
		return G
	}
	return w
}

func singleGana(w Weight) Gana {
	if w == L {
		return La
	}
	return Ga
}

// Jati is a jāti: a metre defined by a per-pāda mora count rather
// than an exact weight sequence.
type Jati struct {
	Name   string
	Matras [][]int
}

// NewJati returns a Jati named name with the given per-pāda mora-count
// candidates (more than one count per pāda is allowed, since some
// jātis accept a small range).
func NewJati(name string, matras [][]int) Jati {
	return Jati{Name: name, Matras: matras}
}

// ParseJati parses one catalog line of the form
// "name<TAB>12 13/12 13/..." (pādas separated by "/", each pāda a
// whitespace-separated list of acceptable mora counts).
func ParseJati(line string) (Jati, error) {
	fields := strings.SplitN(line, "\t", 2)
	if len(fields) != 2 {
		return Jati{}, core.Error(core.EINVALIDFILE, "chandas: malformed jati catalog line %q", line)
	}
	name, patternStr := fields[0], fields[1]
	var matras [][]int
	for _, pada := range strings.Split(patternStr, "/") {
		var counts []int
		for _, tok := range strings.Fields(pada) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return Jati{}, core.WrapError(err, core.EPARSEINT, "chandas: malformed mora count %q", tok)
			}
			counts = append(counts, n)
		}
		matras = append(matras, counts)
	}
	return NewJati(name, matras), nil
}
