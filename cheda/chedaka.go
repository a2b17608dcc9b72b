package cheda

import (
	"strings"

	"github.com/ambuda-org/vidyut-go/core/sounds"
	"github.com/ambuda-org/vidyut-go/kosha"
	"github.com/ambuda-org/vidyut-go/sandhi"
)

// Pada is one word of a Segment result: its surface text plus the
// kosha entry it was recognized as.
type Pada struct {
	Text  string
	Entry kosha.PadaEntry
}

// Lemma returns the dictionary form backing this pada's entry.
func (p Pada) Lemma() string { return p.Entry.Lemma() }

// Tag returns a short label for this pada's entry, used as the hidden
// state in the Viterbi tagger. startTag marks the left edge of a
// segmentation run, before any pada has been emitted.
func (p Pada) Tag() string { return entryTag(p.Entry) }

const startTag = "START"

func entryTag(e kosha.PadaEntry) string {
	switch e.Type {
	case kosha.TypeSubanta:
		return "Subanta"
	case kosha.TypeTinanta:
		return "Tinanta"
	case kosha.TypeAvyaya:
		return "Avyaya"
	default:
		return "Unknown"
	}
}

// Chedaka segments normalized Sanskrit text into padas: at each
// position it considers every sandhi split whose first half is a
// known kosha key, then picks the split sequence with the highest
// Viterbi score under Model's transition/emission tables.
type Chedaka struct {
	config   Config
	kosha    *kosha.Kosha
	splitter *sandhi.Splitter
	model    *Model
}

// New builds a Chedaka from the kosha, sandhi rules, and tagger model
// cfg points to.
func New(cfg Config) (*Chedaka, error) {
	k, err := kosha.Open(cfg.Lexicon())
	if err != nil {
		return nil, err
	}
	splitter, err := sandhi.NewSplitterFromCSV(cfg.Sandhi())
	if err != nil {
		return nil, err
	}
	model, err := LoadModel(cfg)
	if err != nil {
		return nil, err
	}
	return &Chedaka{config: cfg, kosha: k, splitter: splitter, model: model}, nil
}

// Kosha exposes the lexicon this Chedaka was built from, for lookups
// outside of full segmentation (vidyut-cheda's debug_word does this).
func (c *Chedaka) Kosha() *kosha.Kosha { return c.kosha }

// Config returns the configuration this Chedaka was built from.
func (c *Chedaka) Config() Config { return c.config }

// Segment splits text into padas. text should already be Normalize'd;
// Segment itself splits on whitespace and segments each resulting
// chunk independently, since sandhi does not cross a normalized
// whitespace boundary.
func (c *Chedaka) Segment(text string) ([]Pada, error) {
	var out []Pada
	for _, chunk := range strings.Fields(text) {
		if !isSanskritChunk(chunk) {
			out = append(out, Pada{Text: chunk, Entry: kosha.PadaEntry{Type: kosha.TypeUnknown}})
			continue
		}
		padas, err := c.viterbi(chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, padas...)
	}
	return out, nil
}

func isSanskritChunk(chunk string) bool {
	for i := 0; i < len(chunk); i++ {
		if !sounds.Sanskrit.Contains(chunk[i]) {
			return false
		}
	}
	return len(chunk) > 0
}

type vstate struct {
	score float64
	padas []Pada
	ok    bool
}

type memoKey struct {
	remaining string
	prevTag   string
}

// viterbi finds the highest-scoring pada sequence that reconstitutes
// chunk via sandhi joins, falling back to a single Unknown pada if no
// kosha-grounded segmentation exists at all.
func (c *Chedaka) viterbi(chunk string) ([]Pada, error) {
	memo := make(map[memoKey]vstate)
	st := c.best(chunk, startTag, memo)
	if !st.ok {
		return []Pada{{Text: chunk, Entry: kosha.PadaEntry{Type: kosha.TypeUnknown}}}, nil
	}
	return st.padas, nil
}

func (c *Chedaka) best(remaining, prevTag string, memo map[memoKey]vstate) vstate {
	if remaining == "" {
		return vstate{score: 0, ok: true}
	}
	key := memoKey{remaining, prevTag}
	if v, ok := memo[key]; ok {
		return v
	}
	// Guard against runaway recursion on pathological sandhi-rule
	// catalogs (a rule whose "second" side never shrinks).
	memo[key] = vstate{}

	best := vstate{}
	considerWord := func(word string, tail string) {
		for _, entry := range c.kosha.GetAll(word) {
			unpacked, err := c.kosha.Unpack(entry)
			if err != nil {
				continue
			}
			tag := entryTag(unpacked)
			lp := c.model.transitionLogProb(prevTag, tag) + c.model.emissionLogProb(tag, word)
			rest := c.best(tail, tag, memo)
			if !rest.ok {
				continue
			}
			score := lp + rest.score
			if !best.ok || score > best.score {
				pada := Pada{Text: word, Entry: unpacked}
				padas := make([]Pada, 0, len(rest.padas)+1)
				padas = append(padas, pada)
				padas = append(padas, rest.padas...)
				best = vstate{score: score, padas: padas, ok: true}
			}
		}
	}

	if c.kosha.ContainsKey(remaining) {
		considerWord(remaining, "")
	}
	for idx := 1; idx < len(remaining); idx++ {
		for _, split := range c.splitter.SplitAt(remaining, idx) {
			if split.First() == remaining || !c.kosha.ContainsKey(split.First()) {
				continue
			}
			considerWord(split.First(), split.Second())
		}
	}

	memo[key] = best
	return best
}
