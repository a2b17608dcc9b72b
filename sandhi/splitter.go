package sandhi

import (
	"encoding/csv"
	"io"
	"os"
	"sort"

	"github.com/ambuda-org/vidyut-go/core"
	"github.com/ambuda-org/vidyut-go/core/sounds"
)

// Split is one way to interpret text at a given index as the sandhi
// outcome of two padas.
type Split struct {
	first, second string
	kind          Kind
}

// First returns the first pada of the split. It is always non-empty.
func (s Split) First() string { return s.first }

// Second returns the second pada of the split.
func (s Split) Second() string { return s.second }

// Kind reports the confidence tier this split was produced under.
func (s Split) Kind() Kind { return s.kind }

// padaFinal holds the sounds a pada may legally end on: any vowel,
// anusvara/visarga, or one of the permitted word-final consonants.
var padaFinal = sounds.Ac.Union(sounds.AnusvaraVisarga).Union(sounds.NewSet("kwtpNRnmS"))

// IsValid reports whether s is phonetically plausible: first must end on
// a legal pada-final sound and second must begin on a legal pada-initial
// sound (effectively any Sanskrit sound).
func (s Split) IsValid() bool {
	if s.first == "" || s.second == "" {
		return false
	}
	if !padaFinal.Contains(s.first[len(s.first)-1]) {
		return false
	}
	return sounds.Sanskrit.Contains(s.second[0])
}

// Splitter enumerates sandhi splits of a string at a given index, using a
// rule catalog indexed by each rule's result string for fast lookup.
type Splitter struct {
	rules        []Rule
	byResult     map[string][]Rule
	maxResultLen int
}

// NewSplitter builds a Splitter from an explicit rule list (typically
// GenerateRules(), or a catalog loaded from CSV via NewSplitterFromCSV).
func NewSplitter(rules []Rule) *Splitter {
	s := &Splitter{
		rules:    rules,
		byResult: make(map[string][]Rule, len(rules)),
	}
	for _, r := range rules {
		s.byResult[r.Result] = append(s.byResult[r.Result], r)
		if len(r.Result) > s.maxResultLen {
			s.maxResultLen = len(r.Result)
		}
	}
	return s
}

// NewSplitterFromCSV loads a Splitter from a CSV file with columns
// "first", "second", "result", the format GenerateRules' catalog is
// usually persisted in.
func NewSplitterFromCSV(path string) (*Splitter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "sandhi: cannot open rule file %s", path)
	}
	defer f.Close()
	return newSplitterFromReader(f)
}

func newSplitterFromReader(r io.Reader) (*Splitter, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, core.WrapError(err, core.ECSV, "sandhi: malformed rule CSV")
	}
	if len(records) == 0 {
		return NewSplitter(nil), nil
	}
	var rules []Rule
	for _, rec := range records[1:] { // skip header: first,second,result
		if len(rec) < 3 {
			return nil, core.WrapError(nil, core.ECSV, "sandhi: rule record has fewer than 3 fields")
		}
		rules = append(rules, Rule{First: rec[0], Second: rec[1], Result: rec[2], Kind: Standard})
	}
	return NewSplitter(rules), nil
}

// SplitAt returns every way to split text at index into a (first, second)
// pair of padas: the identity split, plus every rule whose result occurs
// in text straddling index. Duplicate (first, second) pairs are
// collapsed, keeping the most confident Kind seen for that pair. Results
// are ordered lexicographically on (first, second).
func (s *Splitter) SplitAt(text string, index int) []Split {
	if index <= 0 || index >= len(text) {
		return nil
	}
	best := make(map[[2]string]Kind)
	consider := func(first, second string, kind Kind) {
		if first == "" {
			return
		}
		key := [2]string{first, second}
		if cur, ok := best[key]; !ok || kind < cur {
			best[key] = kind
		}
	}

	consider(text[:index], text[index:], Standard)

	// A rule's result "straddles" index if index falls anywhere within
	// its matched span, edges included: p <= index <= p+resultLen. The
	// edges matter because a short fused result (often a single
	// character, e.g. visarga sandhi's "o") otherwise could never
	// straddle an integer boundary at all.
	for resultLen := 1; resultLen <= s.maxResultLen; resultLen++ {
		lo := index - resultLen
		if lo < 0 {
			lo = 0
		}
		hi := index
		if hi > len(text)-resultLen {
			hi = len(text) - resultLen
		}
		for p := lo; p <= hi; p++ {
			if p < 0 || p+resultLen > len(text) {
				continue
			}
			candidate := text[p : p+resultLen]
			for _, r := range s.byResult[candidate] {
				first := text[:p] + r.First
				second := r.Second + text[p+resultLen:]
				consider(first, second, r.Kind)
			}
		}
	}

	out := make([]Split, 0, len(best))
	for key, kind := range best {
		out = append(out, Split{first: key[0], second: key[1], kind: kind})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].first != out[j].first {
			return out[i].first < out[j].first
		}
		return out[i].second < out[j].second
	})
	return out
}
