package cheda

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/ambuda-org/vidyut-go/core"
)

// Model holds the tag-bigram transition counts and (tag, lemma)
// emission counts the Viterbi tagger searches over, plus raw lemma
// frequencies used to smooth unseen (tag, lemma) pairs. All three
// tables are stored as counts, not log-probabilities: transitionLogProb
// and emissionLogProb divide at lookup time so a model can be extended (new rows appended to the
// CSVs) without recomputing the whole table.
type Model struct {
	transitions map[[2]string]float64 // (prevTag, tag) -> count
	tagTotals   map[string]float64    // tag -> sum of outgoing transition counts
	emissions   map[[2]string]float64 // (tag, lemma) -> count
	emitTotals  map[string]float64    // tag -> sum of emission counts
	lemmaCounts map[string]float64    // lemma -> raw frequency, for unseen-pair smoothing
}

// LoadModel reads the three CSVs a Config's Model() directory holds.
// Each CSV's first record is a header and is skipped.
func LoadModel(cfg Config) (*Model, error) {
	transitions, tagTotals, err := loadPairCounts(cfg.ModelTransitions())
	if err != nil {
		return nil, err
	}
	emissions, emitTotals, err := loadPairCounts(cfg.ModelEmissions())
	if err != nil {
		return nil, err
	}
	lemmaCounts, err := loadLemmaCounts(cfg.ModelLemmaCounts())
	if err != nil {
		return nil, err
	}
	return &Model{
		transitions: transitions, tagTotals: tagTotals,
		emissions: emissions, emitTotals: emitTotals,
		lemmaCounts: lemmaCounts,
	}, nil
}

func loadPairCounts(path string) (map[[2]string]float64, map[string]float64, error) {
	records, err := readCSVRecords(path)
	if err != nil {
		return nil, nil, err
	}
	pairs := make(map[[2]string]float64, len(records))
	totals := make(map[string]float64)
	for _, rec := range records {
		if len(rec) < 3 {
			return nil, nil, core.Error(core.ECSV, "cheda: count record at %s has fewer than 3 fields", path)
		}
		count, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, nil, core.WrapError(err, core.EPARSEFLOAT, "cheda: malformed count %q in %s", rec[2], path)
		}
		key := [2]string{rec[0], rec[1]}
		pairs[key] += count
		totals[rec[0]] += count
	}
	return pairs, totals, nil
}

func loadLemmaCounts(path string) (map[string]float64, error) {
	records, err := readCSVRecords(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(records))
	for _, rec := range records {
		if len(rec) < 2 {
			return nil, core.Error(core.ECSV, "cheda: lemma count record at %s has fewer than 2 fields", path)
		}
		count, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, core.WrapError(err, core.EPARSEFLOAT, "cheda: malformed count %q in %s", rec[1], path)
		}
		out[rec[0]] += count
	}
	return out, nil
}

func readCSVRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cheda: cannot open %s", path)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	var out [][]string
	header := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, core.WrapError(err, core.ECSV, "cheda: malformed CSV %s", path)
		}
		if header {
			header = false
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// smoothing is the additive (Laplace-style, add-0.1) constant applied
// to every count lookup, so an unseen (tag, lemma) or (prevTag, tag) pair gets a
// small nonzero probability rather than making the whole path
// impossible.
const smoothing = 0.1

// transitionLogProb returns log P(tag | prevTag), Laplace-smoothed.
func (m *Model) transitionLogProb(prevTag, tag string) float64 {
	count := m.transitions[[2]string{prevTag, tag}]
	total := m.tagTotals[prevTag]
	return math.Log((count + smoothing) / (total + smoothing*float64(len(m.tagTotals)+1)))
}

// emissionLogProb returns log P(lemma | tag), Laplace-smoothed with a
// pseudo-count of smoothing plus smoothing times the lemma's raw
// frequency from lemmaCounts. The pseudo-count is added whether or not
// the (tag, lemma) pair itself was seen.
func (m *Model) emissionLogProb(tag, lemma string) float64 {
	count := m.emissions[[2]string{tag, lemma}]
	total := m.emitTotals[tag]
	fallback := smoothing
	if lc, ok := m.lemmaCounts[lemma]; ok {
		fallback += lc * smoothing
	}
	return math.Log((count + fallback) / (total + fallback*float64(len(m.emitTotals)+1)))
}
