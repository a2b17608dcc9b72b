package cheda

import (
	"os"
	"path/filepath"

	"github.com/ambuda-org/vidyut-go/core"
)

// Config resolves the on-disk layout a Chedaka is built from: a sandhi
// rule CSV, a kosha directory, and a model directory holding the
// transition/emission/lemma-count CSVs the Viterbi tagger trains on.
type Config struct {
	baseDir string
}

// NewConfig returns a Config rooted at baseDir.
func NewConfig(baseDir string) Config {
	return Config{baseDir: baseDir}
}

// Sandhi is the path to the sandhi rule CSV.
func (c Config) Sandhi() string { return filepath.Join(c.baseDir, "sandhi-rules.csv") }

// Lexicon is the kosha directory (consumed by kosha.Open).
func (c Config) Lexicon() string { return filepath.Join(c.baseDir, "lexicon") }

// Model is the directory holding the Viterbi tagger's training data.
func (c Config) Model() string { return filepath.Join(c.baseDir, "model") }

// ModelTransitions is the path to the tag-bigram transition-count CSV.
func (c Config) ModelTransitions() string { return filepath.Join(c.Model(), "transitions.csv") }

// ModelEmissions is the path to the (tag, lemma) emission-count CSV.
func (c Config) ModelEmissions() string { return filepath.Join(c.Model(), "emissions.csv") }

// ModelLemmaCounts is the path to the raw lemma-frequency CSV.
func (c Config) ModelLemmaCounts() string { return filepath.Join(c.Model(), "lemma-counts.csv") }

// CreateDirs creates the lexicon and model directories, if absent.
func (c Config) CreateDirs() error {
	if err := os.MkdirAll(c.Lexicon(), 0o755); err != nil {
		return core.WrapError(err, core.EIO, "cheda: could not create %s", c.Lexicon())
	}
	if err := os.MkdirAll(c.Model(), 0o755); err != nil {
		return core.WrapError(err, core.EIO, "cheda: could not create %s", c.Model())
	}
	return nil
}
