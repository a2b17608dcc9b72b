package prakriya

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/cords"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer returns the package-wide trace sink, following the
// Tracer()/T() convention used elsewhere in this module.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// HistoryEntry snapshots every term's text immediately after a rule
// fired, so a derivation can be explained step by step.
type HistoryEntry struct {
	Code  string
	Terms []string
}

// decision records whether one optional rule, identified by Code, was
// taken the Nth time Prakriya.decide was called during this run.
type decision struct {
	code  string
	taken bool
}

// Prakriya holds the mutable state of one derivation run: its terms in
// left-to-right order, the rule-application history, and the
// optional-choice bookkeeping the enumeration worklist in engine.go
// relies on.
type Prakriya struct {
	terms     []*Term
	history   []HistoryEntry
	decisions []decision
	forced    []bool
	tags      *hashset.Set
	config    Config
	request   requestArgs
	surface   string // set by runInternalSandhi once the term sequence is finalized
}

// New creates an empty Prakriya ready to have terms appended by a
// phase's construction step.
func New(config Config) *Prakriya {
	return &Prakriya{config: config, tags: hashset.New()}
}

// Terms returns the current term sequence. Callers must not retain
// the slice across a phase call, since phases may reallocate it.
func (p *Prakriya) Terms() []*Term {
	return p.terms
}

// Term returns the ith term, or nil if i is out of range.
func (p *Prakriya) Term(i int) *Term {
	if i < 0 || i >= len(p.terms) {
		return nil
	}
	return p.terms[i]
}

// AppendTerm adds t to the end of the term sequence.
func (p *Prakriya) AppendTerm(t *Term) {
	p.terms = append(p.terms, t)
}

// InsertTerm inserts t at position i, shifting later terms right.
func (p *Prakriya) InsertTerm(i int, t *Term) {
	p.terms = append(p.terms, nil)
	copy(p.terms[i+1:], p.terms[i:])
	p.terms[i] = t
}

// RemoveTerm deletes the term at position i.
func (p *Prakriya) RemoveTerm(i int) {
	p.terms = append(p.terms[:i], p.terms[i+1:]...)
}

// AddTag marks the derivation itself (as opposed to one term) with
// tag, e.g. TagKartari for the prayoga under construction.
func (p *Prakriya) AddTag(tag Tag) {
	p.tags.Add(tag)
}

// HasTag reports whether the derivation carries tag.
func (p *Prakriya) HasTag(tag Tag) bool {
	return hasTag(p.tags, tag)
}

// Step snapshots every term's current text under code, appending to
// the history. Rule.Try calls this automatically whenever a rule
// fires, so callers rarely need to invoke it directly.
func (p *Prakriya) Step(code string) {
	snap := make([]string, len(p.terms))
	for i, t := range p.terms {
		snap[i] = t.Text
	}
	p.history = append(p.history, HistoryEntry{Code: code, Terms: snap})
	if p.config.LogSteps {
		Tracer().Debugf("prakriya: %s -> %v", code, snap)
	}
}

// History returns the full step-by-step record of this derivation.
func (p *Prakriya) History() []HistoryEntry {
	return p.history
}

// decide resolves whether the optional rule identified by code is
// taken on this run. If the forced-choice prefix set by the
// enumeration worklist already covers this decision point, that
// forced value is used (and recorded); otherwise the rule is taken by
// default and the decision is recorded as a new fork point for the
// worklist to explore later.
func (p *Prakriya) decide(code string) bool {
	idx := len(p.decisions)
	taken := true
	if idx < len(p.forced) {
		taken = p.forced[idx]
	}
	p.decisions = append(p.decisions, decision{code: code, taken: taken})
	return taken
}

// termLeaf adapts a term's text snapshot to cords.Leaf, so Text can
// build a single cord out of the term sequence without doing its own
// string-concatenation bookkeeping.
type termLeaf struct {
	s string
}

func (l termLeaf) Weight() uint64 { return uint64(len(l.s)) }
func (l termLeaf) String() string { return l.s }
func (l termLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return termLeaf{l.s[:i]}, termLeaf{l.s[i:]}
}
func (l termLeaf) Substring(i, j uint64) []byte { return []byte(l.s)[i:j] }

var _ cords.Leaf = termLeaf{}

// Text returns the derivation's surface form: the internal-sandhi
// phase's joined result if that phase has already run, or otherwise
// the raw concatenation of every term's current text, built as a
// cords.Cord rather than by repeated string concatenation.
func (p *Prakriya) Text() string {
	if p.surface != "" {
		return p.surface
	}
	b := cords.NewBuilder()
	for _, t := range p.terms {
		if t.Text == "" {
			continue
		}
		b.Append(termLeaf{t.Text})
	}
	return fmt.Sprint(b.Cord())
}
