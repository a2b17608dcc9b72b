package lipi

import (
	"strings"
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// Tracer traces to the core tracer.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Extension is the pluggable hook into Mapping construction and the
// surrounding text, implemented by extensions.TransliterationExtension.
// It is declared here, rather than imported from the extensions package,
// to avoid a dependency cycle: extensions.TransliterationExtension
// references *Mapping, so lipi cannot import extensions.
type Extension interface {
	Name() string
	ExtendMapping(m *Mapping)
	PreProcess(text string) string
	PostProcess(text string) string
}

type schemePair struct {
	from, to Scheme
}

// basePairs returns the raw substitution table for a supported scheme
// pair, or nil if the pair is not implemented.
func basePairs(from, to Scheme) map[string]string {
	switch {
	case from == Slp1 && to == Devanagari:
		return slp1ToDevanagariPairs()
	case from == Devanagari && to == Slp1:
		return invertPairs(slp1ToDevanagariPairs())
	case from == Slp1 && to == Iast:
		return slp1ToIastPairs()
	case from == Iast && to == Slp1:
		return invertPairs(slp1ToIastPairs())
	case from == Slp1 && to == HarvardKyoto:
		return slp1ToHarvardKyotoPairs()
	case from == HarvardKyoto && to == Slp1:
		return invertPairs(slp1ToHarvardKyotoPairs())
	}
	return nil
}

// pivotScheme is the hub every non-adjacent scheme pair routes through.
// Brahmic scripts and romanizations each only carry direct tables to and
// from Slp1 (see basePairs); a pair like HarvardKyoto -> Devanagari is
// served by two direct hops, HarvardKyoto -> Slp1 -> Devanagari, rather
// than a combinatorial table for every script x romanization pair.
const pivotScheme = Slp1

// NewBuiltinMapping builds the Mapping for a supported scheme pair, or
// nil if the pair has no table registered.
func NewBuiltinMapping(from, to Scheme) *Mapping {
	pairs := basePairs(from, to)
	if pairs == nil {
		return nil
	}
	m := NewMapping(from, to)
	m.AddAll(pairs)
	return m
}

// Transliterate maps text from one scheme to another using the builtin
// mapping table for that pair, consuming the longest matched prefix at
// each position the way Mapping.longestMatch does. Bytes with no match
// (e.g. whitespace, punctuation outside the table) pass through unchanged.
// Transliterate returns the input unchanged, and logs, if the scheme pair
// has no builtin table.
func Transliterate(text string, from, to Scheme) string {
	return NewLipika().Transliterate(text, from, to)
}

// Lipika caches built Mappings across repeated Transliterate calls against
// the same scheme pair, the common case when processing many lines of a
// single text, and carries a set of Extensions that apply to every
// mapping it builds.
type Lipika struct {
	mu         sync.Mutex
	cache      map[schemePair]*Mapping
	extensions []Extension
}

// NewLipika returns an empty, extension-free Lipika.
func NewLipika() *Lipika {
	return &Lipika{cache: make(map[schemePair]*Mapping)}
}

// WithExtension registers ext on l and returns l, so calls chain:
//
//	l := lipi.NewLipika().WithExtension(vedic.RigvedaShakala{})
//
// Registering an extension invalidates the cache, since every cached
// Mapping was built without it.
func (l *Lipika) WithExtension(ext Extension) *Lipika {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.extensions = append(l.extensions, ext)
	l.cache = make(map[schemePair]*Mapping)
	return l
}

// mapping returns the (from, to) Mapping, building and caching it (with
// every registered extension applied) on first use.
func (l *Lipika) mapping(from, to Scheme) *Mapping {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := schemePair{from, to}
	if m, ok := l.cache[key]; ok {
		return m
	}
	m := NewBuiltinMapping(from, to)
	if m == nil {
		return nil
	}
	for _, ext := range l.extensions {
		ext.ExtendMapping(m)
	}
	l.cache[key] = m
	return m
}

// Transliterate maps text from one scheme to another, applying every
// registered extension's pre/post-processing hooks around the scan. When
// from and to are not directly adjacent (see basePairs), Transliterate
// pivots through Slp1: each leg of the pivot is scanned independently,
// which works unmodified for accent marks, since an extension's output is
// already in its final Unicode form and has no entry in the second leg's
// table, so it passes through that leg's scan byte-for-byte unchanged.
func (l *Lipika) Transliterate(text string, from, to Scheme) string {
	if from == to {
		return text
	}
	// Brahmic input composes combining marks (matras, virama, Vedic
	// accents); normalizing to NFC here means a table entry only ever
	// needs to list the composed form.
	if from.IsAbugida() {
		text = norm.NFC.String(text)
	}
	for _, ext := range l.extensions {
		text = ext.PreProcess(text)
	}
	result, ok := l.transliterateDirect(text, from, to)
	if !ok && from != pivotScheme && to != pivotScheme {
		if mid, midOk := l.transliterateDirect(text, from, pivotScheme); midOk {
			result, ok = l.transliterateDirect(mid, pivotScheme, to)
		}
	}
	if !ok {
		Tracer().Errorf("lipi: no mapping registered for %s -> %s", from, to)
		result = text
	}
	for _, ext := range l.extensions {
		result = ext.PostProcess(result)
	}
	return result
}

// transliterateDirect runs the longest-match scan for one scheme pair,
// returning ok=false if no table is registered for that exact pair.
func (l *Lipika) transliterateDirect(text string, from, to Scheme) (string, bool) {
	m := l.mapping(from, to)
	if m == nil {
		return "", false
	}
	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(text); {
		if matched, repl, ok := m.longestMatch(text[i:]); ok {
			out.WriteString(repl)
			i += len(matched)
			continue
		}
		out.WriteByte(text[i])
		i++
	}
	return out.String(), true
}
