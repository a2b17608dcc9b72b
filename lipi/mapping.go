package lipi

import "github.com/derekparker/trie"

// Mapping is a precomputed longest-match substitution table between two
// schemes. It is built once per scheme pair and is safe for concurrent
// read-only use after construction.
type Mapping struct {
	From, To Scheme
	t        *trie.Trie
	maxLen   int
}

// NewMapping builds an empty Mapping for the given scheme pair.
func NewMapping(from, to Scheme) *Mapping {
	return &Mapping{From: from, To: to, t: trie.New()}
}

// Add registers a substitution: whenever from appears as a prefix of the
// remaining input, it is replaced by to. Later calls with a key already
// present overwrite the earlier mapping, which is how extensions layer
// sakha-specific tokens (e.g. accent marks) on top of the base table.
func (m *Mapping) Add(from, to string) {
	if from == "" {
		return
	}
	m.t.Add(from, to)
	if len(from) > m.maxLen {
		m.maxLen = len(from)
	}
}

// AddAll registers every entry of pairs via Add.
func (m *Mapping) AddAll(pairs map[string]string) {
	for from, to := range pairs {
		m.Add(from, to)
	}
}

// longestMatch finds the longest key in m that is a prefix of text,
// trying lengths from the longest key registered down to one byte.
func (m *Mapping) longestMatch(text string) (matched, replacement string, ok bool) {
	limit := m.maxLen
	if limit > len(text) {
		limit = len(text)
	}
	for l := limit; l >= 1; l-- {
		node, found := m.t.Find(text[:l])
		if !found {
			continue
		}
		meta := node.Meta()
		if repl, isStr := meta.(string); isStr {
			return text[:l], repl, true
		}
	}
	return "", "", false
}
