package chandas

import (
	"bufio"
	"io"
	"os"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/ambuda-org/vidyut-go/core"
)

// anustubhName is the catalog name Classify reports for a verse whose
// pādas satisfy the anuṣṭubh pathyā slot constraints, since anuṣṭubh
// is matched structurally rather than looked up by name in vrttas.
const anustubhName = "anustubh"

// Chandas is a loaded metre catalog: every cataloged vṛtta and jāti,
// keyed by name in a treemap.Map so VrttaNames and JatiNames iterate in
// a stable, alphabetic order.
type Chandas struct {
	vrttas *treemap.Map
	jatis  *treemap.Map
}

// NewChandas returns an empty catalog.
func NewChandas() *Chandas {
	return &Chandas{
		vrttas: treemap.NewWithStringComparator(),
		jatis:  treemap.NewWithStringComparator(),
	}
}

// AddVrtta registers v under its own name, replacing any existing
// entry with that name.
func (c *Chandas) AddVrtta(v Vrtta) { c.vrttas.Put(v.Name, v) }

// AddJati registers j under its own name, replacing any existing
// entry with that name.
func (c *Chandas) AddJati(j Jati) { c.jatis.Put(j.Name, j) }

// LoadVrttas reads tab-delimited vṛtta catalog lines from r (see
// ParseVrtta) and registers each one.
func (c *Chandas) LoadVrttas(r io.Reader) error {
	return scanLines(r, func(line string) error {
		v, err := ParseVrtta(line)
		if err != nil {
			return err
		}
		c.AddVrtta(v)
		return nil
	})
}

// LoadJatis reads tab-delimited jāti catalog lines from r (see
// ParseJati) and registers each one.
func (c *Chandas) LoadJatis(r io.Reader) error {
	return scanLines(r, func(line string) error {
		j, err := ParseJati(line)
		if err != nil {
			return err
		}
		c.AddJati(j)
		return nil
	})
}

// LoadVrttasFile and LoadJatisFile open path and delegate to
// LoadVrttas/LoadJatis.
func (c *Chandas) LoadVrttasFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return core.WrapError(err, core.EIO, "chandas: cannot open %s", path)
	}
	defer f.Close()
	return c.LoadVrttas(f)
}

func (c *Chandas) LoadJatisFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return core.WrapError(err, core.EIO, "chandas: cannot open %s", path)
	}
	defer f.Close()
	return c.LoadJatis(f)
}

func scanLines(r io.Reader, handle func(string) error) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if err := handle(line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return core.WrapError(err, core.EIO, "chandas: error reading catalog")
	}
	return nil
}

// VrttaNames returns every registered vṛtta name, alphabetically.
func (c *Chandas) VrttaNames() []string { return stringKeys(c.vrttas) }

// JatiNames returns every registered jāti name, alphabetically.
func (c *Chandas) JatiNames() []string { return stringKeys(c.jatis) }

func stringKeys(m *treemap.Map) []string {
	keys := m.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.(string)
	}
	return out
}

// Classify syllabifies verse into pādas and scores every catalogued
// vṛtta, jāti, and the built-in anuṣṭubh slot constraints against it,
// returning the single best result (Full beats Pada beats Prefix
// beats None; ties keep whichever candidate was found first).
func (c *Chandas) Classify(verse string) Result {
	padas := scanPadas(verse)

	best := Result{Type: None}
	consider := func(name string, t MatchType) {
		if rank(t) > rank(best.Type) {
			best = Result{Name: name, Type: t}
		}
	}

	consider(anustubhName, classifyAnustubh(padas))

	it := c.vrttas.Iterator()
	for it.Next() {
		v := it.Value().(Vrtta)
		consider(v.Name, classifyVrtta(padas, v))
	}

	jit := c.jatis.Iterator()
	for jit.Next() {
		j := jit.Value().(Jati)
		consider(j.Name, classifyJati(padas, j))
	}

	return best
}
