package kosha

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/derekparker/trie"

	"github.com/ambuda-org/vidyut-go/core"
)

// Kosha is a read-only, freely-shareable lexicon: a sorted key →
// packed-entry-list store plus the dhātu/prātipadika registries its
// entries' ids dereference into. Every exported method is safe to
// call concurrently from any number of goroutines once Open returns.
type Kosha struct {
	t       *trie.Trie
	keys    []string // ascending, the order padas.fst was written in
	dhatus  *DhatuRegistry
	prati   *PratipadikaRegistry
}

// Open loads the kosha directory dir (as written by Builder.Finish).
func Open(dir string) (*Kosha, error) {
	padasPath := filepath.Join(dir, "padas.fst")
	f, err := os.Open(padasPath)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "kosha: could not open %s", padasPath)
	}
	defer f.Close()

	keys, values, err := readFST(f)
	if err != nil {
		return nil, core.WrapError(err, core.EKOSHA, "kosha: could not read %s", padasPath)
	}

	t := trie.New()
	for i, key := range keys {
		t.Add(key, values[i])
	}

	dhatusPath := filepath.Join(dir, "dhatus.registry")
	df, err := os.Open(dhatusPath)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "kosha: could not open %s", dhatusPath)
	}
	defer df.Close()
	dhatus, err := readDhatuRegistry(df)
	if err != nil {
		return nil, core.WrapError(err, core.EKOSHA, "kosha: could not read %s", dhatusPath)
	}

	pratiPath := filepath.Join(dir, "pratipadikas.registry")
	pf, err := os.Open(pratiPath)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "kosha: could not open %s", pratiPath)
	}
	defer pf.Close()
	prati, err := readPratipadikaRegistry(pf)
	if err != nil {
		return nil, core.WrapError(err, core.EKOSHA, "kosha: could not read %s", pratiPath)
	}

	return &Kosha{t: t, keys: keys, dhatus: dhatus, prati: prati}, nil
}

// ContainsKey reports whether key has at least one packed entry.
func (k *Kosha) ContainsKey(key string) bool {
	_, ok := k.t.Find(key)
	return ok
}

// GetAll returns every packed entry stored under key, or nil if key
// is absent.
func (k *Kosha) GetAll(key string) []PackedEntry {
	node, ok := k.t.Find(key)
	if !ok {
		return nil
	}
	vals, ok := node.Meta().([]PackedEntry)
	if !ok {
		return nil
	}
	return vals
}

// Unpack discriminates entry on its type tag and, for the variants
// that reference a registry, dereferences the id to reconstruct a
// full PadaEntry.
func (k *Kosha) Unpack(entry PackedEntry) (PadaEntry, error) {
	switch entry.Type() {
	case TypeSubanta:
		id, linga, vibhakti, vacana, purvapada := entry.UnpackSubanta()
		p, err := k.prati.Get(id)
		if err != nil {
			return PadaEntry{}, err
		}
		return PadaEntry{
			Type: TypeSubanta, Pratipadika: &p,
			Linga: linga, Vibhakti: vibhakti, Vacana: vacana, IsPurvapada: purvapada,
		}, nil
	case TypeTinanta:
		id, prayoga, lakara, purusha, vacana, atmane := entry.UnpackTinanta()
		d, err := k.dhatus.Get(id)
		if err != nil {
			return PadaEntry{}, err
		}
		return PadaEntry{
			Type: TypeTinanta, Dhatu: &d,
			Prayoga: prayoga, Lakara: lakara, Purusha: purusha, Vacana: vacana, IsAtmanepada: atmane,
		}, nil
	case TypeAvyaya:
		id := entry.UnpackAvyaya()
		p, err := k.prati.Get(id)
		if err != nil {
			return PadaEntry{}, err
		}
		return PadaEntry{Type: TypeAvyaya, Pratipadika: &p}, nil
	case TypeUnknown:
		return PadaEntry{Type: TypeUnknown}, nil
	}
	return PadaEntry{}, core.Error(core.EKOSHA, "kosha: cannot unpack entry with unrecognized type")
}

// StreamEntry is one (key, packed-entry) pair yielded by Stream.
type StreamEntry struct {
	Key   string
	Value PackedEntry
}

// Stream returns every (key, entry) pair in the kosha in ascending
// key order, flattening each key's entry list in the order it was
// built.
func (k *Kosha) Stream() []StreamEntry {
	var out []StreamEntry
	for _, key := range k.keys {
		node, ok := k.t.Find(key)
		if !ok {
			continue
		}
		vals, _ := node.Meta().([]PackedEntry)
		for _, v := range vals {
			out = append(out, StreamEntry{Key: key, Value: v})
		}
	}
	return out
}

func readFST(f *os.File) ([]string, [][]PackedEntry, error) {
	var version, count uint32
	if err := binary.Read(f, binary.LittleEndian, &version); err != nil {
		return nil, nil, err
	}
	if version != fstPackingVersion {
		return nil, nil, core.Error(core.EINVALIDFILE, "kosha: padas.fst has packing version %d, want %d", version, fstPackingVersion)
	}
	if err := binary.Read(f, binary.LittleEndian, &count); err != nil {
		return nil, nil, err
	}
	keys := make([]string, count)
	values := make([][]PackedEntry, count)
	for i := uint32(0); i < count; i++ {
		keyBytes, err := readLengthPrefixed(f)
		if err != nil {
			return nil, nil, err
		}
		keys[i] = string(keyBytes)

		var n uint32
		if err := binary.Read(f, binary.LittleEndian, &n); err != nil {
			return nil, nil, err
		}
		vals := make([]PackedEntry, n)
		for j := range vals {
			var raw uint32
			if err := binary.Read(f, binary.LittleEndian, &raw); err != nil {
				return nil, nil, err
			}
			vals[j] = PackedEntry(raw)
		}
		values[i] = vals
	}
	return keys, values, nil
}
