package kosha

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/ambuda-org/vidyut-go/core"
)

const fstPackingVersion uint32 = 1

// Builder accumulates (key, PadaEntry) pairs, strictly ascending by
// key, and writes the resulting kosha directory on Finish.
type Builder struct {
	dhatus  *DhatuRegistry
	prati   *PratipadikaRegistry
	keys    []string
	values  [][]PackedEntry
	lastKey string
	started bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{dhatus: newDhatuRegistry(), prati: newPratipadikaRegistry()}
}

// Add interns any dhātu/prātipadika e references, packs the result,
// and appends (key, packed) to the builder. key must be strictly
// greater than every key Add has already seen (the Kosha on-disk
// format, like the fst crate it substitutes for, requires ascending
// construction order).
func (b *Builder) Add(key string, e PadaEntry) error {
	if b.started && key <= b.lastKey {
		return core.Error(core.EKOSHA, "kosha: Builder.Add got key %q out of ascending order (last was %q)", key, b.lastKey)
	}
	b.started = true
	b.lastKey = key

	packed, err := b.pack(e)
	if err != nil {
		return err
	}
	if n := len(b.keys); n > 0 && b.keys[n-1] == key {
		b.values[n-1] = append(b.values[n-1], packed)
		return nil
	}
	b.keys = append(b.keys, key)
	b.values = append(b.values, []PackedEntry{packed})
	return nil
}

func (b *Builder) pack(e PadaEntry) (PackedEntry, error) {
	switch e.Type {
	case TypeSubanta:
		id := b.internPratipadika(e.Pratipadika)
		return PackSubanta(id, e.Linga, e.Vibhakti, e.Vacana, e.IsPurvapada), nil
	case TypeTinanta:
		id := b.internDhatu(e.Dhatu)
		return PackTinanta(id, e.Prayoga, e.Lakara, e.Purusha, e.Vacana, e.IsAtmanepada), nil
	case TypeAvyaya:
		id := b.internPratipadika(e.Pratipadika)
		return PackAvyaya(id), nil
	case TypeUnknown:
		return PackUnknown(), nil
	}
	return 0, core.Error(core.EKOSHA, "kosha: Builder.Add got an entry with unrecognized type %d", e.Type)
}

func (b *Builder) internDhatu(d *Dhatu) uint32 {
	if d == nil {
		return 0
	}
	return b.dhatus.Intern(*d)
}

func (b *Builder) internPratipadika(p *Pratipadika) uint32 {
	if p == nil {
		return 0
	}
	return b.prati.Intern(*p)
}

// Finish writes padas.fst, dhatus.registry, and pratipadikas.registry
// to dir, creating it if necessary.
func (b *Builder) Finish(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return core.WrapError(err, core.EIO, "kosha: could not create %s", dir)
	}

	padasPath := filepath.Join(dir, "padas.fst")
	f, err := os.Create(padasPath)
	if err != nil {
		return core.WrapError(err, core.EIO, "kosha: could not create %s", padasPath)
	}
	defer f.Close()
	if err := writeFST(f, b.keys, b.values); err != nil {
		return core.WrapError(err, core.EKOSHA, "kosha: could not write %s", padasPath)
	}

	dhatusPath := filepath.Join(dir, "dhatus.registry")
	df, err := os.Create(dhatusPath)
	if err != nil {
		return core.WrapError(err, core.EIO, "kosha: could not create %s", dhatusPath)
	}
	defer df.Close()
	if err := b.dhatus.writeTo(df); err != nil {
		return core.WrapError(err, core.EKOSHA, "kosha: could not write %s", dhatusPath)
	}

	pratiPath := filepath.Join(dir, "pratipadikas.registry")
	pf, err := os.Create(pratiPath)
	if err != nil {
		return core.WrapError(err, core.EIO, "kosha: could not create %s", pratiPath)
	}
	defer pf.Close()
	if err := b.prati.writeTo(pf); err != nil {
		return core.WrapError(err, core.EKOSHA, "kosha: could not write %s", pratiPath)
	}
	return nil
}

func writeFST(w *os.File, keys []string, values [][]PackedEntry) error {
	if err := binary.Write(w, binary.LittleEndian, fstPackingVersion); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(keys))); err != nil {
		return err
	}
	for i, key := range keys {
		if err := writeLengthPrefixed(w, []byte(key)); err != nil {
			return err
		}
		vals := values[i]
		if err := binary.Write(w, binary.LittleEndian, uint32(len(vals))); err != nil {
			return err
		}
		for _, v := range vals {
			if err := binary.Write(w, binary.LittleEndian, uint32(v)); err != nil {
				return err
			}
		}
	}
	return nil
}
