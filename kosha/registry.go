package kosha

import (
	"encoding/binary"
	"io"

	"github.com/ambuda-org/vidyut-go/core"
)

const registryPackingVersion uint32 = 1

// DhatuRegistry interns Dhatu records, deduplicated by equality, and
// hands back the small integer id a PackedEntry's Tinanta layout
// stores in place of the full record.
type DhatuRegistry struct {
	records []Dhatu
	byKey   map[string]uint32
}

func newDhatuRegistry() *DhatuRegistry {
	return &DhatuRegistry{byKey: make(map[string]uint32)}
}

// Intern returns d's registry id, reusing an existing id if an
// equal record was already interned.
func (r *DhatuRegistry) Intern(d Dhatu) uint32 {
	key := d.dedupKey()
	if id, ok := r.byKey[key]; ok {
		return id
	}
	id := uint32(len(r.records))
	r.records = append(r.records, d)
	r.byKey[key] = id
	return id
}

// Get dereferences id against the registry.
func (r *DhatuRegistry) Get(id uint32) (Dhatu, error) {
	if int(id) >= len(r.records) {
		return Dhatu{}, core.Error(core.EUNKNOWNDHATUID, "kosha: no dhatu with id %d", id)
	}
	return r.records[id], nil
}

func (r *DhatuRegistry) writeTo(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, registryPackingVersion); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(r.records))); err != nil {
		return err
	}
	for _, d := range r.records {
		if err := writeLengthPrefixed(w, []byte(d.Upadesha)); err != nil {
			return err
		}
		if err := writeLengthPrefixed(w, []byte(d.Gana)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(len(d.Sanadis))); err != nil {
			return err
		}
		for _, s := range d.Sanadis {
			if err := writeLengthPrefixed(w, []byte(s)); err != nil {
				return err
			}
		}
	}
	return nil
}

func readDhatuRegistry(r io.Reader) (*DhatuRegistry, error) {
	var version, count uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if version != registryPackingVersion {
		return nil, core.Error(core.EINVALIDFILE, "kosha: dhatus.registry has packing version %d, want %d", version, registryPackingVersion)
	}
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	reg := newDhatuRegistry()
	for i := uint32(0); i < count; i++ {
		upadesha, err := readLengthPrefixed(r)
		if err != nil {
			return nil, err
		}
		gana, err := readLengthPrefixed(r)
		if err != nil {
			return nil, err
		}
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		sanadis := make([]string, n)
		for j := range sanadis {
			s, err := readLengthPrefixed(r)
			if err != nil {
				return nil, err
			}
			sanadis[j] = string(s)
		}
		d := Dhatu{Upadesha: string(upadesha), Gana: string(gana), Sanadis: sanadis}
		reg.byKey[d.dedupKey()] = uint32(len(reg.records))
		reg.records = append(reg.records, d)
	}
	return reg, nil
}

// PratipadikaRegistry interns Pratipadika records the same way
// DhatuRegistry interns Dhatu records.
type PratipadikaRegistry struct {
	records []Pratipadika
	byKey   map[string]uint32
}

func newPratipadikaRegistry() *PratipadikaRegistry {
	return &PratipadikaRegistry{byKey: make(map[string]uint32)}
}

func (r *PratipadikaRegistry) Intern(p Pratipadika) uint32 {
	key := p.dedupKey()
	if id, ok := r.byKey[key]; ok {
		return id
	}
	id := uint32(len(r.records))
	r.records = append(r.records, p)
	r.byKey[key] = id
	return id
}

func (r *PratipadikaRegistry) Get(id uint32) (Pratipadika, error) {
	if int(id) >= len(r.records) {
		return Pratipadika{}, core.Error(core.EUNKNOWNPRATIPADIKAID, "kosha: no pratipadika with id %d", id)
	}
	return r.records[id], nil
}

func (r *PratipadikaRegistry) writeTo(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, registryPackingVersion); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(r.records))); err != nil {
		return err
	}
	for _, p := range r.records {
		if err := binary.Write(w, binary.LittleEndian, uint32(p.Kind)); err != nil {
			return err
		}
		if err := writeLengthPrefixed(w, []byte(p.Text)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, p.DhatuID); err != nil {
			return err
		}
		if err := writeLengthPrefixed(w, []byte(p.Krt)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, p.StemID); err != nil {
			return err
		}
		if err := writeLengthPrefixed(w, []byte(p.Taddhita)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(len(p.MemberIDs))); err != nil {
			return err
		}
		for _, m := range p.MemberIDs {
			if err := binary.Write(w, binary.LittleEndian, m); err != nil {
				return err
			}
		}
		if err := writeLengthPrefixed(w, []byte(p.SamasaType)); err != nil {
			return err
		}
	}
	return nil
}

func readPratipadikaRegistry(r io.Reader) (*PratipadikaRegistry, error) {
	var version, count uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if version != registryPackingVersion {
		return nil, core.Error(core.EINVALIDFILE, "kosha: pratipadikas.registry has packing version %d, want %d", version, registryPackingVersion)
	}
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	reg := newPratipadikaRegistry()
	for i := uint32(0); i < count; i++ {
		var kind uint32
		if err := binary.Read(r, binary.LittleEndian, &kind); err != nil {
			return nil, err
		}
		text, err := readLengthPrefixed(r)
		if err != nil {
			return nil, err
		}
		var dhatuID uint32
		if err := binary.Read(r, binary.LittleEndian, &dhatuID); err != nil {
			return nil, err
		}
		krt, err := readLengthPrefixed(r)
		if err != nil {
			return nil, err
		}
		var stemID uint32
		if err := binary.Read(r, binary.LittleEndian, &stemID); err != nil {
			return nil, err
		}
		taddhita, err := readLengthPrefixed(r)
		if err != nil {
			return nil, err
		}
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		members := make([]uint32, n)
		for j := range members {
			if err := binary.Read(r, binary.LittleEndian, &members[j]); err != nil {
				return nil, err
			}
		}
		samasaType, err := readLengthPrefixed(r)
		if err != nil {
			return nil, err
		}
		p := Pratipadika{
			Kind: PratipadikaKind(kind), Text: string(text), DhatuID: dhatuID,
			Krt: string(krt), StemID: stemID, Taddhita: string(taddhita),
			MemberIDs: members, SamasaType: string(samasaType),
		}
		reg.byKey[p.dedupKey()] = uint32(len(reg.records))
		reg.records = append(reg.records, p)
	}
	return reg, nil
}

func writeLengthPrefixed(w io.Writer, b []byte) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readLengthPrefixed(r io.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

