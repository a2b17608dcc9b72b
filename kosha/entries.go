package kosha

import (
	"strconv"
	"strings"
)

// Dhatu is a verbal-root registry record: aupadeśika form, gaṇa, and
// the ordered sanādi affixes already folded into this derivation (two
// occurrences of the same root under different sanādi chains intern
// as distinct registry entries).
type Dhatu struct {
	Upadesha string
	Gana     string
	Sanadis  []string
}

func (d Dhatu) dedupKey() string {
	return d.Upadesha + "|" + d.Gana + "|" + strings.Join(d.Sanadis, ",")
}

// PratipadikaKind selects which of Pratipadika's variant fields is
// meaningful, mirroring spec.md's "literal text, krt-derivation,
// taddhita-derivation, samāsa, or stem+strī-pratyaya" enumeration.
type PratipadikaKind uint8

const (
	PratipadikaBasic PratipadikaKind = iota
	PratipadikaKrdanta
	PratipadikaTaddhita
	PratipadikaSamasa
	PratipadikaStri
)

// Pratipadika is a nominal-stem registry record. Because a
// prātipadika can recursively contain a dhātu (krt-derivation) or
// another prātipadika (taddhita, samāsa, strī-derivation), those
// relationships are stored as registry ids rather than nested values
// — the same arena-plus-indices discipline the dhātu registry itself
// exists for.
type Pratipadika struct {
	Kind PratipadikaKind

	// PratipadikaBasic
	Text string

	// PratipadikaKrdanta
	DhatuID uint32
	Krt     string

	// PratipadikaTaddhita / PratipadikaStri: the prātipadika this one
	// derives from.
	StemID   uint32
	Taddhita string // PratipadikaTaddhita only

	// PratipadikaSamasa
	MemberIDs  []uint32
	SamasaType string
}

func (p Pratipadika) dedupKey() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(p.Kind)))
	sb.WriteByte('|')
	sb.WriteString(p.Text)
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatUint(uint64(p.DhatuID), 10))
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatUint(uint64(p.StemID), 10))
	sb.WriteByte('|')
	sb.WriteString(strings.Join(memberStrings(p.MemberIDs), ","))
	sb.WriteByte('|')
	sb.WriteString(p.SamasaType)
	sb.WriteByte('|')
	sb.WriteString(p.Krt)
	sb.WriteByte('|')
	sb.WriteString(p.Taddhita)
	return sb.String()
}

func memberStrings(ids []uint32) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatUint(uint64(id), 10)
	}
	return out
}

// PadaEntry is the reconstructed, fully-dereferenced form of a
// PackedEntry: either a Subanta, a Tinanta, an Avyaya, or Unknown.
type PadaEntry struct {
	Type        EntryType
	Pratipadika *Pratipadika
	Dhatu       *Dhatu
	Linga       uint32
	Vibhakti    uint32
	Vacana      uint32
	IsPurvapada bool
	Prayoga     uint32
	Lakara      uint32
	Purusha     uint32
	IsAtmanepada bool
}

// Lemma returns the dictionary headword backing this entry: the
// prātipadika's literal text for a Subanta/Avyaya, or the dhātu's
// upadeśa for a Tinanta. Empty for Unknown.
func (e PadaEntry) Lemma() string {
	switch e.Type {
	case TypeSubanta, TypeAvyaya:
		if e.Pratipadika != nil {
			return e.Pratipadika.Text
		}
	case TypeTinanta:
		if e.Dhatu != nil {
			return e.Dhatu.Upadesha
		}
	}
	return ""
}
