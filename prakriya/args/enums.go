package args

import "github.com/ambuda-org/vidyut-go/core"

// Gana is one of the ten traditional dhātu classes, each associated
// with its own vikaraṇa.
type Gana string

const (
	Bhvadi    Gana = "Bhvadi"
	Adadi     Gana = "Adadi"
	Juhotyadi Gana = "Juhotyadi"
	Divadi    Gana = "Divadi"
	Svadi     Gana = "Svadi"
	Tudadi    Gana = "Tudadi"
	Rudhadi   Gana = "Rudhadi"
	Tanadi    Gana = "Tanadi"
	Kryadi    Gana = "Kryadi"
	Curadi    Gana = "Curadi"
)

var ganas = map[Gana]bool{
	Bhvadi: true, Adadi: true, Juhotyadi: true, Divadi: true, Svadi: true,
	Tudadi: true, Rudhadi: true, Tanadi: true, Kryadi: true, Curadi: true,
}

// ParseGana validates s against the closed set of gaṇas.
func ParseGana(s string) (Gana, error) {
	g := Gana(s)
	if !ganas[g] {
		return "", core.Error(core.EENUMPARSE, "args: %q is not a recognized gana", s)
	}
	return g, nil
}

// Lakara is one of the eleven traditional tense/mood markers.
type Lakara string

const (
	Lat  Lakara = "Lat"  // present
	Lit  Lakara = "Lit"  // perfect
	Lut  Lakara = "Lut"  // periphrastic future
	Lrt  Lakara = "Lrt"  // simple future
	Let  Lakara = "Let"  // Vedic subjunctive
	Lot  Lakara = "Lot"  // imperative
	Lan  Lakara = "Lan"  // imperfect
	VidhiLin Lakara = "VidhiLin" // optative
	AshirLin Lakara = "AshirLin" // benedictive
	Lun  Lakara = "Lun"  // aorist
	Lrn  Lakara = "Lrn"  // conditional
)

var lakaras = map[Lakara]bool{
	Lat: true, Lit: true, Lut: true, Lrt: true, Let: true, Lot: true, Lan: true,
	VidhiLin: true, AshirLin: true, Lun: true, Lrn: true,
}

// ParseLakara validates s against the closed set of lakāras.
func ParseLakara(s string) (Lakara, error) {
	l := Lakara(s)
	if !lakaras[l] {
		return "", core.Error(core.EENUMPARSE, "args: %q is not a recognized lakara", s)
	}
	return l, nil
}

// Prayoga selects the voice of a tiṅanta: kartari (active), karmani
// (passive), or bhave (impersonal passive).
type Prayoga string

const (
	Kartari Prayoga = "Kartari"
	Karmani Prayoga = "Karmani"
	Bhave   Prayoga = "Bhave"
)

var prayogas = map[Prayoga]bool{Kartari: true, Karmani: true, Bhave: true}

// ParsePrayoga validates s against the closed set of prayogas.
func ParsePrayoga(s string) (Prayoga, error) {
	p := Prayoga(s)
	if !prayogas[p] {
		return "", core.Error(core.EENUMPARSE, "args: %q is not a recognized prayoga", s)
	}
	return p, nil
}

// Purusha is grammatical person.
type Purusha string

const (
	Prathama Purusha = "Prathama" // 3rd
	Madhyama Purusha = "Madhyama" // 2nd
	Uttama   Purusha = "Uttama"   // 1st
)

var purushas = map[Purusha]bool{Prathama: true, Madhyama: true, Uttama: true}

// ParsePurusha validates s against the closed set of puruṣas.
func ParsePurusha(s string) (Purusha, error) {
	pu := Purusha(s)
	if !purushas[pu] {
		return "", core.Error(core.EENUMPARSE, "args: %q is not a recognized purusha", s)
	}
	return pu, nil
}

// Vacana is grammatical number.
type Vacana string

const (
	Eka  Vacana = "Eka"
	Dvi  Vacana = "Dvi"
	Bahu Vacana = "Bahu"
)

var vacanas = map[Vacana]bool{Eka: true, Dvi: true, Bahu: true}

// ParseVacana validates s against the closed set of vacanas.
func ParseVacana(s string) (Vacana, error) {
	v := Vacana(s)
	if !vacanas[v] {
		return "", core.Error(core.EENUMPARSE, "args: %q is not a recognized vacana", s)
	}
	return v, nil
}

// Linga is grammatical gender, relevant to subanta/samasa formation.
type Linga string

const (
	Pum    Linga = "Pum"
	Stri   Linga = "Stri"
	Napum  Linga = "Napumsaka"
)

var lingas = map[Linga]bool{Pum: true, Stri: true, Napum: true}

// ParseLinga validates s against the closed set of liṅgas.
func ParseLinga(s string) (Linga, error) {
	li := Linga(s)
	if !lingas[li] {
		return "", core.Error(core.EENUMPARSE, "args: %q is not a recognized linga", s)
	}
	return li, nil
}

// Vibhakti is nominal case (1st through 7th, plus sambodhana).
type Vibhakti string

const (
	VibhaktiPrathama  Vibhakti = "V1"
	VibhaktiDvitiya   Vibhakti = "V2"
	VibhaktiTrtiya    Vibhakti = "V3"
	VibhaktiCaturthi  Vibhakti = "V4"
	VibhaktiPanchami  Vibhakti = "V5"
	VibhaktiShashthi  Vibhakti = "V6"
	VibhaktiSaptami   Vibhakti = "V7"
	VibhaktiSambodhana Vibhakti = "V8"
)

var vibhaktis = map[Vibhakti]bool{
	VibhaktiPrathama: true, VibhaktiDvitiya: true, VibhaktiTrtiya: true,
	VibhaktiCaturthi: true, VibhaktiPanchami: true, VibhaktiShashthi: true,
	VibhaktiSaptami: true, VibhaktiSambodhana: true,
}

// ParseVibhakti validates s against the closed set of vibhaktis.
func ParseVibhakti(s string) (Vibhakti, error) {
	vi := Vibhakti(s)
	if !vibhaktis[vi] {
		return "", core.Error(core.EENUMPARSE, "args: %q is not a recognized vibhakti", s)
	}
	return vi, nil
}

// Sanadi is an optional derivational affix applied to a dhātu before
// tiṅanta formation proper (causative, desiderative, intensive,
// denominative).
type Sanadi string

const (
	Nic    Sanadi = "Nic"    // causative
	San    Sanadi = "San"    // desiderative
	Yan    Sanadi = "Yan"    // intensive
	YanLuk Sanadi = "YanLuk" // intensive with the yan affix elided (yan-luk)
	Kyac   Sanadi = "Kyac"   // denominative
)

var sanadis = map[Sanadi]bool{Nic: true, San: true, Yan: true, YanLuk: true, Kyac: true}

// ParseSanadi validates s against the closed set of sanādi affixes.
func ParseSanadi(s string) (Sanadi, error) {
	sa := Sanadi(s)
	if !sanadis[sa] {
		return "", core.Error(core.EENUMPARSE, "args: %q is not a recognized sanadi", s)
	}
	return sa, nil
}

// Krt is one of the nominal/participial affixes derivable directly
// from a dhātu.
type Krt string

const (
	Ktva Krt = "Ktva" // gerund ("-tvā")
	Tumun Krt = "Tumun" // infinitive
	Lyap Krt = "Lyap" // gerund with a prefixed dhātu
	Shatr Krt = "Shatr" // present active participle
	Shanac Krt = "Shanac" // present middle participle
	Kta Krt = "Kta" // past passive participle
	Ktavatu Krt = "Ktavatu" // past active participle
)

var krts = map[Krt]bool{
	Ktva: true, Tumun: true, Lyap: true, Shatr: true, Shanac: true,
	Kta: true, Ktavatu: true,
}

// ParseKrt validates s against the closed set of kṛt-pratyayas.
func ParseKrt(s string) (Krt, error) {
	k := Krt(s)
	if !krts[k] {
		return "", core.Error(core.EENUMPARSE, "args: %q is not a recognized krt", s)
	}
	return k, nil
}

// SamasaType is the traditional classification of a compound.
type SamasaType string

const (
	Tatpurusha   SamasaType = "Tatpurusha"
	Karmadharaya SamasaType = "Karmadharaya"
	Dvigu        SamasaType = "Dvigu"
	Bahuvrihi    SamasaType = "Bahuvrihi"
	Dvandva      SamasaType = "Dvandva"
	Avyayibhava  SamasaType = "Avyayibhava"
)

var samasaTypes = map[SamasaType]bool{
	Tatpurusha: true, Karmadharaya: true, Dvigu: true, Bahuvrihi: true,
	Dvandva: true, Avyayibhava: true,
}

// ParseSamasaType validates s against the closed set of compound
// classifications.
func ParseSamasaType(s string) (SamasaType, error) {
	t := SamasaType(s)
	if !samasaTypes[t] {
		return "", core.Error(core.EENUMPARSE, "args: %q is not a recognized samasa type", s)
	}
	return t, nil
}
