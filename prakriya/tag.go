package prakriya

import "github.com/emirpasic/gods/sets/hashset"

// Tag is a closed label attached to a Term or to the Prakriya itself,
// recording a grammatical property relevant to later rule guards (a
// saṃjñā, a prayoga/puruṣa/vacana choice, or a bookkeeping marker such
// as "this term is the result of reduplication").
type Tag string

const (
	TagDhatu     Tag = "Dhatu"
	TagPratyaya  Tag = "Pratyaya"
	TagVikarana  Tag = "Vikarana"
	TagAbhyasa   Tag = "Abhyasa"
	TagPrefix    Tag = "Prefix" // upasarga
	TagSamasa    Tag = "Samasa"
	TagKrt       Tag = "Krt"
	TagTin       Tag = "Tin"
	TagSup       Tag = "Sup"
	TagStri      Tag = "Stri" // feminine-stem marker, see stritva.go
	TagAnga      Tag = "Anga"
	TagPada      Tag = "Pada"
	TagGuna      Tag = "Guna"
	TagVrddhi    Tag = "Vrddhi"
	TagIt        Tag = "It" // the term is itself an it-marker fragment, not surface text
	TagKartari   Tag = "Kartari"
	TagBhave     Tag = "Bhave"
	TagKarmani   Tag = "Karmani"
	TagParasmai  Tag = "Parasmaipada"
	TagAtmane    Tag = "Atmanepada"
	TagSarvadhatuka Tag = "Sarvadhatuka"
	TagArdhadhatuka Tag = "Ardhadhatuka"
)

// newTagSet creates an empty tag set.
func newTagSet(tags ...Tag) *hashset.Set {
	s := hashset.New()
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

func hasTag(s *hashset.Set, t Tag) bool {
	return s != nil && s.Contains(t)
}
