package sounds

// Set is a membership set over the 128 ASCII bytes of the SLP1 alphabet.
//
// Ported from vidyut-akshara's `Set([u8; 128])`: array[i] is 1 if the byte
// with value i is a member, 0 otherwise.
type Set [128]bool

// NewSet builds a Set whose members are the bytes of text.
func NewSet(text string) Set {
	var s Set
	for i := 0; i < len(text); i++ {
		s[text[i]] = true
	}
	return s
}

// Contains reports whether c is a member of s.
func (s Set) Contains(c byte) bool {
	if int(c) >= len(s) {
		return false
	}
	return s[c]
}

// ContainsAny reports whether any byte of text is a member of s.
func (s Set) ContainsAny(text string) bool {
	for i := 0; i < len(text); i++ {
		if s.Contains(text[i]) {
			return true
		}
	}
	return false
}

// Union returns a new Set containing the members of s and other.
func (s Set) Union(other Set) Set {
	var out Set
	for i := range s {
		out[i] = s[i] || other[i]
	}
	return out
}

// traditionalOrder lists the SLP1 alphabet in the order Sanskrit grammar
// traditionally enumerates it: vowels, anusvara/visarga, then consonants
// by place and manner of articulation.
const traditionalOrder = "aAiIuUfFxXeEoOMHkKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzsh"

// String returns the members of s in traditional Sanskrit order.
func (s Set) String() string {
	buf := make([]byte, 0, len(traditionalOrder))
	for i := 0; i < len(traditionalOrder); i++ {
		c := traditionalOrder[i]
		if s.Contains(c) {
			buf = append(buf, c)
		}
	}
	return string(buf)
}

// Named sound sets, built once and never mutated. Grounded on
// vidyut-chandas/src/sounds.rs and vidyut-akshara/src/lib.rs.
var (
	// Ac is the set of Sanskrit vowels (ac-pratyahara).
	Ac = NewSet("aAiIuUfFxXeEoO")
	// Hal is the set of Sanskrit consonants (hal-pratyahara), including
	// the Vedic vocalic L.
	Hal = NewSet("kKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzshL")
	// Hrasva is the set of short vowels.
	Hrasva = NewSet("aiufx")
	// Dirgha is the set of long vowels.
	Dirgha = NewSet("AIUFXeEoO")
	// Ghosha is the set of voiced sounds.
	Ghosha = NewSet("aAiIuUfFxXeEoOhyvrlYNRnmgGjJqQdDbB")
	// Yan is the semivowels.
	Yan = NewSet("yvrl")
	// Anusvara and Visarga are the two standalone markers that are
	// neither vowels nor consonants but are part of the Sanskrit
	// alphabet.
	AnusvaraVisarga = NewSet("MH")
	// Sanskrit is the full alphabet: Ac, Hal, and anusvara/visarga.
	Sanskrit = Ac.Union(Hal).Union(AnusvaraVisarga)
)

// IsSamyogadi reports whether s begins with a consonant cluster, i.e. two
// consonants in a row.
func IsSamyogadi(s string) bool {
	if len(s) < 2 {
		return false
	}
	return Hal.Contains(s[0]) && Hal.Contains(s[1])
}
