package lipi

// devanagariConsonants maps each SLP1 consonant letter to its bare
// Devanagari consonant glyph (i.e. the glyph that, unadorned, carries the
// inherent "a").
var devanagariConsonants = map[string]string{
	"k": "क", "K": "ख", "g": "ग", "G": "घ", "N": "ङ",
	"c": "च", "C": "छ", "j": "ज", "J": "झ", "Y": "ञ",
	"w": "ट", "W": "ठ", "q": "ड", "Q": "ढ", "R": "ण",
	"t": "त", "T": "थ", "d": "द", "D": "ध", "n": "न",
	"p": "प", "P": "फ", "b": "ब", "B": "भ", "m": "म",
	"y": "य", "r": "र", "l": "ल", "v": "व",
	"S": "श", "z": "ष", "s": "स", "h": "ह",
}

// devanagariVowelSigns maps each SLP1 vowel to the matra (vowel sign) that
// attaches to a preceding consonant. "a" carries an empty sign: the
// inherent vowel needs no diacritic.
var devanagariVowelSigns = map[string]string{
	"a": "", "A": "ा", "i": "ि", "I": "ी", "u": "ु", "U": "ू",
	"f": "ृ", "F": "ॄ", "x": "ॢ", "X": "ॣ",
	"e": "े", "E": "ै", "o": "ो", "O": "ौ",
}

// devanagariVowelsIndependent maps each SLP1 vowel to its freestanding
// (word-initial / post-vowel) Devanagari letter.
var devanagariVowelsIndependent = map[string]string{
	"a": "अ", "A": "आ", "i": "इ", "I": "ई", "u": "उ", "U": "ऊ",
	"f": "ऋ", "F": "ॠ", "x": "ऌ", "X": "ॡ",
	"e": "ए", "E": "ऐ", "o": "ओ", "O": "औ",
}

const devanagariViraama = "्"

var devanagariMisc = map[string]string{
	"M": "ं", "H": "ः", "~": "ँ",
	".": "।", "..": "॥",
}

var devanagariDigits = map[string]string{
	"0": "०", "1": "१", "2": "२", "3": "३", "4": "४",
	"5": "५", "6": "६", "7": "७", "8": "८", "9": "९",
}

// slp1ToDevanagariPairs combinatorially builds the full SLP1 -> Devanagari
// table: every consonant crossed with every vowel sign (inherent "a"
// included), a virama fallback for a consonant with no following vowel,
// the independent vowels, and the miscellaneous/digit tokens.
func slp1ToDevanagariPairs() map[string]string {
	pairs := make(map[string]string, len(devanagariConsonants)*(len(devanagariVowelSigns)+1)+32)
	for c, cg := range devanagariConsonants {
		for v, sign := range devanagariVowelSigns {
			pairs[c+v] = cg + sign
		}
		pairs[c] = cg + devanagariViraama
	}
	for v, ig := range devanagariVowelsIndependent {
		pairs[v] = ig
	}
	for k, v := range devanagariMisc {
		pairs[k] = v
	}
	for k, v := range devanagariDigits {
		pairs[k] = v
	}
	return pairs
}

// invertPairs swaps key and value for every entry of pairs. The SLP1 <->
// Devanagari correspondence built by slp1ToDevanagariPairs is injective
// (every Devanagari rendering is produced by exactly one SLP1 key), so
// the inverse is itself a valid longest-match table.
func invertPairs(pairs map[string]string) map[string]string {
	out := make(map[string]string, len(pairs))
	for k, v := range pairs {
		out[v] = k
	}
	return out
}
