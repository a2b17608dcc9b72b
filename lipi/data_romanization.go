package lipi

// slp1ToIastPairs is a direct character substitution table: both schemes
// are romanizations, so no abugida combinatorics are needed.
func slp1ToIastPairs() map[string]string {
	return map[string]string{
		"a": "a", "A": "ā", "i": "i", "I": "ī", "u": "u", "U": "ū",
		"f": "ṛ", "F": "ṝ", "x": "ḷ", "X": "ḹ",
		"e": "e", "E": "ai", "o": "o", "O": "au",
		"M": "ṃ", "H": "ḥ", "~": "m̐",
		"k": "k", "K": "kh", "g": "g", "G": "gh", "N": "ṅ",
		"c": "c", "C": "ch", "j": "j", "J": "jh", "Y": "ñ",
		"w": "ṭ", "W": "ṭh", "q": "ḍ", "Q": "ḍh", "R": "ṇ",
		"t": "t", "T": "th", "d": "d", "D": "dh", "n": "n",
		"p": "p", "P": "ph", "b": "b", "B": "bh", "m": "m",
		"y": "y", "r": "r", "l": "l", "v": "v",
		"S": "ś", "z": "ṣ", "s": "s", "h": "h",
		".": "|", "..": "||",
	}
}

// slp1ToHarvardKyotoPairs maps SLP1 to Harvard-Kyoto, an all-ASCII
// romanization that diverges from SLP1 mainly in how it marks retroflexes,
// palatals and long vowels.
func slp1ToHarvardKyotoPairs() map[string]string {
	return map[string]string{
		"a": "a", "A": "A", "i": "i", "I": "I", "u": "u", "U": "U",
		"f": "R", "F": "RR", "x": "lR", "X": "lRR",
		"e": "e", "E": "ai", "o": "o", "O": "au",
		"M": "M", "H": "H", "~": "~",
		"k": "k", "K": "kh", "g": "g", "G": "gh", "N": "G",
		"c": "c", "C": "ch", "j": "j", "J": "jh", "Y": "J",
		"w": "T", "W": "Th", "q": "D", "Q": "Dh", "R": "N",
		"t": "t", "T": "th", "d": "d", "D": "dh", "n": "n",
		"p": "p", "P": "ph", "b": "b", "B": "bh", "m": "m",
		"y": "y", "r": "r", "l": "l", "v": "v",
		"S": "z", "z": "S", "s": "s", "h": "h",
		".": "|", "..": "||",
	}
}
