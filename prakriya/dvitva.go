package prakriya

import "github.com/ambuda-org/vidyut-go/core/sounds"

// cutvam maps a velar stop to its palatal counterpart, the
// substitution reduplication applies to an abhyāsa's initial velar
// (7.4.62 kuhoścuḥ).
var cutvam = map[byte]byte{'k': 'c', 'K': 'C', 'g': 'j', 'G': 'j'}

// abhyasaVowel maps a dhātu's first vowel to the vowel its abhyāsa
// carries. Vocalic ṛ/ḷ reduce to short a and a/i/u to their short
// grade; any other vowel (e, ai, o, au) is copied unchanged.
var abhyasaVowel = map[byte]byte{
	'a': 'a', 'A': 'a', 'i': 'i', 'I': 'i', 'u': 'u', 'U': 'u',
	'f': 'a', 'F': 'a', 'x': 'a', 'X': 'a',
}

// applyDvitva inserts a reduplicated abhyāsa before the term at index
// dhatuIndex, per the dvitva ("doubling") operation that every liṭ
// perfect and every San/Yan-sanādi derivation requires. Coverage is
// intentionally narrow: it produces the initial consonant+vowel
// syllable for a root beginning with a single velar or plain
// consonant followed by a or ṛ, which is what the seeded root table
// (dhatudata.go) exercises; the many further abhyāsa-specific
// substitutions of a complete dvitva implementation (retroflexion,
// aspirate deaspiration, samprasāraṇa roots, vowel-initial roots) are
// out of scope.
func applyDvitva(p *Prakriya, dhatuIndex int) {
	dhatu := p.Term(dhatuIndex)
	text := dhatu.Text
	if text == "" {
		return
	}
	var consonant byte
	var vowelIdx int
	if sounds.Hal.Contains(text[0]) {
		consonant = text[0]
		vowelIdx = 1
	} else {
		vowelIdx = 0
	}
	if vowelIdx >= len(text) || !sounds.Ac.Contains(text[vowelIdx]) {
		return
	}
	vowel := abhyasaVowel[text[vowelIdx]]
	if vowel == 0 {
		vowel = text[vowelIdx]
	}
	var abhyasaText string
	if consonant != 0 {
		if c, ok := cutvam[consonant]; ok {
			consonant = c
		}
		abhyasaText = string(consonant) + string(vowel)
	} else {
		abhyasaText = string(vowel)
	}
	abhyasa := NewTerm(abhyasaText, TagAbhyasa, TagAnga)
	p.InsertTerm(dhatuIndex, abhyasa)
}
