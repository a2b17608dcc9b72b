package vedic

import (
	"strings"

	"github.com/ambuda-org/vidyut-go/lipi"
	"github.com/ambuda-org/vidyut-go/lipi/extensions"
)

// RigvedaShakala implements the accent notation of the Śākala recension of
// the Rigveda, the most commonly studied version: ' for udātta, _ for
// anudātta, = for svarita.
type RigvedaShakala struct {
	extensions.BaseExtension
}

// Name returns "Rigveda Shakala".
func (RigvedaShakala) Name() string { return "Rigveda Shakala" }

func (RigvedaShakala) accents() []AccentMark {
	return []AccentMark{
		{From: "'", To: "॑", Accent: Udatta},
		{From: "_", To: "॒", Accent: Anudatta},
		{From: "=", To: "॒॑", Accent: Svarita},
	}
}

func (RigvedaShakala) phonetics() []PhoneticMark {
	return []PhoneticMark{
		{From: "L", To: "ॢ"},
		{From: "LL", To: "ॣ"},
		{From: "M~", To: "ँ"},
		{From: "|", To: "।"},
		{From: "||", To: "॥"},
	}
}

// ExtendMapping adds this sakha's accent and phonetic marks to m.
func (e RigvedaShakala) ExtendMapping(m *lipi.Mapping) {
	extend(m, e.accents(), e.phonetics())
}

// PreProcess rewrites the numeric accent notation sometimes used for
// Rigvedic input (a3/a1/a2) into this sakha's own ASCII marks.
func (RigvedaShakala) PreProcess(text string) string {
	r := strings.NewReplacer("a3", "a'", "a1", "a_", "a2", "a=")
	return r.Replace(text)
}

// PostProcess collapses doubled accent marks that can arise when a word
// boundary places two identical marks adjacent to each other.
func (RigvedaShakala) PostProcess(text string) string {
	r := strings.NewReplacer("॑॑", "॑", "॒॒", "॒")
	return r.Replace(text)
}
