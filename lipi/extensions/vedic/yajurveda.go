package vedic

import (
	"github.com/ambuda-org/vidyut-go/lipi"
	"github.com/ambuda-org/vidyut-go/lipi/extensions"
)

// TaittiriyaYajurveda implements the Extended Baraha ASCII notation used
// in udapaana for the Taittirīya recension: # for udātta, q for anudātta.
type TaittiriyaYajurveda struct {
	extensions.BaseExtension
}

// Name returns "Taittiriya Yajurveda".
func (TaittiriyaYajurveda) Name() string { return "Taittiriya Yajurveda" }

func (TaittiriyaYajurveda) accents() []AccentMark {
	return []AccentMark{
		{From: "#", To: "॑", Accent: Udatta},
		{From: "q", To: "॒", Accent: Anudatta},
		{From: "=", To: "॓", Accent: Svarita},
	}
}

func (TaittiriyaYajurveda) phonetics() []PhoneticMark {
	return []PhoneticMark{
		{From: "(gm)", To: "ṁ"},
		{From: "(gg)", To: "g̃"},
		{From: "~M", To: "ṁ"},
		{From: "L", To: "ॢ"},
		{From: "LL", To: "ॣ"},
	}
}

// ExtendMapping adds this sakha's accent and phonetic marks to m.
func (e TaittiriyaYajurveda) ExtendMapping(m *lipi.Mapping) {
	extend(m, e.accents(), e.phonetics())
}
