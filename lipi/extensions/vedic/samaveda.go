package vedic

import (
	"github.com/ambuda-org/vidyut-go/lipi"
	"github.com/ambuda-org/vidyut-go/lipi/extensions"
)

// SamavedaKauthuma implements the numeric accent notation of the Kauthuma
// recension, reflecting the Samaveda's more elaborate musical (svara)
// system: 1 for udātta, 2 for anudātta, 3 for svarita.
type SamavedaKauthuma struct {
	extensions.BaseExtension
}

// Name returns "Samaveda Kauthuma".
func (SamavedaKauthuma) Name() string { return "Samaveda Kauthuma" }

func (SamavedaKauthuma) accents() []AccentMark {
	return []AccentMark{
		{From: "1", To: "१", Accent: Udatta},
		{From: "2", To: "२", Accent: Anudatta},
		{From: "3", To: "३", Accent: Svarita},
	}
}

// ExtendMapping adds this sakha's accent marks to m. Samaveda has no
// phonetic marks beyond the base scheme table.
func (e SamavedaKauthuma) ExtendMapping(m *lipi.Mapping) {
	extend(m, e.accents(), nil)
}
