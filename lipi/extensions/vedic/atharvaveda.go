package vedic

import (
	"github.com/ambuda-org/vidyut-go/lipi"
	"github.com/ambuda-org/vidyut-go/lipi/extensions"
)

// AtharvavedaShaunaka implements the Śaunaka recension's simplified accent
// notation, sharing Rigveda Śākala's udātta/anudātta marks but with no
// separate svarita notation.
type AtharvavedaShaunaka struct {
	extensions.BaseExtension
}

// Name returns "Atharvaveda Saunaka".
func (AtharvavedaShaunaka) Name() string { return "Atharvaveda Saunaka" }

func (AtharvavedaShaunaka) accents() []AccentMark {
	return []AccentMark{
		{From: "'", To: "॑", Accent: Udatta},
		{From: "_", To: "॒", Accent: Anudatta},
	}
}

// ExtendMapping adds this sakha's accent marks to m.
func (e AtharvavedaShaunaka) ExtendMapping(m *lipi.Mapping) {
	extend(m, e.accents(), nil)
}
