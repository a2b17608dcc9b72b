/*
Package extensions defines the pluggable hook into lipi's transliteration
pipeline. TransliterationExtension is the interface lipi.Lipika accepts;
concrete extensions (see the vedic subpackage) implement it to lay
sakha-specific accent notation on top of a base scheme mapping.
*/
package extensions

import "github.com/ambuda-org/vidyut-go/lipi"

// TransliterationExtension extends a Mapping at construction time and
// wraps the text passing through Lipika.Transliterate. It is satisfied
// by lipi.Extension; the duplicate declaration here is the public name
// callers import.
type TransliterationExtension interface {
	// Name identifies the extension, e.g. for diagnostics.
	Name() string
	// ExtendMapping adds or overrides entries on m, called once per
	// built Mapping.
	ExtendMapping(m *lipi.Mapping)
	// PreProcess runs on the input text before the scan.
	PreProcess(text string) string
	// PostProcess runs on the output text after the scan.
	PostProcess(text string) string
}

// BaseExtension supplies no-op PreProcess/PostProcess, so concrete
// extensions that only need ExtendMapping and Name can embed it instead
// of writing the identity functions themselves.
type BaseExtension struct{}

// PreProcess returns text unchanged.
func (BaseExtension) PreProcess(text string) string { return text }

// PostProcess returns text unchanged.
func (BaseExtension) PostProcess(text string) string { return text }
