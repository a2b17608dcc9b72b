package prakriya

// Rule is one grammatical operation: Guard decides whether it applies
// to the current state of p, and Apply carries out the change. Code
// is the sūtra reference recorded into the derivation history when the
// rule fires. An Optional rule (vikalpa) may or may not fire even when
// its Guard holds — see Rule.Try, Prakriya.decide and the choice-enumeration
// worklist in engine.go.
type Rule struct {
	Code     string
	Optional bool
	Guard    func(*Prakriya) bool
	Apply    func(*Prakriya) error
}

// Try runs rule against p: if Guard rejects it, the rule does not fire
// (a nil Guard always holds); if Optional, the decision of whether to
// take it is resolved against p's forced-choice prefix (see
// Prakriya.decide). Returns whether the rule actually fired.
func (r Rule) Try(p *Prakriya) (bool, error) {
	if r.Guard != nil && !r.Guard(p) {
		return false, nil
	}
	taken := true
	if r.Optional {
		taken = p.decide(r.Code)
	}
	if !taken {
		return false, nil
	}
	if r.Apply != nil {
		if err := r.Apply(p); err != nil {
			return false, err
		}
	}
	p.Step(r.Code)
	return true, nil
}
