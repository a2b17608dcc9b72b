package prakriya

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Phase is one stage of the fixed derivation pipeline: dhātu-kārya,
// sanādi, pratyaya introduction, pratyaya-specific it-saṃjñā,
// vikaraṇa, saṃjñā, aṅga operations, internal sandhi, tripādī, svara.
// Each of the five Derive* operations runs its own phase list in
// strict sequence; see phase_*.go for the individual stages.
type Phase func(*Prakriya) error

// build constructs the initial term sequence (and any derivation-wide
// tags) for one run, before the phase pipeline executes.
type build func(*Prakriya) error

// runOnce executes one derivation attempt with forced as the
// already-decided prefix of optional-rule choices. If a phase aborts
// the path (see abort.go), runOnce reports that via the aborted
// return rather than as an error: p is still returned, with whatever
// decisions were recorded before the abort, so enumerate can keep
// forking the sibling choices that diverge earlier in the run.
func runOnce(config Config, forced []bool, b build, phases []Phase) (p *Prakriya, aborted bool, err error) {
	p = New(config)
	p.forced = forced
	if err := b(p); err != nil {
		if isAbort(err) {
			return p, true, nil
		}
		return nil, false, err
	}
	for _, phase := range phases {
		if err := phase(p); err != nil {
			if isAbort(err) {
				return p, true, nil
			}
			return nil, false, err
		}
	}
	return p, false, nil
}

// decisionSignature serializes a Prakriya's resolved decisions so
// enumerate can deduplicate derivations that land on the same choice
// sequence from different forced prefixes.
func decisionSignature(decisions []decision) string {
	var sb strings.Builder
	for _, d := range decisions {
		sb.WriteString(d.code)
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatBool(d.taken))
		sb.WriteByte(';')
	}
	return sb.String()
}

// enumerate explores every combination of optional-rule choices
// reachable from b, per spec.md §4.D/§9's PrakriyāStack: the worklist
// starts with the empty forced prefix, and after each run forks one
// new candidate per decision point beyond the forced prefix, flipping
// that single choice while keeping everything before it exactly as
// this run resolved it. Because each fork strictly extends the forced
// prefix, and a derivation has a bounded number of decision points,
// the worklist always drains.
func enumerate(config Config, b build, phases []Phase) ([]*Prakriya, error) {
	st := arraystack.New()
	st.Push([]bool(nil))
	seen := make(map[string]bool)
	var results []*Prakriya
	for !st.Empty() {
		v, _ := st.Pop()
		forced, _ := v.([]bool)
		p, aborted, err := runOnce(config, forced, b, phases)
		if err != nil {
			return nil, err
		}
		if !aborted {
			sig := decisionSignature(p.decisions)
			if !seen[sig] {
				seen[sig] = true
				results = append(results, p)
			}
		}
		for k := len(forced); k < len(p.decisions); k++ {
			prefix := make([]bool, k+1)
			for i := 0; i < k; i++ {
				prefix[i] = p.decisions[i].taken
			}
			prefix[k] = !p.decisions[k].taken
			st.Push(prefix)
		}
	}
	return results, nil
}

// cachedEnumerate wraps enumerate with the package-level LRU cache,
// keyed on operation name plus an already-serialized argument
// signature (the caller is responsible for making that signature
// unambiguous).
func cachedEnumerate(config Config, cacheKey string, b build, phases []Phase) ([]*Prakriya, error) {
	if cached, ok := packageCache.get(cacheKey); ok {
		return cached, nil
	}
	results, err := enumerate(config, b, phases)
	if err != nil {
		return nil, err
	}
	packageCache.put(cacheKey, results)
	return results, nil
}

// dhatuPhases is the fixed pipeline for DeriveTinantas
// (tiṅanta formation from a dhātu): dhātu-kārya, sanādi, pratyaya introduction,
// it-saṃjñā, vikaraṇa, saṃjñā, aṅga operations, internal sandhi,
// tripādī, svara.
func dhatuPhases() []Phase {
	return []Phase{
		runDhatukarya,
		runSanadi,
		runPratyayaIntroduction,
		runItSamjna,
		runVikarana,
		runSamjna,
		runAngaOperations,
		runInternalSandhi,
		runTripadi,
		runSvara,
	}
}

// dhatuPhasesOnly covers DeriveDhatus: no pratyaya is ever introduced,
// so the pipeline is just enough to produce the bare dhātu's own
// surface form (useful for sanādi-derived stems, e.g. a causative).
func dhatuPhasesOnly() []Phase {
	return []Phase{runDhatukarya, runSanadi, runInternalSandhi}
}

// subantaPhases covers DeriveSubantas: prātipadika-kārya, sup
// introduction, saṃjñā, internal sandhi, tripādī.
func subantaPhases() []Phase {
	return []Phase{
		runPratipadikaKarya,
		runStritva,
		runSupPratyayaIntroduction,
		runItSamjna,
		runSamjna,
		runInternalSandhi,
		runTripadi,
		runSvara,
	}
}

// krdantaPhases omits vikaraṇa introduction proper (most kṛt
// pratyayas attach directly to the aṅga) but otherwise follows the
// same sequence.
func krdantaPhases() []Phase {
	return []Phase{
		runDhatukarya,
		runSanadi,
		runKrtPratyayaIntroduction,
		runItSamjna,
		runSamjna,
		runAngaOperations,
		runInternalSandhi,
		runTripadi,
		runSvara,
	}
}
