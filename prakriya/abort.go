package prakriya

import "github.com/ambuda-org/vidyut-go/core"

// abort signals that the derivation path currently running is
// grammatically inadmissible — e.g. a closed-enum combination with no
// seeded paradigm cell. The engine (runOnce/enumerate) recognizes this
// error kind and abandons only this path: the rule choices already
// recorded on p remain available so enumerate can still fork the
// sibling paths that diverge before the point of failure, per
// spec.md §4.D/§7/§8's "engine aborts that path but still harvests
// the rule_choices collected so far" requirement.
func abort(format string, args ...interface{}) error {
	return core.Error(core.EABORT, format, args...)
}

// isAbort reports whether err is the abort signal defined above, as
// opposed to a genuine failure that should stop the whole enumeration.
func isAbort(err error) bool {
	return core.Code(err) == core.EABORT
}
