package prakriya

import "github.com/ambuda-org/vidyut-go/prakriya/args"

// request-scoped argument fields. Exactly one of dhatu/tinanta/krdanta/
// samasa is populated per run, matching whichever Derive* operation
// started it; phases read whichever field is relevant to the pipeline
// they belong to. subanta is the one exception: DeriveSubantas
// populates it directly, but runSamasaKarya also synthesizes one
// partway through a samasa run so that runStritva and
// runSupPratyayaIntroduction can be reused unchanged for the finished
// compound's own sup-pratyaya.
type requestArgs struct {
	dhatu   *args.DhatuArgs
	tinanta *args.TinantaArgs
	krdanta *args.KrdantaArgs
	subanta *args.SubantaArgs
	samasa  *args.SamasaArgs
}
