/*
Package args defines the argument types accepted by prakriya's public
Derive* operations: DhatuArgs (a dhātu with an optional sanādi affix),
SubantaArgs (a declined prātipadika), TinantaArgs (a fully specified
finite verb form request wrapping DhatuArgs), KrdantaArgs (a kṛt
nominal derived from a dhātu), and SamasaArgs (a compound of two or
more prātipadika members).

Every builder follows the same shape: required fields are plain
struct fields, optional fields are core/option values, and Build()
fails with a core.EMISSINGFIELD error naming the first unset required
field rather than silently defaulting it. The one defaulted field is
TinantaArgs.Prayoga, a plain field that Build() sets to Kartari when
it is unset.
*/
package args
