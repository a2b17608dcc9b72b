package prakriya

// Config controls derivation-wide behavior. The zero value is usable;
// DefaultConfig documents the defaults explicitly.
type Config struct {
	// LogSteps enables Tracer().Debugf output for every rule that
	// fires, in addition to the in-memory History kept on Prakriya.
	LogSteps bool
	// CacheCapacity is carried on the Config but not read: the
	// package-level derivation cache is created once with
	// defaultCacheCapacity entries and shared by every Derive* call.
	CacheCapacity int
}

// DefaultConfig returns the configuration used when a Derive* caller
// does not supply one.
func DefaultConfig() Config {
	return Config{LogSteps: false, CacheCapacity: defaultCacheCapacity}
}
