package nsga3

// NewDefaultConfig creates a default configuration for the selection
// engine. ObjectiveCount defaults to 2; PopulationSize must still be
// set.
func NewDefaultConfig() *Config {
	return &Config{
		ObjectiveCount:      2,
		ReferencePrecision:  4,
		PopulationSize:      0, // caller must set this
		RecordParetoFront:   true,
		ParetoFrontFrozen:   true,
		UseConcurrentAssoc:  false,
		ConcurrentThreshold: 5000,
	}
}

// NewManyObjectiveConfig creates a configuration tuned for larger
// objective counts (M>3), where reference-point count grows quickly
// and the concurrent Associator pays off sooner.
func NewManyObjectiveConfig() *Config {
	config := NewDefaultConfig()
	config.ObjectiveCount = 5
	config.ReferencePrecision = 3
	config.UseConcurrentAssoc = true
	config.ConcurrentThreshold = 2000
	return config
}

// NewBiObjectiveConfig creates a configuration tuned for the common
// two-objective case, matching the resolution used by spec scenario
// S1 (M=2, P=4).
func NewBiObjectiveConfig() *Config {
	config := NewDefaultConfig()
	config.ObjectiveCount = 2
	config.ReferencePrecision = 4
	return config
}
