package core

// Metrics records ledger and generation outcomes
type Metrics interface {
	// LedgerOperation counts a ledger mutation by kind and outcome
	LedgerOperation(kind string, outcome string, amount int64)
	// GenerationOutcome counts an orchestrated request reaching a terminal state
	GenerationOutcome(kind string, state string)
	// ObserveGeneration records how long the external capability took
	ObserveGeneration(kind string, elapsed Duration)
}
