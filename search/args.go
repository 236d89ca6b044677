package search

// Tuning constants for the search. Kept named rather than inlined, since
// their exact values (and the optimistic 2.0 implied mean of R0/V0) are
// load-bearing.
const (
	// RAVEBeta blends the mean value and RAVE value in the selection score.
	RAVEBeta = 0.5

	// RAVEPriorVisits (R0) and RAVEPriorValue (V0) seed a child's RAVE
	// statistics at creation so RAVE values are well-defined on first use.
	// Their ratio is an optimistic virtual mean of 2, intentionally
	// influential until real samples dominate.
	RAVEPriorVisits = 10.0
	RAVEPriorValue  = 20.0

	// DefaultIterationCap is the default per-move simulation budget.
	DefaultIterationCap = 900_000
)
