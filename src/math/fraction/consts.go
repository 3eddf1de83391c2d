package fraction

const (
	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63

	// evalPrecision is the number of significant digits printed by PrintEvaluated.
	evalPrecision = 6
)
