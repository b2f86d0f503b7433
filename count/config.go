package count

// Config tunes the counting engine the way meta.Config tunes the teacher's
// regex engine: a struct of documented knobs with a DefaultConfig
// constructor, never hard-coded magic numbers at the call site.
type Config struct {
	// MinShift is the memo table's minimum log2 bucket count, used for
	// sentences shorter than ShiftLengthThreshold words.
	// Default: 12.
	MinShift uint

	// MaxShift clamps the memo table's log2 bucket count.
	// Default: 24.
	MaxShift uint

	// ShiftLengthThreshold is the sentence length (in words) below which
	// MinShift is used directly.
	// Default: 10.
	ShiftLengthThreshold int

	// ShiftLengthDivisor controls how quickly the table grows with
	// sentence length once above ShiftLengthThreshold: shift = MinShift +
	// length/ShiftLengthDivisor.
	// Default: 6.
	ShiftLengthDivisor int

	// CheckInterval is how many find_or_reserve calls elapse between
	// polls of the resource budget.
	// Default: 450000.
	CheckInterval uint64

	// EnablePruning is a flag for callers that run the optional
	// conjunction-pruning pass (package prune, region_valid/mark_region)
	// themselves. Package count does not read it and never runs that pass.
	// Default: false.
	EnablePruning bool
}

// DefaultConfig returns the engine's default tuning, matching the values
// the spec documents.
func DefaultConfig() Config {
	return Config{
		MinShift:             12,
		MaxShift:             24,
		ShiftLengthThreshold: 10,
		ShiftLengthDivisor:   6,
		CheckInterval:        450000,
		EnablePruning:        false,
	}
}
