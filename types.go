package stowatch

// DefaultMaxDepth bounds container nesting when ParseOpt.MaxDepth is unset.
// Recursion depth equals JSON nesting depth, so pathologically deep input is
// the one practical resource hazard for an otherwise pure parser.
const DefaultMaxDepth = 512

// ParseOpt bundles parsing options. When several are passed, the last wins.
type ParseOpt struct {
	// MaxDepth is the maximum container nesting depth before the parser
	// fails with nesting_too_deep. Zero selects DefaultMaxDepth.
	MaxDepth int
}
