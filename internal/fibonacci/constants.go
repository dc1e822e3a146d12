package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Input Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultN is the value pre-filled in the input control.
	DefaultN = 35

	// AdvisoryMin and AdvisoryMax bound the range suggested to the user.
	// They are shown as a hint only and never enforced.
	AdvisoryMin = 1
	AdvisoryMax = 50

	// MaxExactN is the largest n whose Fibonacci number fits in an int64.
	// F(92) = 7540113804746346429.
	MaxExactN = 92

	// MaxDepth is the largest n accepted for computation. Recursive nests n
	// calls deep, and exhausting the goroutine stack is a fatal error that
	// recover cannot catch. One million frames stays far below the default
	// 1 GB limit on 64-bit platforms.
	MaxDepth = 1_000_000
)
