// Package fibonacci holds the deliberately naive Fibonacci computation shared
// by the foreground executor and the isolated worker.
//
// Recursive is intentionally exponential: its cost is what makes the
// difference between a blocked and a free event loop visible. It must not be
// memoized or rewritten iteratively.
package fibonacci

import (
	"fmt"

	apperrors "github.com/agbru/fibworker/internal/errors"
)

// Recursive returns the n-th Fibonacci number using naive double recursion.
//
// For n <= 1 it returns n unchanged, which includes negative inputs. Results
// above MaxExactN wrap around int64 silently. Inputs above MaxDepth overflow
// the stack; see CheckDepth.
func Recursive(n int64) int64 {
	if n <= 1 {
		return n
	}
	return Recursive(n-1) + Recursive(n-2)
}

// Calls returns how many times Recursive invokes itself (the root call
// included) when evaluating n. For n <= 1 this is a single call; otherwise it
// is 2*F(n+1) - 1. The count saturates at the uint64 maximum.
func Calls(n int64) uint64 {
	if n <= 1 {
		return 1
	}
	// F(n+1) by plain iteration; this is bookkeeping, not the computation.
	var a, b uint64 = 0, 1
	for i := int64(0); i < n; i++ {
		if b > (^uint64(0))-a {
			return ^uint64(0)
		}
		a, b = b, a+b
	}
	if b > (^uint64(0))/2 {
		return ^uint64(0)
	}
	return 2*b - 1
}

// CheckDepth returns an apperrors.ValidationError when n is above MaxDepth.
// Every context that runs Recursive in this process must call it first.
func CheckDepth(n int64) error {
	if n <= MaxDepth {
		return nil
	}
	return apperrors.ValidationError{
		Field:   "input",
		Message: fmt.Sprintf("%d is above the recursion limit of %d", n, MaxDepth),
	}
}

// Overflows reports whether F(n) exceeds the int64 range, in which case
// Recursive returns a wrapped value.
func Overflows(n int64) bool {
	return n > MaxExactN
}
