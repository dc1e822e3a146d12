package fibonacci

import "testing"

// FuzzRecursiveMatchesIteration checks the naive recursion against a plain
// loop over the same int64 arithmetic, wraparound included.
func FuzzRecursiveMatchesIteration(f *testing.F) {
	for _, n := range []int64{-5, 0, 1, 2, 10, 20, 25} {
		f.Add(n)
	}

	f.Fuzz(func(t *testing.T, n int64) {
		// Keep iterations fast.
		if n > 25 {
			return
		}
		want := n
		if n > 1 {
			var a, b int64 = 0, 1
			for i := int64(1); i < n; i++ {
				a, b = b, a+b
			}
			want = b
		}
		if got := Recursive(n); got != want {
			t.Fatalf("Recursive(%d) = %d, want %d", n, got, want)
		}
	})
}
