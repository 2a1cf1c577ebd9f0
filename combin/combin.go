package combin

// Choose returns every strictly increasing m-element subset of {0,…,n-1}.
// Choose(n, 0) returns exactly one empty subset.
//
// Subsets are grown recursively: each subset of size m is a subset of size m-1
// drawn from a prefix {0,…,i-1}, followed by i. The result is ordered by the
// last element, then recursively by the prefix.
// Complexity: O(C(n,m)·m) time and memory.
func Choose(n, m int) [][]int {
	if m < 0 || n < 0 || m > n {
		return nil
	}
	if m == 0 {
		return [][]int{{}}
	}

	out := make([][]int, 0, Binomial(n, m))
	for i := m - 1; i < n; i++ {
		for _, prefix := range Choose(i, m-1) {
			sub := make([]int, m)
			copy(sub, prefix)
			sub[m-1] = i
			out = append(out, sub)
		}
	}

	return out
}

// Binomial returns C(n, m), or 0 when m is outside [0, n].
// Complexity: O(min(m, n-m)).
func Binomial(n, m int) int {
	if m < 0 || n < 0 || m > n {
		return 0
	}
	if m > n-m {
		m = n - m
	}
	r := 1
	for i := 1; i <= m; i++ {
		// exact at every step: r·(n-m+i) is divisible by i
		r = r * (n - m + i) / i
	}

	return r
}
