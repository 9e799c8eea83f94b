// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"fmt"
	"sort"

	"github.com/dsnet/sais/internal"
)

type (
	Symbol = internal.Symbol
	Index  = internal.Index
)

// compareSuffix compares t[i:] and t[j:] and reports the common prefix.
func compareSuffix[T Symbol](t []T, i, j int) (cmp, lcp int) {
	for i+lcp < len(t) && j+lcp < len(t) {
		a, b := t[i+lcp], t[j+lcp]
		switch {
		case a < b:
			return -1, lcp
		case a > b:
			return +1, lcp
		}
		lcp++
	}
	switch {
	case i+lcp == len(t) && j+lcp == len(t):
		return 0, lcp
	case i+lcp == len(t):
		return -1, lcp
	default:
		return +1, lcp
	}
}

// NaiveSA computes the suffix array of t by comparison sorting.
func NaiveSA[T Symbol](t []T) []int {
	sa := make([]int, len(t))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(a, b int) bool {
		c, _ := compareSuffix(t, sa[a], sa[b])
		return c < 0
	})
	return sa
}

// CheckSA reports whether sa is the suffix array of t.
func CheckSA[T Symbol, I Index](t []T, sa []I) error {
	if len(sa) != len(t) {
		return fmt.Errorf("suffix array length %d, want %d", len(sa), len(t))
	}
	seen := make([]bool, len(t))
	for i, s := range sa {
		if s < 0 || int(s) >= len(t) || seen[s] {
			return fmt.Errorf("sa[%d] = %d is not a valid unique position", i, s)
		}
		seen[s] = true
	}
	for i := 1; i < len(sa); i++ {
		if c, _ := compareSuffix(t, int(sa[i-1]), int(sa[i])); c >= 0 {
			return fmt.Errorf("suffixes at sa[%d] = %d and sa[%d] = %d are out of order", i-1, sa[i-1], i, sa[i])
		}
	}
	return nil
}

// CheckLCP reports whether lcp is the longest-common-prefix array of t.
func CheckLCP[T Symbol, I Index](t []T, sa, lcp []I) error {
	if len(lcp) != len(sa) {
		return fmt.Errorf("lcp array length %d, want %d", len(lcp), len(sa))
	}
	for i := range lcp {
		var want int
		if i > 0 {
			_, want = compareSuffix(t, int(sa[i-1]), int(sa[i]))
		}
		if int(lcp[i]) != want {
			return fmt.Errorf("lcp[%d] = %d, want %d", i, lcp[i], want)
		}
	}
	return nil
}

// Freq counts the symbols of t over an alphabet of size k.
func Freq[T Symbol, I Index](t []T, k int) []I {
	freq := make([]I, k)
	for _, c := range t {
		freq[c]++
	}
	return freq
}

// NaiveBWT computes the transform of t with a sentinel that sorts first,
// along with its primary index and the auxiliary index sampled at rate r.
func NaiveBWT[T Symbol](t []T, r int) (u []T, primary int, aux []int) {
	n := len(t)
	u = make([]T, n)
	aux = make([]int, (n+r-1)/r+btoi(n == 0))
	if n <= 1 {
		copy(u, t)
		aux[0] = n
		return u, n, aux
	}
	j := 1
	u[0] = t[n-1]
	for i, s := range NaiveSA(t) {
		if s%r == 0 {
			aux[s/r] = i + 1
		}
		if s == 0 {
			primary = i + 1
			continue
		}
		u[j] = t[s-1]
		j++
	}
	return u, primary, aux
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Workspaces returns suffix array buffers of length n padded with several
// amounts of free space.
func Workspaces[I Index](n int) [][]I {
	return [][]I{
		make([]I, n),
		make([]I, n+256),
		make([]I, n+n/8),
	}
}
