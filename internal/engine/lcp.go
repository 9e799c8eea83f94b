// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package engine

import (
	"github.com/dsnet/sais/internal"
	"github.com/dsnet/sais/internal/workers"
)

// PLCP computes the permuted longest-common-prefix array of t[:n] from its
// suffix array sa[:n] into plcp[:n], such that plcp[sa[i]] is the length of
// the common prefix of the suffixes at sa[i-1] and sa[i].
//
// The array is first filled with phi, the suffix preceding each suffix in
// sorted order, and then rewritten left to right. Since plcp[i+1] is at least
// plcp[i]-1, carrying the match length across positions makes the rewrite
// linear. Parallel blocks start their own carry at zero, which only costs
// extra comparisons.
func PLCP[T internal.Symbol, I internal.Index](t []T, sa, plcp []I, n I, threads int) int64 {
	if !validSizes(int64(n), len(t), len(sa), len(plcp)) || threads < 1 {
		return statusIllegal
	}
	t, sa, plcp = t[:n], sa[:n], plcp[:n]

	rs := blocks(len(sa), threads)
	err := workers.Run(rs, func(_ int, rg workers.Range) error {
		for i := rg.Lo; i < rg.Hi; i++ {
			s := sa[i]
			if s < 0 || s >= n {
				return status(statusIllegal)
			}
			if i == 0 {
				plcp[s] = -1
			} else {
				plcp[s] = sa[i-1]
			}
		}
		return nil
	})
	if err != nil {
		return statusOf(err)
	}

	err = workers.Run(rs, func(_ int, rg workers.Range) error {
		var l int
		for i := rg.Lo; i < rg.Hi; i++ {
			j := int(plcp[i])
			if j < 0 {
				if j != -1 {
					return status(statusIllegal)
				}
				plcp[i], l = 0, 0
				continue
			}
			if j >= len(t) {
				return status(statusIllegal)
			}
			for i+l < len(t) && j+l < len(t) && t[i+l] == t[j+l] {
				l++
			}
			plcp[i] = I(l)
			if l > 0 {
				l--
			}
		}
		return nil
	})
	return statusOf(err)
}

// LCP computes the longest-common-prefix array lcp[:n] from plcp[:n] and the
// suffix array sa[:n], where lcp[i] = plcp[sa[i]]. The output may alias sa,
// but not plcp.
func LCP[I internal.Index](plcp, sa, lcp []I, n I, threads int) int64 {
	if !validSizes(int64(n), len(plcp), len(sa), len(lcp)) || threads < 1 {
		return statusIllegal
	}
	plcp, sa, lcp = plcp[:n], sa[:n], lcp[:n]

	err := workers.Run(blocks(len(sa), threads), func(_ int, rg workers.Range) error {
		for i := rg.Lo; i < rg.Hi; i++ {
			s := sa[i]
			if s < 0 || s >= n {
				return status(statusIllegal)
			}
			lcp[i] = plcp[s]
		}
		return nil
	})
	return statusOf(err)
}
