// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

import "github.com/dsnet/sais/internal"

// computeSA requires that sa is cleared and that len(tmp) >= textMax.
func computeSA[T internal.Symbol, I internal.Index](text []T, textMax int, sa, tmp []I) {
	if len(sa) != len(text) || len(tmp) < textMax {
		panic("misuse of computeSA")
	}

	switch len(text) {
	case 0:
		return
	case 1:
		sa[0] = 0
		return
	}

	// With enough tmp, keep the symbol frequencies cached in freq.
	// Otherwise bucket doubles as freq and the counts are recomputed.
	var freq, bucket []I
	if len(tmp) >= 2*textMax {
		freq, bucket = tmp[:textMax], tmp[textMax:2*textMax]
		freq[0] = -1 // Mark as uninitialized
	} else {
		freq, bucket = nil, tmp[:textMax]
	}

	numLMS := placeLMS(text, sa, freq, bucket)
	if numLMS > 1 {
		induceSubL(text, sa, freq, bucket)
		induceSubS(text, sa, freq, bucket)
		length(text, sa)
		maxID := assignID(text, sa, numLMS)
		if maxID < numLMS {
			mapLMS(sa, numLMS)
			recurse(sa, tmp, numLMS, maxID)
			unmap(text, sa, numLMS)
		} else {
			// Every LMS-substring is unique, so the LMS-substring order is
			// already the LMS-suffix order.
			copy(sa, sa[len(sa)-numLMS:])
		}
		expand(text, freq, bucket, sa, numLMS)
	}
	induceL(text, sa, freq, bucket)
	induceS(text, sa, freq, bucket)

	// Mark for caller that we overwrote tmp.
	tmp[0] = -1
}

func symbolFreq[T internal.Symbol, I internal.Index](text []T, freq, bucket []I) []I {
	if freq != nil && freq[0] >= 0 {
		return freq // Already computed
	}
	if freq == nil {
		freq = bucket
	}
	clear(freq)
	for _, c := range text {
		freq[c]++
	}
	return freq
}

func bucketMin[T internal.Symbol, I internal.Index](text []T, freq, bucket []I) {
	freq = symbolFreq(text, freq, bucket)
	var total I
	for i, n := range freq {
		bucket[i] = total
		total += n
	}
}

func bucketMax[T internal.Symbol, I internal.Index](text []T, freq, bucket []I) {
	freq = symbolFreq(text, freq, bucket)
	var total I
	for i, n := range freq {
		total += n
		bucket[i] = total
	}
}

// placeLMS places the start of every LMS-substring at the tail of its
// bucket and reports their number.
//
// The scans below walk the text backward keeping c0 == text[i] and
// c1 == text[i+1], which tracks the S/L type of position i. A position i+1
// with text[i] of type L and text[i+1] of type S starts an LMS-substring.
// This pattern is repeated in length and unmap as the LMS-substring iterator.
// Position len(text) is an LMS position by definition but is left implicit
// by starting with isTypeS false.
func placeLMS[T internal.Symbol, I internal.Index](text []T, sa, freq, bucket []I) int {
	bucketMax(text, freq, bucket)

	numLMS := 0
	lastB := I(-1)
	var c0, c1 T
	isTypeS := false
	for i := len(text) - 1; i >= 0; i-- {
		c0, c1 = text[i], c0
		if c0 < c1 {
			isTypeS = true
		} else if c0 > c1 && isTypeS {
			isTypeS = false

			b := bucket[c1] - 1
			bucket[c1] = b
			sa[b] = I(i + 1)
			lastB = b
			numLMS++
		}
	}

	// The starts double as the ends of the preceding substrings, except for
	// the leftmost one, which ends nothing and is dropped. When there is no
	// recursion, the caller treats the entries as starts and keeps it.
	if numLMS > 1 {
		sa[lastB] = 0
	}
	return numLMS
}

// induceSubL induces the L-type prefixes of the LMS-substrings from left to
// right, using sa as its own work queue. Entries preceded by an S-type
// position are negated and handed to the caller. It finishes with sa holding
// only the leftmost L-type index of every LMS-substring.
func induceSubL[T internal.Symbol, I internal.Index](text []T, sa, freq, bucket []I) {
	bucketMin(text, freq, bucket)

	// Process the implicit entry sa[-1] == len(text) first.
	k := len(text) - 1
	c0, c1 := text[k-1], text[k]
	if c0 < c1 {
		k = -k
	}

	// Invariant: b is a cached, possibly dirty, copy of bucket[cB].
	cB := c1
	b := bucket[cB]
	sa[b] = I(k)
	b++

	for i := 0; i < len(sa); i++ {
		j := int(sa[i])
		if j == 0 {
			continue
		}
		if j < 0 {
			sa[i] = I(-j) // Leave discovered type-S index for caller
			continue
		}
		sa[i] = 0

		k := j - 1
		c0, c1 := text[k-1], text[k]
		if c0 < c1 {
			k = -k
		}

		if cB != c1 {
			bucket[cB] = b
			cB = c1
			b = bucket[cB]
		}
		sa[b] = I(k)
		b++
	}
}

// induceSubS is the right to left counterpart of induceSubL. The discovered
// LMS-substring starts are compacted into the top of sa, sorted by
// LMS-substring.
func induceSubS[T internal.Symbol, I internal.Index](text []T, sa, freq, bucket []I) {
	bucketMax(text, freq, bucket)

	var cB T
	b := bucket[cB]

	top := len(sa)
	for i := len(sa) - 1; i >= 0; i-- {
		j := int(sa[i])
		if j == 0 {
			continue
		}
		sa[i] = 0
		if j < 0 {
			top--
			sa[top] = I(-j) // Leave discovered LMS-substring start for caller
			continue
		}

		k := j - 1
		c1 := text[k]
		c0 := text[k-1]
		if c0 > c1 {
			k = -k
		}

		if cB != c1 {
			bucket[cB] = b
			cB = c1
			b = bucket[cB]
		}
		b--
		sa[b] = I(k)
	}
}

// length stores the length of the LMS-substring starting at j in sa[j/2].
// The final LMS-substring is given length 0.
//
// The standard library packs short byte substrings into the length word to
// skip text comparisons in assignID. That encoding is only sound for byte
// texts and is not used here.
func length[T internal.Symbol, I internal.Index](text []T, sa []I) {
	end := 0 // Index of current LMS-substring end (0 indicates final LMS-substring)

	var c0, c1 T
	isTypeS := false
	for i := len(text) - 1; i >= 0; i-- {
		c0, c1 = text[i], c0
		if c0 < c1 {
			isTypeS = true
		} else if c0 > c1 && isTypeS {
			isTypeS = false

			j := i + 1
			var code I
			if end != 0 {
				code = I(end - j)
			}
			sa[j>>1] = code
			end = j + 1
		}
	}
}

// assignID replaces every length in sa with the name of the LMS-substring,
// where equal substrings share a name, and reports the number of names.
func assignID[T internal.Symbol, I internal.Index](text []T, sa []I, numLMS int) int {
	id := 0
	lastLen := I(-1) // Impossible
	lastPos := I(0)
	for _, j := range sa[len(sa)-numLMS:] {
		n := sa[j/2]
		if n != lastLen {
			goto New
		}
		{
			n := int(n)
			this := text[j:][:n]
			last := text[lastPos:][:n]
			for i := 0; i < n; i++ {
				if this[i] != last[i] {
					goto New
				}
			}
			goto Same
		}
	New:
		id++
		lastPos = j
		lastLen = n
	Same:
		sa[j/2] = I(id)
	}
	return id
}

// mapLMS moves the names into the top of sa, forming the reduced string.
func mapLMS[I internal.Index](sa []I, numLMS int) {
	w := len(sa)
	for i := len(sa) / 2; i >= 0; i-- {
		j := sa[i]
		if j > 0 {
			w--
			sa[w] = j - 1
		}
	}
}

// recurse sorts the reduced string at the top of sa into sa[:numLMS].
//
// The middle of sa is free and serves as tmp whenever it is larger than the
// tmp of the caller. Only pathological inputs need an allocation, and an
// allocation of max(maxID, numLMS/2) suffices for every deeper level.
func recurse[I internal.Index](sa, oldTmp []I, numLMS, maxID int) {
	dst, saTmp, text := sa[:numLMS], sa[numLMS:len(sa)-numLMS], sa[len(sa)-numLMS:]

	tmp := oldTmp
	if len(tmp) < len(saTmp) {
		tmp = saTmp
	}
	if len(tmp) < numLMS {
		n := maxID
		if n < numLMS/2 {
			n = numLMS / 2
		}
		tmp = make([]I, n)
	}

	clear(dst)
	computeSA(text, maxID, dst, tmp)
}

// unmap converts the sorted names in sa[:numLMS] back into the text indexes
// of their LMS-substrings.
func unmap[T internal.Symbol, I internal.Index](text []T, sa []I, numLMS int) {
	unmap := sa[len(sa)-numLMS:]
	j := len(unmap)

	var c0, c1 T
	isTypeS := false
	for i := len(text) - 1; i >= 0; i-- {
		c0, c1 = text[i], c0
		if c0 < c1 {
			isTypeS = true
		} else if c0 > c1 && isTypeS {
			isTypeS = false

			j--
			unmap[j] = I(i + 1)
		}
	}

	sa = sa[:numLMS]
	for i := 0; i < len(sa); i++ {
		sa[i] = unmap[sa[i]]
	}
}

// expand scatters the sorted LMS-suffixes in sa[:numLMS] to the tails of
// their buckets and zeroes the rest of sa.
func expand[T internal.Symbol, I internal.Index](text []T, freq, bucket, sa []I, numLMS int) {
	bucketMax(text, freq, bucket)

	x := numLMS - 1
	saX := sa[x]
	c := text[saX]
	b := bucket[c] - 1
	bucket[c] = b

	for i := len(sa) - 1; i >= 0; i-- {
		if i != int(b) {
			sa[i] = 0
			continue
		}
		sa[i] = saX

		if x > 0 {
			x--
			saX = sa[x]
			c = text[saX]
			b = bucket[c] - 1
			bucket[c] = b
		}
	}
}

// induceL induces every L-type suffix from the sorted LMS-suffixes. The
// leftmost L-type indexes are left negated for induceS.
func induceL[T internal.Symbol, I internal.Index](text []T, sa, freq, bucket []I) {
	bucketMin(text, freq, bucket)

	// Process the implicit entry sa[-1] == len(text) first.
	k := len(text) - 1
	c0, c1 := text[k-1], text[k]
	if c0 < c1 {
		k = -k
	}

	cB := c1
	b := bucket[cB]
	sa[b] = I(k)
	b++

	for i := 0; i < len(sa); i++ {
		j := int(sa[i])
		if j <= 0 {
			continue // Empty or negated entry (including negated zero)
		}

		// A zero k has no predecessor and is left for the caller. The final
		// suffix array holds exactly one zero, so it needs no marking.
		k := j - 1
		c1 := text[k]
		if k > 0 {
			if c0 := text[k-1]; c0 < c1 {
				k = -k
			}
		}

		if cB != c1 {
			bucket[cB] = b
			cB = c1
			b = bucket[cB]
		}
		sa[b] = I(k)
		b++
	}
}

// induceS induces every S-type suffix, finishing the suffix array.
func induceS[T internal.Symbol, I internal.Index](text []T, sa, freq, bucket []I) {
	bucketMax(text, freq, bucket)

	var cB T
	b := bucket[cB]

	for i := len(sa) - 1; i >= 0; i-- {
		j := int(sa[i])
		if j >= 0 {
			continue // This loop cannot see an empty entry; 0 is the real index
		}

		j = -j
		sa[i] = I(j)

		k := j - 1
		c1 := text[k]
		if k > 0 {
			if c0 := text[k-1]; c0 <= c1 {
				k = -k
			}
		}

		if cB != c1 {
			bucket[cB] = b
			cB = c1
			b = bucket[cB]
		}
		b--
		sa[b] = I(k)
	}
}
