// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package similarity scores how closely two strings resemble each other
// using a matching-blocks ratio: 2*M/T, where M is the total length of all
// matching contiguous runs and T the combined length of both strings. Unlike
// edit distance or token overlap, the ratio stays high across the small
// insertions, stray page numbers, and whitespace noise that PDF text
// extraction leaves in section headings.
package similarity

// Ratio returns a similarity score in [0, 1] for a and b. Identical strings
// score 1.0, two empty strings score 1.0 by convention, and a single empty
// string scores 0.0. The score is symmetric. Comparison is rune-wise and
// case-sensitive; callers normalize case beforehand.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matched := 0
	for _, m := range matchingBlocks(ra, rb) {
		matched += m.size
	}
	return 2.0 * float64(matched) / float64(total)
}

// match is one contiguous run of identical runes: a[apos:apos+size] equals
// b[bpos:bpos+size].
type match struct {
	apos, bpos, size int
}

// span is an unexamined region of the two sequences.
type span struct {
	alo, ahi, blo, bhi int
}

// matchingBlocks finds non-overlapping matching runs greedily: the longest
// match in the full region first, then recursively in the regions to its
// left and right.
func matchingBlocks(a, b []rune) []match {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	queue := []span{{0, len(a), 0, len(b)}}
	var blocks []match
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		m := longestMatch(a, b2j, s)
		if m.size == 0 {
			continue
		}
		blocks = append(blocks, m)
		if s.alo < m.apos && s.blo < m.bpos {
			queue = append(queue, span{s.alo, m.apos, s.blo, m.bpos})
		}
		if m.apos+m.size < s.ahi && m.bpos+m.size < s.bhi {
			queue = append(queue, span{m.apos + m.size, s.ahi, m.bpos + m.size, s.bhi})
		}
	}
	return blocks
}

// longestMatch finds the longest run of runes common to a[alo:ahi] and
// b[blo:bhi], preferring the earliest position in a, then in b, on ties.
// j2len[j] holds the length of the longest run ending at a[i-1], b[j] while
// row i is being computed.
func longestMatch(a []rune, b2j map[rune][]int, s span) match {
	best := match{apos: s.alo, bpos: s.blo}
	j2len := make(map[int]int)
	for i := s.alo; i < s.ahi; i++ {
		next := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < s.blo {
				continue
			}
			if j >= s.bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > best.size {
				best = match{apos: i - k + 1, bpos: j - k + 1, size: k}
			}
		}
		j2len = next
	}
	return best
}
