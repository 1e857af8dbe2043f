// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package splitter locates section boundaries in a paginated document and
// partitions it into per-section outputs. The document itself is reached
// through two narrow interfaces, TextExtractor and Assembler, so the scan
// and range logic stay independent of any PDF library.
package splitter

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/propsplit/internal/similarity"
	"github.com/pdiddy/propsplit/pkg/types"
)

// minLineLen is the shortest trimmed line considered for matching. Shorter
// lines produce spuriously high ratios against short titles.
const minLineLen = 5

// TextExtractor provides best-effort plain text per page.
type TextExtractor interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageText returns the plain text of the zero-based page. An error means
	// the page could not be extracted; the scan treats it as empty.
	PageText(page int) (string, error)
}

// FindBoundaries scans pages from startPage through the end of the document
// and records, for each title, the page of its first line scoring at or
// above threshold. Iteration order is fixed: pages ascending, lines in
// extraction order, titles in catalog order. The first title a line
// qualifies against claims that line; a matched title is never reconsidered.
// Titles that never qualify are absent from the result.
//
// Boundaries are returned in discovery order. Diagnostics for each match and
// each failed extraction go to w.
func FindBoundaries(doc TextExtractor, startPage int, titles []string, threshold float64, w io.Writer) []types.Boundary {
	lowered := make([]string, len(titles))
	for i, t := range titles {
		lowered[i] = strings.ToLower(t)
	}

	matched := make(map[string]bool, len(titles))
	var found []types.Boundary

	pageCount := doc.PageCount()
	for page := startPage; page < pageCount && len(matched) < len(titles); page++ {
		text, err := doc.PageText(page)
		if err != nil {
			fmt.Fprintf(w, "warning: could not extract text from page %d: %v\n", page+1, err)
			continue
		}

		for _, line := range strings.Split(text, "\n") {
			trimmed := strings.TrimSpace(line)
			lower := strings.ToLower(trimmed)
			if utf8.RuneCountInString(lower) < minLineLen {
				continue
			}

			for i, title := range titles {
				if matched[title] {
					continue
				}
				score := similarity.Ratio(lower, lowered[i])
				if score >= threshold {
					matched[title] = true
					found = append(found, types.Boundary{
						Title: title,
						Page:  page,
						Line:  trimmed,
						Score: score,
					})
					fmt.Fprintf(w, "Found %q on page %d (match: %q, score %.2f)\n",
						title, page+1, truncate(trimmed, 60), score)
					break // this line is claimed, move to the next line
				}
			}
		}
	}

	return found
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
