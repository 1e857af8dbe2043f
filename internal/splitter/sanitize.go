// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"regexp"
	"strings"
)

var (
	// stripRE removes everything except word characters, whitespace, and
	// hyphens. Stripping runs before collapsing, so "A/B" becomes "ab"
	// rather than "a_b".
	stripRE = regexp.MustCompile(`[^\w\s-]`)

	// collapseRE folds runs of hyphens and whitespace into one separator.
	collapseRE = regexp.MustCompile(`[-\s]+`)
)

// SafeFileName converts a section title into a filesystem-safe base name:
// special characters stripped, hyphen/whitespace runs collapsed to a single
// underscore, lowercased.
func SafeFileName(name string) string {
	s := stripRE.ReplaceAllString(name, "")
	s = collapseRE.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}
