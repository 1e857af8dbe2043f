// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"sort"

	"github.com/pdiddy/propsplit/internal/catalog"
	"github.com/pdiddy/propsplit/pkg/types"
)

// ResolveRanges turns fixed catalog entries and detected boundaries into the
// final ordered list of extraction ranges. Fixed sections come first, in
// catalog order, with their template extent taken verbatim (clamping to the
// document length happens at assembly). Detected boundaries follow, sorted
// by page ascending with discovery order breaking ties; each one ends where
// the next begins, and the last ends at pageCount.
//
// Two titles detected on the same page yield a zero-length range for the
// earlier one. That is valid output, not an error.
func ResolveRanges(fixed []catalog.FixedSection, boundaries []types.Boundary, pageCount int) []types.Section {
	sections := make([]types.Section, 0, len(fixed)+len(boundaries))
	for _, f := range fixed {
		sections = append(sections, types.Section{
			Name:  f.Name,
			Start: f.Start,
			End:   f.Start + f.Pages,
		})
	}

	detected := make([]types.Boundary, len(boundaries))
	copy(detected, boundaries)
	sort.SliceStable(detected, func(i, j int) bool {
		return detected[i].Page < detected[j].Page
	})

	for i, b := range detected {
		end := pageCount
		if i+1 < len(detected) {
			end = detected[i+1].Page
		}
		sections = append(sections, types.Section{
			Name:  b.Title,
			Start: b.Page,
			End:   end,
		})
	}

	return sections
}
