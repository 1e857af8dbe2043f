// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds domain and configuration types shared across the
// propsplit packages.
package types

// Boundary records where a detected section title first qualified during the
// page scan.
type Boundary struct {
	// Title is the catalog title the line matched.
	Title string `json:"title" yaml:"title"`

	// Page is the zero-based page index of the first qualifying match.
	Page int `json:"page" yaml:"page"`

	// Line is the page line that produced the match, as extracted.
	Line string `json:"line,omitempty" yaml:"line,omitempty"`

	// Score is the similarity score the line achieved against the title.
	Score float64 `json:"score" yaml:"score"`
}

// Section is a resolved extraction range: a named, half-open page interval.
// Start is inclusive and End exclusive; End may exceed the document's page
// count for fixed template ranges and is clamped at assembly time.
type Section struct {
	// Name is the section title as listed in the catalog.
	Name string `json:"name" yaml:"name"`

	// Start is the zero-based first page of the section.
	Start int `json:"start" yaml:"start"`

	// End is the zero-based page index one past the last page.
	End int `json:"end" yaml:"end"`
}

// Pages returns the number of pages the section would span in a document of
// pageCount pages, clamping the template end to the actual document length.
func (s Section) Pages(pageCount int) int {
	end := min(s.End, pageCount)
	if end <= s.Start {
		return 0
	}
	return end - s.Start
}

// SectionFile pairs a section with the output file it was written to.
type SectionFile struct {
	// Section is the resolved page range that produced the file.
	Section `yaml:",inline"`

	// Path is the location of the written per-section PDF.
	Path string `json:"path" yaml:"path"`
}
