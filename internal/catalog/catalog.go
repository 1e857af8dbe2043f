// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog defines the ordered list of sections a proposal PDF is
// expected to contain. A catalog mixes fixed template ranges (sections whose
// page extent is dictated by the submission format) with titles that must be
// located by scanning page text. The catalog is an explicit immutable value
// handed to the splitter, so tests and non-standard templates can substitute
// their own.
package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// FixedSection is a section pinned to a template page range rather than
// detected from content.
type FixedSection struct {
	// Name is the section title used for the output file.
	Name string `yaml:"name"`

	// Start is the zero-based first page of the section.
	Start int `yaml:"start"`

	// Pages is the number of pages the template allots the section. The
	// range is clamped to the document length at assembly time.
	Pages int `yaml:"pages"`
}

// Catalog is the ordered section layout of an expected document. Fixed
// sections are emitted first, in order; Detect lists the titles searched for
// in the remaining pages. Detect order matters only as a tie-break when one
// line qualifies against several titles.
type Catalog struct {
	Fixed  []FixedSection `yaml:"fixed"`
	Detect []string       `yaml:"detect"`
}

// Default returns the standard grant-proposal layout: a one-page project
// summary, a fifteen-page project description, and five trailing sections
// located by fuzzy matching.
func Default() Catalog {
	return Catalog{
		Fixed: []FixedSection{
			{Name: "Project Summary", Start: 0, Pages: 1},
			{Name: "Project Description", Start: 1, Pages: 15},
		},
		Detect: []string{
			"Data Management and Sharing Plan",
			"Mentoring Plan",
			"Project Personnel and Partner Organizations",
			"Facilities, Equipment and Other Resources",
			"Synergistic Activities",
		},
	}
}

// Load reads a catalog from a YAML file and validates it.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Validate checks that the catalog is well-formed: non-empty unique names,
// non-negative fixed ranges with at least one page.
func (c Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, f := range c.Fixed {
		if f.Name == "" {
			return fmt.Errorf("fixed section with empty name")
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate section name %q", f.Name)
		}
		seen[f.Name] = true
		if f.Start < 0 {
			return fmt.Errorf("fixed section %q: negative start page %d", f.Name, f.Start)
		}
		if f.Pages < 1 {
			return fmt.Errorf("fixed section %q: page count %d, want at least 1", f.Name, f.Pages)
		}
	}
	for _, title := range c.Detect {
		if title == "" {
			return fmt.Errorf("detect entry with empty title")
		}
		if seen[title] {
			return fmt.Errorf("duplicate section name %q", title)
		}
		seen[title] = true
	}
	if len(c.Fixed) == 0 && len(c.Detect) == 0 {
		return fmt.Errorf("catalog has no sections")
	}
	return nil
}

// ScanStart returns the page index at which boundary detection begins: the
// end of the last fixed range, or zero when the catalog has no fixed
// sections.
func (c Catalog) ScanStart() int {
	start := 0
	for _, f := range c.Fixed {
		if end := f.Start + f.Pages; end > start {
			start = end
		}
	}
	return start
}
