// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/propsplit/internal/catalog"
	"github.com/pdiddy/propsplit/pkg/types"
)

// Assembler composes an ordered list of zero-based page indices into a new
// document at outPath.
type Assembler interface {
	WritePages(pages []int, outPath string) error
}

// Document bundles the two primitives a split needs from the input PDF.
type Document interface {
	TextExtractor
	Assembler
}

// Splitter partitions documents according to a section catalog.
type Splitter struct {
	cat       catalog.Catalog
	threshold float64
	w         io.Writer
}

// New returns a Splitter for the given catalog. Diagnostics are written to
// w; pass io.Discard to silence them. A threshold at or below zero falls
// back to the default.
func New(cat catalog.Catalog, threshold float64, w io.Writer) *Splitter {
	if threshold <= 0 {
		threshold = types.DefaultSimilarityThreshold
	}
	if w == nil {
		w = io.Discard
	}
	return &Splitter{cat: cat, threshold: threshold, w: w}
}

// Split partitions doc into per-section PDFs under outDir and returns the
// files written, in execution order: fixed sections first, then detected
// sections by ascending page. Undetected catalog titles are omitted. The
// output directory is created with parents; existing files are overwritten.
// A write failure aborts the run and leaves earlier outputs in place.
func (s *Splitter) Split(doc Document, outDir string) ([]types.SectionFile, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	boundaries := FindBoundaries(doc, s.cat.ScanStart(), s.cat.Detect, s.threshold, s.w)

	fmt.Fprintf(s.w, "\nDetected %d additional sections:\n", len(boundaries))
	sections := ResolveRanges(s.cat.Fixed, boundaries, doc.PageCount())
	for _, sec := range sections[len(s.cat.Fixed):] {
		fmt.Fprintf(s.w, "  - %s: page %d\n", sec.Name, sec.Start+1)
	}

	results := make([]types.SectionFile, 0, len(sections))
	for _, sec := range sections {
		out, err := s.writeSection(doc, sec, outDir)
		if err != nil {
			return results, err
		}
		results = append(results, out)
	}
	return results, nil
}

// writeSection assembles one section's pages into outDir. The range end is
// clamped to the document length; a zero-page range still produces a
// (placeholder) file so every resolved section has an output.
func (s *Splitter) writeSection(doc Document, sec types.Section, outDir string) (types.SectionFile, error) {
	end := min(sec.End, doc.PageCount())
	pages := make([]int, 0, max(end-sec.Start, 0))
	for p := sec.Start; p < end; p++ {
		pages = append(pages, p)
	}

	outPath := filepath.Join(outDir, SafeFileName(sec.Name)+".pdf")
	if len(pages) == 0 {
		fmt.Fprintf(s.w, "warning: section %q resolved to zero pages\n", sec.Name)
	}
	if err := doc.WritePages(pages, outPath); err != nil {
		return types.SectionFile{}, fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(s.w, "Created: %s (pages %d-%d, %d pages)\n", outPath, sec.Start+1, end, len(pages))
	return types.SectionFile{Section: sec, Path: outPath}, nil
}
