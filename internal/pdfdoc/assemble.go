// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// WritePages composes the given zero-based page indices, in order, into a
// new PDF at outPath. An existing file is overwritten. An empty page list
// produces an empty placeholder file, because per-section output is emitted
// even for zero-length ranges.
func (d *Document) WritePages(pages []int, outPath string) error {
	if len(pages) == 0 {
		if err := os.WriteFile(outPath, nil, 0o644); err != nil {
			return fmt.Errorf("writing placeholder %s: %w", outPath, err)
		}
		return nil
	}

	if err := api.CollectFile(d.path, outPath, pageSelection(pages), nil); err != nil {
		return fmt.Errorf("collecting pages into %s: %w", outPath, err)
	}
	return nil
}

// pageSelection converts zero-based page indices to the one-based page
// selection strings pdfcpu expects.
func pageSelection(pages []int) []string {
	sel := make([]string, len(pages))
	for i, p := range pages {
		sel[i] = fmt.Sprintf("%d", p+1)
	}
	return sel
}
