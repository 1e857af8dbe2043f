// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultSimilarityThreshold is the minimum score at which a page line is
// accepted as the start of a catalog section.
const DefaultSimilarityThreshold = 0.7

// SplitConfig holds settings for a split invocation.
type SplitConfig struct {
	// OutputDir is the directory for per-section PDFs. Created with parents
	// if absent; existing files are overwritten.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// SimilarityThreshold is the minimum match score (0-1) for boundary
	// detection (default 0.7).
	SimilarityThreshold float64 `json:"similarity_threshold" yaml:"similarity_threshold"`

	// CatalogPath optionally points to a YAML catalog overriding the built-in
	// proposal template.
	CatalogPath string `json:"catalog,omitempty" yaml:"catalog,omitempty"`

	// ManifestDB optionally points to a SQLite database in which completed
	// runs are recorded. Empty disables recording.
	ManifestDB string `json:"manifest_db,omitempty" yaml:"manifest_db,omitempty"`
}

// Threshold returns the configured similarity threshold, falling back to the
// default when unset.
func (c SplitConfig) Threshold() float64 {
	if c.SimilarityThreshold <= 0 {
		return DefaultSimilarityThreshold
	}
	return c.SimilarityThreshold
}
