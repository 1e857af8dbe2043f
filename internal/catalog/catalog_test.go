// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	require.Len(t, c.Fixed, 2)
	assert.Equal(t, FixedSection{Name: "Project Summary", Start: 0, Pages: 1}, c.Fixed[0])
	assert.Equal(t, FixedSection{Name: "Project Description", Start: 1, Pages: 15}, c.Fixed[1])
	assert.Len(t, c.Detect, 5)
	assert.Equal(t, 16, c.ScanStart())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `fixed:
  - name: Abstract
    start: 0
    pages: 2
detect:
  - References Cited
  - Appendix
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []FixedSection{{Name: "Abstract", Start: 0, Pages: 2}}, c.Fixed)
	assert.Equal(t, []string{"References Cited", "Appendix"}, c.Detect)
	assert.Equal(t, 2, c.ScanStart())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr string
	}{
		{
			name:    "empty catalog",
			catalog: Catalog{},
			wantErr: "no sections",
		},
		{
			name: "duplicate across fixed and detect",
			catalog: Catalog{
				Fixed:  []FixedSection{{Name: "Overview", Start: 0, Pages: 1}},
				Detect: []string{"Overview"},
			},
			wantErr: "duplicate",
		},
		{
			name: "zero-page fixed section",
			catalog: Catalog{
				Fixed: []FixedSection{{Name: "Overview", Start: 0, Pages: 0}},
			},
			wantErr: "page count",
		},
		{
			name: "negative start",
			catalog: Catalog{
				Fixed: []FixedSection{{Name: "Overview", Start: -1, Pages: 1}},
			},
			wantErr: "negative start",
		},
		{
			name: "empty detect title",
			catalog: Catalog{
				Detect: []string{""},
			},
			wantErr: "empty title",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScanStart_NoFixed(t *testing.T) {
	c := Catalog{Detect: []string{"References Cited"}}
	assert.Equal(t, 0, c.ScanStart())
}
