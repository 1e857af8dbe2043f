// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfdoc

import (
	"reflect"
	"testing"
)

func TestPageSelection(t *testing.T) {
	tests := []struct {
		name  string
		pages []int
		want  []string
	}{
		{name: "single page", pages: []int{0}, want: []string{"1"}},
		{name: "contiguous run", pages: []int{1, 2, 3}, want: []string{"2", "3", "4"}},
		{name: "empty", pages: nil, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pageSelection(tt.pages)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("pageSelection(%v) = %v, want %v", tt.pages, got, tt.want)
			}
		})
	}
}

func TestOpen_Missing(t *testing.T) {
	if _, err := Open(t.TempDir() + "/absent.pdf"); err == nil {
		t.Fatal("Open() on a missing file succeeded, want not-found error")
	}
}
