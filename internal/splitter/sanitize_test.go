// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import "testing"

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces to underscores", in: "Data Management and Sharing Plan", want: "data_management_and_sharing_plan"},
		{name: "slash stripped not replaced", in: "A/B", want: "ab"},
		{name: "colon stripped", in: "Appendix: Tables", want: "appendix_tables"},
		{name: "comma stripped", in: "Facilities, Equipment and Other Resources", want: "facilities_equipment_and_other_resources"},
		{name: "hyphen run collapses", in: "Pre--Award -- Notes", want: "pre_award_notes"},
		{name: "mixed whitespace", in: "Mentoring\t Plan", want: "mentoring_plan"},
		{name: "already safe", in: "summary", want: "summary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeFileName(tt.in); got != tt.want {
				t.Errorf("SafeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
