// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/pdiddy/propsplit/pkg/types"
)

// fakeDoc implements TextExtractor and Assembler over canned page text.
// Pages listed in failPages return an extraction error. WritePages records
// each call instead of producing a PDF.
type fakeDoc struct {
	pages     map[int]string
	pageCount int
	failPages map[int]bool

	writes []writeCall
	errOn  string // outPath suffix that triggers a write error
}

type writeCall struct {
	pages   []int
	outPath string
}

func (d *fakeDoc) PageCount() int { return d.pageCount }

func (d *fakeDoc) PageText(page int) (string, error) {
	if d.failPages[page] {
		return "", errors.New("damaged content stream")
	}
	return d.pages[page], nil
}

func (d *fakeDoc) WritePages(pages []int, outPath string) error {
	if d.errOn != "" && strings.HasSuffix(outPath, d.errOn) {
		return errors.New("disk full")
	}
	d.writes = append(d.writes, writeCall{pages: pages, outPath: outPath})
	return nil
}

func TestFindBoundaries_VerbatimTitles(t *testing.T) {
	titles := []string{
		"Data Management and Sharing Plan",
		"Mentoring Plan",
		"Synergistic Activities",
	}
	doc := &fakeDoc{
		pageCount: 40,
		pages: map[int]string{
			20: "some preamble\nData Management and Sharing Plan\nbody text",
			25: "Mentoring Plan",
			30: "Synergistic Activities\nmore text",
		},
	}

	got := FindBoundaries(doc, 16, titles, 0.7, io.Discard)

	want := map[string]int{
		"Data Management and Sharing Plan": 20,
		"Mentoring Plan":                   25,
		"Synergistic Activities":           30,
	}
	if len(got) != len(want) {
		t.Fatalf("found %d boundaries, want %d: %+v", len(got), len(want), got)
	}
	for _, b := range got {
		if want[b.Title] != b.Page {
			t.Errorf("%q detected on page %d, want %d", b.Title, b.Page, want[b.Title])
		}
		if b.Score != 1.0 {
			t.Errorf("%q verbatim match scored %v, want 1.0", b.Title, b.Score)
		}
	}
}

func TestFindBoundaries_ShortLinesSkipped(t *testing.T) {
	// "plan" would score 1.0 against the title "plan" but is under the
	// five-rune minimum and must never match.
	doc := &fakeDoc{
		pageCount: 5,
		pages:     map[int]string{2: "plan\n  ab \n\n"},
	}
	got := FindBoundaries(doc, 0, []string{"plan"}, 0.7, io.Discard)
	if len(got) != 0 {
		t.Errorf("short line produced boundaries: %+v", got)
	}
}

func TestFindBoundaries_FirstMatchWins(t *testing.T) {
	// The title appears on pages 3 and 7 with an imperfect but qualifying
	// match on page 3; the later, perfect match must not override it.
	doc := &fakeDoc{
		pageCount: 10,
		pages: map[int]string{
			3: "mentoring plan 12",
			7: "Mentoring Plan",
		},
	}
	got := FindBoundaries(doc, 0, []string{"Mentoring Plan"}, 0.7, io.Discard)
	if len(got) != 1 {
		t.Fatalf("found %d boundaries, want 1", len(got))
	}
	if got[0].Page != 3 {
		t.Errorf("boundary on page %d, want first qualifying page 3", got[0].Page)
	}
}

func TestFindBoundaries_OneTitlePerLine(t *testing.T) {
	// A line qualifying against two titles is claimed by the first in
	// catalog order; the second title stays unmatched until its own line.
	doc := &fakeDoc{
		pageCount: 4,
		pages: map[int]string{
			1: "Mentoring Plan",
			2: "Mentoring Plans",
		},
	}
	got := FindBoundaries(doc, 0, []string{"Mentoring Plan", "Mentoring Plans"}, 0.7, io.Discard)
	if len(got) != 2 {
		t.Fatalf("found %d boundaries, want 2: %+v", len(got), got)
	}
	if got[0].Title != "Mentoring Plan" || got[0].Page != 1 {
		t.Errorf("first boundary = %+v, want Mentoring Plan on page 1", got[0])
	}
	if got[1].Title != "Mentoring Plans" || got[1].Page != 2 {
		t.Errorf("second boundary = %+v, want Mentoring Plans on page 2", got[1])
	}
}

func TestFindBoundaries_BelowThreshold(t *testing.T) {
	doc := &fakeDoc{
		pageCount: 3,
		pages:     map[int]string{1: "completely unrelated heading"},
	}
	got := FindBoundaries(doc, 0, []string{"References Cited"}, 0.7, io.Discard)
	if len(got) != 0 {
		t.Errorf("found boundaries below threshold: %+v", got)
	}
}

func TestFindBoundaries_ExtractionFailureDegrades(t *testing.T) {
	doc := &fakeDoc{
		pageCount: 6,
		pages:     map[int]string{4: "References Cited"},
		failPages: map[int]bool{2: true},
	}
	var log bytes.Buffer
	got := FindBoundaries(doc, 0, []string{"References Cited"}, 0.7, &log)

	if len(got) != 1 || got[0].Page != 4 {
		t.Fatalf("boundaries = %+v, want References Cited on page 4", got)
	}
	if !strings.Contains(log.String(), "warning") {
		t.Errorf("log %q missing extraction warning", log.String())
	}
}

func TestFindBoundaries_RespectsStartPage(t *testing.T) {
	doc := &fakeDoc{
		pageCount: 20,
		pages: map[int]string{
			2:  "References Cited", // inside the fixed region, must be ignored
			18: "References Cited",
		},
	}
	got := FindBoundaries(doc, 16, []string{"References Cited"}, 0.7, io.Discard)
	if len(got) != 1 || got[0].Page != 18 {
		t.Errorf("boundaries = %+v, want single match on page 18", got)
	}
}

func TestFindBoundaries_DiscoveryOrder(t *testing.T) {
	doc := &fakeDoc{
		pageCount: 10,
		pages: map[int]string{
			5: "Synergistic Activities",
			8: "Mentoring Plan",
		},
	}
	got := FindBoundaries(doc, 0, []string{"Mentoring Plan", "Synergistic Activities"}, 0.7, io.Discard)
	want := []types.Boundary{
		{Title: "Synergistic Activities", Page: 5, Line: "Synergistic Activities", Score: 1.0},
		{Title: "Mentoring Plan", Page: 8, Line: "Mentoring Plan", Score: 1.0},
	}
	if fmt.Sprintf("%+v", got) != fmt.Sprintf("%+v", want) {
		t.Errorf("boundaries = %+v, want %+v", got, want)
	}
}
