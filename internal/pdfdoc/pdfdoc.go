// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfdoc supplies the two primitives the splitter needs from a PDF:
// best-effort plain text per page (github.com/ledongthuc/pdf) and composing
// selected pages into a new file (github.com/pdfcpu/pdfcpu).
package pdfdoc

import (
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"
)

// Document is an open, read-only PDF. It implements splitter.Document.
type Document struct {
	path      string
	f         *os.File
	reader    *pdflib.Reader
	pageCount int
}

// Open opens the PDF at path. A missing file fails here, before any
// processing of the document begins.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("PDF file not found: %s: %w", path, err)
	}
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Document{
		path:      path,
		f:         f,
		reader:    reader,
		pageCount: reader.NumPage(),
	}, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.f.Close()
}

// Path returns the location of the source PDF.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.pageCount
}

// PageText extracts the plain text of the zero-based page. Malformed
// content streams surface as an error, never a panic; callers treat failed
// pages as empty.
func (d *Document) PageText(page int) (text string, err error) {
	if page < 0 || page >= d.pageCount {
		return "", fmt.Errorf("page %d out of range [0,%d)", page, d.pageCount)
	}

	// The pdf library panics on some malformed xref/content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extracting page %d: %v", page, r)
		}
	}()

	p := d.reader.Page(page + 1)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d has no content", page)
	}
	return p.GetPlainText(nil)
}
