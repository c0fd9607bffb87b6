// Package dwca parses Darwin Core Archive packages.
//
// A DwC-A is a zip holding an EML metadata document (eml.xml), a layout
// descriptor (meta.xml) and one or more delimited worksheets
// (occurrence.txt, event.txt, taxon.txt, ...). The parser works on an
// in-memory byte buffer - the upload handler already holds the whole
// file - and exposes worksheets as ordered rows with header-derived
// keys. This is a pure package: no database, no network.
package dwca

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"path"
	"strings"
)

// Worksheet is one delimited data file of the archive. Rows preserve
// file order.
type Worksheet struct {
	Name    string
	Headers []string
	rows    [][]string
}

// Len returns the number of data rows.
func (w *Worksheet) Len() int {
	return len(w.rows)
}

// Rows returns every data row as a header-keyed object, in file order.
// Short rows leave trailing headers empty; extra cells are dropped.
func (w *Worksheet) Rows() []map[string]string {
	res := make([]map[string]string, len(w.rows))
	for i, row := range w.rows {
		obj := make(map[string]string, len(w.Headers))
		for j, h := range w.Headers {
			if j < len(row) {
				obj[h] = row[j]
			} else {
				obj[h] = ""
			}
		}
		res[i] = obj
	}
	return res
}

// Archive is the parsed in-memory representation of a DwC-A package.
type Archive struct {
	// FileName is the original name of the uploaded file.
	FileName string

	// EML is the raw embedded metadata document, nil when the package
	// carries none.
	EML []byte

	worksheets []*Worksheet
}

// Worksheets returns the worksheets in archive member order.
func (a *Archive) Worksheets() []*Worksheet {
	return a.worksheets
}

// Worksheet returns the named worksheet, or nil.
func (a *Archive) Worksheet(name string) *Worksheet {
	for _, w := range a.worksheets {
		if w.Name == name {
			return w
		}
	}
	return nil
}

// Parse reads a zip held in memory into an Archive. Fails with a
// ParseError when the bytes are empty, not a zip, or a member cannot
// be read.
func Parse(fileName string, data []byte) (*Archive, error) {
	if len(data) == 0 {
		return nil, ParseError(fileName, errors.New("empty input"))
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, ParseError(fileName, err)
	}

	res := &Archive{FileName: fileName}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		base := path.Base(f.Name)
		ext := strings.ToLower(path.Ext(base))
		name := strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))

		content, err := readMember(f)
		if err != nil {
			return nil, ParseError(fileName, err)
		}

		switch {
		case isEML(name, ext, content):
			res.EML = content
		case name == "meta" && ext == ".xml":
			// layout descriptor, delimiters are derived from extensions
		case ext == ".csv":
			ws, err := parseWorksheet(name, content, ',')
			if err != nil {
				return nil, ParseError(fileName, err)
			}
			res.worksheets = append(res.worksheets, ws)
		case ext == ".txt" || ext == ".tsv":
			ws, err := parseWorksheet(name, content, '\t')
			if err != nil {
				return nil, ParseError(fileName, err)
			}
			res.worksheets = append(res.worksheets, ws)
		}
	}
	return res, nil
}

// Validate enforces the expected package layout: an EML document and at
// least one worksheet with headers. Validation failure is fatal for the
// submission attempt.
func (a *Archive) Validate() error {
	if len(a.EML) == 0 {
		return ValidationError(a.FileName, "missing EML metadata document")
	}
	if len(a.worksheets) == 0 {
		return ValidationError(a.FileName, "archive contains no data worksheets")
	}
	for _, w := range a.worksheets {
		if len(w.Headers) == 0 {
			return ValidationError(a.FileName,
				"worksheet "+w.Name+" has no header row")
		}
	}
	return nil
}

func isEML(name, ext string, content []byte) bool {
	if name == "eml" && ext == ".xml" {
		return true
	}
	return ext == ".xml" && bytes.Contains(content, []byte("<eml"))
}

func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func parseWorksheet(name string, content []byte, comma rune) (*Worksheet, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.Comma = comma
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	ws := &Worksheet{Name: name}
	if len(records) > 0 {
		ws.Headers = records[0]
		ws.rows = records[1:]
	}
	return ws, nil
}
