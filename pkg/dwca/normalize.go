package dwca

import (
	"github.com/gnames/gnfmt"
)

// Normalize flattens every worksheet into a plain JSON object keyed by
// worksheet name, each value the ordered row-object array. The result
// is the submission's darwin_core_source, the input of the SQL-side
// spatial transforms.
func (a *Archive) Normalize() (string, error) {
	normal := make(map[string][]map[string]string, len(a.worksheets))
	for _, w := range a.worksheets {
		normal[w.Name] = w.Rows()
	}
	enc := gnfmt.GNjson{}
	res, err := enc.Encode(normal)
	if err != nil {
		return "", ParseError(a.FileName, err)
	}
	return string(res), nil
}
