// Package eml converts EML metadata documents (XML) to JSON.
// The JSON shape keeps XML attributes as "@_"-prefixed keys, the shape
// the downstream metadata transforms and the search index mapping
// expect.
package eml

import (
	"errors"
	"strings"

	"github.com/clbanning/mxj/v2"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/errcode"
	"github.com/gnames/gn"
)

func init() {
	mxj.SetAttrPrefix("@_")
}

// ToJSON converts a raw EML XML document into its JSON representation.
func ToJSON(xml []byte) (string, error) {
	if len(xml) == 0 {
		return "", convertError(errors.New("empty EML document"))
	}
	m, err := mxj.NewMapXml(xml)
	if err != nil {
		return "", convertError(err)
	}
	res, err := m.Json()
	if err != nil {
		return "", convertError(err)
	}
	return string(res), nil
}

// PackageID extracts the packageId attribute of the eml root element.
// Returns an empty string when absent. The urn:uuid: prefix, when
// present, is stripped so the result compares directly with dataset
// UUIDs.
func PackageID(xml []byte) string {
	m, err := mxj.NewMapXml(xml)
	if err != nil {
		return ""
	}
	values, err := m.ValuesForKey("@_packageId")
	if err != nil || len(values) == 0 {
		return ""
	}
	id, ok := values[0].(string)
	if !ok {
		return ""
	}
	return strings.TrimPrefix(id, "urn:uuid:")
}

func convertError(err error) error {
	return &gn.Error{
		Code: errcode.ArchiveParseError,
		Msg:  "Cannot convert EML document to JSON",
		Err:  err,
	}
}
