package dwca_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/dwca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emlDoc = `<?xml version="1.0" encoding="UTF-8"?>
<eml:eml packageId="urn:uuid:0cf8169f-b159-4ef9-bd43-93348bdc1e9f">
  <dataset><title>Moose Survey</title></dataset>
</eml:eml>`

func buildArchive(t *testing.T, members map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"eml.xml":  emlDoc,
		"meta.xml": `<archive></archive>`,
		"occurrence.txt": "id\tsex\tlifeStage\n" +
			"occ-1\tmale\tadult\n" +
			"occ-2\tfemale\tjuvenile\n",
		"event.csv": "id,eventDate\nevn-1,2023-06-15\n",
	})

	a, err := dwca.Parse("moose.zip", data)
	require.NoError(t, err)

	assert.Equal(t, "moose.zip", a.FileName)
	assert.Contains(t, string(a.EML), "Moose Survey")
	require.Len(t, a.Worksheets(), 2)

	occ := a.Worksheet("occurrence")
	require.NotNil(t, occ)
	assert.Equal(t, []string{"id", "sex", "lifeStage"}, occ.Headers)
	require.Equal(t, 2, occ.Len())
	rows := occ.Rows()
	assert.Equal(t, "male", rows[0]["sex"])
	assert.Equal(t, "occ-2", rows[1]["id"])

	evn := a.Worksheet("event")
	require.NotNil(t, evn)
	assert.Equal(t, "2023-06-15", evn.Rows()[0]["eventDate"])
}

func TestParseShortRows(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"eml.xml":        emlDoc,
		"occurrence.txt": "id\tsex\nocc-1\n",
	})
	a, err := dwca.Parse("short.zip", data)
	require.NoError(t, err)

	rows := a.Worksheet("occurrence").Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "occ-1", rows[0]["id"])
	assert.Equal(t, "", rows[0]["sex"])
}

func TestParseErrors(t *testing.T) {
	_, err := dwca.Parse("empty.zip", nil)
	assert.Error(t, err)

	_, err = dwca.Parse("junk.zip", []byte("not a zip file"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := buildArchive(t, map[string]string{
		"eml.xml":        emlDoc,
		"occurrence.txt": "id\nocc-1\n",
	})
	a, err := dwca.Parse("ok.zip", valid)
	require.NoError(t, err)
	assert.NoError(t, a.Validate())

	noEML := buildArchive(t, map[string]string{
		"occurrence.txt": "id\nocc-1\n",
	})
	a, err = dwca.Parse("no-eml.zip", noEML)
	require.NoError(t, err)
	assert.Error(t, a.Validate())

	noSheets := buildArchive(t, map[string]string{
		"eml.xml": emlDoc,
	})
	a, err = dwca.Parse("no-sheets.zip", noSheets)
	require.NoError(t, err)
	assert.Error(t, a.Validate())
}

func TestNormalize(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"eml.xml": emlDoc,
		"a.txt":   "col1\tcol2\nr1c1\tr1c2\nr2c1\tr2c2\n",
		"b.txt":   "x\n1\n2\n",
	})
	a, err := dwca.Parse("two-sheets.zip", data)
	require.NoError(t, err)

	normalized, err := a.Normalize()
	require.NoError(t, err)

	var got map[string][]map[string]string
	require.NoError(t, json.Unmarshal([]byte(normalized), &got))
	require.Len(t, got, 2)
	require.Len(t, got["a"], 2)
	require.Len(t, got["b"], 2)
	assert.Equal(t, "r1c2", got["a"][0]["col2"])
	assert.Equal(t, "r2c1", got["a"][1]["col1"])
	assert.Equal(t, "2", got["b"][1]["x"])
}
