package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBatch(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadBatch_YAML(t *testing.T) {
	path := writeBatch(t, "batch.yaml", `
records:
  - path: content/a.md
    title: Hello
    date: 2019-01-01
    updated: 2022-02-01T10:30:00Z
    weight: 4
    permalink: https://example.com/a/
  - path: content/b.md
    permalink: https://example.com/b/
`)

	records, err := LoadBatch(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	a := records[0]
	assert.Equal(t, "content/a.md", a.Path)
	require.NotNil(t, a.Title)
	assert.Equal(t, "Hello", *a.Title)
	require.NotNil(t, a.Date)
	assert.Equal(t, 2019, a.Date.Year())
	require.NotNil(t, a.Updated)
	assert.Equal(t, 10, a.Updated.Hour())
	require.NotNil(t, a.Weight)
	assert.Equal(t, 4, *a.Weight)
	assert.Equal(t, "https://example.com/a/", a.Permalink)

	b := records[1]
	assert.Nil(t, b.Title)
	assert.Nil(t, b.Date)
	assert.Nil(t, b.Updated)
	assert.Nil(t, b.Weight)
}

func TestLoadBatch_JSON(t *testing.T) {
	path := writeBatch(t, "batch.json", `{
  "records": [
    {"path": "content/a.md", "weight": 2, "permalink": "https://example.com/a/"}
  ]
}`)

	records, err := LoadBatch(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Weight)
	assert.Equal(t, 2, *records[0].Weight)
}

func TestLoadBatch_BadTimestamp(t *testing.T) {
	path := writeBatch(t, "batch.yaml", `
records:
  - path: content/a.md
    date: not-a-date
`)

	_, err := LoadBatch(path)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 0, loadErr.Index)
	assert.Contains(t, err.Error(), "record 0")
}

func TestLoadBatch_MissingPath(t *testing.T) {
	path := writeBatch(t, "batch.yaml", `
records:
  - title: Orphan
  - path: content/ok.md
`)

	_, err := LoadBatch(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing path")
}

func TestLoadBatch_MissingFile(t *testing.T) {
	_, err := LoadBatch(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, -1, loadErr.Index)
}

func TestLoadBatch_MalformedYAML(t *testing.T) {
	path := writeBatch(t, "batch.yaml", "records: [not: closed")
	_, err := LoadBatch(path)
	require.Error(t, err)
}
