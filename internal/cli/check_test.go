package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemill/pagemill/internal/content"
	"github.com/pagemill/pagemill/internal/testutil"
)

func TestCheckBatch_CleanBatch(t *testing.T) {
	records := []*content.Record{
		testutil.DatedRecord("2019-01-01", ""),
		testutil.WeightedRecord(1),
		testutil.TitledRecord("Hello"),
	}
	assert.Empty(t, CheckBatch(records))
}

func TestCheckBatch_ReportsViolations(t *testing.T) {
	dup := testutil.WeightedRecord(1)
	dup2 := testutil.TitledRecord("Other")
	dup2.Permalink = dup.Permalink

	records := []*content.Record{
		dup,
		dup2,
		{Path: "content/bare.md"}, // no permalink
		{Path: "", Permalink: "https://example.com/nameless/"},
		{Path: dup.Path, Permalink: "https://example.com/unique/"},
	}

	problems := CheckBatch(records)
	require.Len(t, problems, 4)
	assert.Contains(t, problems[0], "duplicate permalink")
	assert.Contains(t, problems[1], "missing permalink")
	assert.Contains(t, problems[2], "empty path")
	assert.Contains(t, problems[3], "duplicate path")
}

func TestCheckCommand_CleanBatch(t *testing.T) {
	out, err := executeCommand(t, "check", "testdata/posts.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Records: 4")
	assert.Contains(t, out, "No problems found.")
	assert.Contains(t, out, "orderable by date: 3")
	assert.Contains(t, out, "orderable by path: 4")
}

func TestCheckCommand_FailsOnViolations(t *testing.T) {
	path := writeBatch(t, "bad.yaml", `
records:
  - path: content/a.md
    permalink: https://example.com/same/
  - path: content/b.md
    permalink: https://example.com/same/
`)

	out, err := executeCommand(t, "check", "--format", "json", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	problems, ok := data["problems"].([]interface{})
	require.True(t, ok)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "duplicate permalink")
}

func TestCheckCommand_MissingBatchFile(t *testing.T) {
	_, err := executeCommand(t, "check", "testdata/absent.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
