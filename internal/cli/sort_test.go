package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), err
}

func TestSortCommand_JSONOutput(t *testing.T) {
	out, err := executeCommand(t, "sort", "--by", "weight", "--format", "json", "testdata/weights.yaml")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "sort_weights", []byte(out))

	// The payload must also decode as the documented response shape.
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestSortCommand_TextOutput(t *testing.T) {
	out, err := executeCommand(t, "sort", "--by", "date", "testdata/posts.yaml")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "sort_posts_text", []byte(out))
}

func TestSortCommand_DeterministicAcrossWorkers(t *testing.T) {
	want, err := executeCommand(t, "sort", "--by", "title", "--workers", "1", "--format", "json", "testdata/posts.yaml")
	require.NoError(t, err)

	for _, workers := range []string{"2", "4", "9"} {
		out, err := executeCommand(t, "sort", "--by", "title", "--workers", workers, "--format", "json", "testdata/posts.yaml")
		require.NoError(t, err)
		assert.Equal(t, want, out, "workers=%s", workers)
	}
}

func TestSortCommand_InvalidCriterion(t *testing.T) {
	_, err := executeCommand(t, "sort", "--by", "flavor", "testdata/posts.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSortCommand_RejectsNoneCriterion(t *testing.T) {
	_, err := executeCommand(t, "sort", "--by", "none", "testdata/posts.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSortCommand_MissingBatchFile(t *testing.T) {
	_, err := executeCommand(t, "sort", "--by", "date", "testdata/absent.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
