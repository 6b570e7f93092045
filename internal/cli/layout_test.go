package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutCommand_Text(t *testing.T) {
	opts := testRuntimeOpts(t, "text")

	out, err := execute(t, NewLayoutCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "Nodes (4):")
	assert.Contains(t, out, "Curves (4):")
	assert.Contains(t, out, "cold_start -> echoes_below")
}

func TestLayoutCommand_JSON(t *testing.T) {
	opts := testRuntimeOpts(t, "json")

	out, err := execute(t, NewLayoutCommand(opts))
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}
