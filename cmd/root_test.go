package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hilt-lab/hiltnlp/gate"
	"github.com/hilt-lab/hiltnlp/turns"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"turns", "speakers", "causal"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestInputFlagRequired(t *testing.T) {
	for _, c := range []string{"turns", "speakers", "causal"} {
		sub, _, err := rootCmd.Find([]string{c})
		require.NoError(t, err)
		flag := sub.Flags().Lookup("annotation-file")
		require.NotNil(t, flag, "%s has no input flag", c)
		assert.Equal(t, "i", flag.Shorthand)
	}
}

func extractFixture(t *testing.T) []*turns.Turn {
	t.Helper()
	sentences := []*gate.Annotation{
		gate.NewAnnotation(1, "Sentence", 0, 8, "A: hello"),
		gate.NewAnnotation(2, "Sentence", 9, 16, "B: okay"),
	}
	seg, err := turns.Extract(sentences, false)
	require.NoError(t, err)
	return seg.Turns()
}

func TestExportTurnsJSON(t *testing.T) {
	dir := t.TempDir()
	path, err := exportTurns(dir, "conv.xml", extractFixture(t), "json")
	require.NoError(t, err)
	assert.Equal(t, "conv_turns.json", filepath.Base(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var bundle exportBundle
	require.NoError(t, json.Unmarshal(raw, &bundle))
	assert.Equal(t, "conv.xml", bundle.File)
	require.Len(t, bundle.Turns, 2)
	assert.Equal(t, "A", bundle.Turns[0].Speaker)
	assert.Equal(t, "B", bundle.Turns[1].Speaker)
}

func TestExportTurnsYAML(t *testing.T) {
	dir := t.TempDir()
	path, err := exportTurns(dir, "conv.xml", extractFixture(t), "yaml")
	require.NoError(t, err)
	assert.Equal(t, "conv_turns.yaml", filepath.Base(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "speaker: A")
}
