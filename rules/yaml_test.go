package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	const doc = `
rules:
  - name: mortality
    premises: ["X is_a man"]
    conclusion: "X is_a mortal"
    confidence: 0.9
  - name: bare
    premises: ["a"]
    conclusion: "b"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	got, err := LoadYAMLFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "mortality", got[0].Name)
	require.Equal(t, 0.9, got[0].Confidence)
	require.Equal(t, 1.0, got[1].Confidence)
}
