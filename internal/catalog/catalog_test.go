// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestExpand(t *testing.T) {
	got := Expand("All about {topic} and {topic} again.", "Go")
	assert.Equal(t, "All about Go and Go again.", got)
}

func TestLoadOverridesListsWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
titles:
  - "# {topic} One"
  - "# {topic} Two"
  - "# {topic} Three"
fillers:
  - "Custom filler sentence."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, cat.Titles, 3)
	assert.True(t, strings.HasPrefix(cat.Titles[0], "# {topic} One"))
	assert.Equal(t, []string{"Custom filler sentence."}, cat.Fillers)
	// Absent fields keep their defaults.
	assert.Equal(t, Default().Conclusion, cat.Conclusion)
	assert.NotEmpty(t, cat.Sections)
}

func TestLoadRejectsTooFewTitles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("titles:\n  - \"# {topic}\"\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title templates")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
