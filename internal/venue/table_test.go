package venue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "venues.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTable(t *testing.T) {
	path := writeTable(t, `venues:
  - name: Montevideo
    country: Uruguay
    requires_customs: true
  - name: Rosario
    country: Argentina
    requires_customs: false
`)

	entries, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "Montevideo", Country: "Uruguay", RequiresCustoms: true},
		{Name: "Rosario", Country: "Argentina", RequiresCustoms: false},
	}, entries)
}

func TestLoadTable_Invalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadTable(writeTable(t, "venues: [broken"))
		assert.Error(t, err)
	})

	t.Run("entry without country", func(t *testing.T) {
		_, err := LoadTable(writeTable(t, "venues:\n  - name: Montevideo\n"))
		assert.Error(t, err)
	})
}
