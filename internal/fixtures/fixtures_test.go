package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFixtures(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "vectors.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsesDecimalFields(t *testing.T) {
	path := writeTempFixtures(t, `[
		{
			"seed": "100",
			"digest": "1000",
			"representation": "SWPoint",
			"priv": "100",
			"pub_x": "123",
			"pub_y": "456",
			"r": "789",
			"s": "1011"
		}
	]`)

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "SWPoint", entries[0].Representation)
	require.Equal(t, int64(1000), entries[0].Digest.Int64())
}

func TestLoadRejectsNonDecimalField(t *testing.T) {
	path := writeTempFixtures(t, `[{"seed": "0xabc", "digest": "1", "representation": "SWPoint", "priv": "1", "pub_x": "1", "pub_y": "1", "r": "1", "s": "1"}]`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingRepresentation(t *testing.T) {
	path := writeTempFixtures(t, `[{"seed": "1", "digest": "1", "priv": "1", "pub_x": "1", "pub_y": "1", "r": "1", "s": "1"}]`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.Error(t, err)
}
