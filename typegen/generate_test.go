package typegen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/i18ntypes/errors"
	"github.com/teranos/i18ntypes/logger"
)

func writeLocales(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func TestGenerate_WritesDeclarationFile(t *testing.T) {
	root := t.TempDir()
	localesDir := filepath.Join(root, "locales")
	outputFile := filepath.Join(root, "src", "lib", "i18n", "i18n.d.ts")

	writeLocales(t, localesDir, map[string]string{
		"common.json": `{"a": {"b": "x"}, "c": "y"}`,
		"notes.txt":   "ignored",
	})

	result, err := Generate(localesDir, outputFile, Options{})
	require.NoError(t, err)
	assert.True(t, result.Written)
	assert.Equal(t, outputFile, result.OutputFile)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, commonOnlyOutput, string(data))

	info, err := os.Stat(outputFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(OutputPermissions), info.Mode().Perm())
}

func TestGenerate_Idempotent(t *testing.T) {
	root := t.TempDir()
	localesDir := filepath.Join(root, "locales")
	outputFile := filepath.Join(root, "i18n.d.ts")

	writeLocales(t, localesDir, map[string]string{
		"common.json": `{"ok": "OK", "nav": {"home": "Home"}}`,
		"errors.json": `{"notFound": "Not found"}`,
		"auth.json":   `{"login": {"title": "Sign in"}}`,
	})

	_, err := Generate(localesDir, outputFile, Options{})
	require.NoError(t, err)
	first, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	_, err = Generate(localesDir, outputFile, Options{})
	require.NoError(t, err)
	second, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
	assert.Contains(t, string(first), "defaultNS: 'auth';")
}

func TestGenerate_EmptyDirectoryWritesNothing(t *testing.T) {
	root := t.TempDir()
	localesDir := filepath.Join(root, "locales")
	outputFile := filepath.Join(root, "out", "i18n.d.ts")
	writeLocales(t, localesDir, map[string]string{"README.md": "# locales"})

	var buf bytes.Buffer
	require.NoError(t, logger.InitializeWithWriter(&buf, true, 0))
	t.Cleanup(func() { require.NoError(t, logger.InitializeWithWriter(&bytes.Buffer{}, false, 0)) })

	result, err := Generate(localesDir, outputFile, Options{})
	require.NoError(t, err)
	assert.False(t, result.Written)

	_, err = os.Stat(outputFile)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Dir(outputFile))
	assert.True(t, os.IsNotExist(err), "output directory should not be created")

	assert.Contains(t, buf.String(), "No locale files found for type generation.")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestGenerate_MalformedJSONLeavesOutputUnchanged(t *testing.T) {
	root := t.TempDir()
	localesDir := filepath.Join(root, "locales")
	outputFile := filepath.Join(root, "i18n.d.ts")

	writeLocales(t, localesDir, map[string]string{
		"common.json": `{"ok": "OK"}`,
		"errors.json": `{"broken": `,
	})

	t.Run("absent destination stays absent", func(t *testing.T) {
		_, err := Generate(localesDir, outputFile, Options{})
		require.Error(t, err)
		assert.True(t, errors.IsParseError(err))
		assert.Contains(t, err.Error(), "errors.json")

		_, statErr := os.Stat(outputFile)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("existing destination is untouched", func(t *testing.T) {
		previous := []byte("// previous declarations\n")
		require.NoError(t, os.WriteFile(outputFile, previous, 0644))

		_, err := Generate(localesDir, outputFile, Options{})
		require.Error(t, err)

		data, readErr := os.ReadFile(outputFile)
		require.NoError(t, readErr)
		assert.Equal(t, previous, data)
	})

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temp file left behind")
	}
}

func TestGenerate_MissingLocalesDir(t *testing.T) {
	root := t.TempDir()

	_, err := Generate(filepath.Join(root, "nope"), filepath.Join(root, "i18n.d.ts"), Options{})
	require.Error(t, err)
	assert.True(t, errors.IsFileSystemError(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestGenerate_OverwritesExistingFile(t *testing.T) {
	root := t.TempDir()
	localesDir := filepath.Join(root, "locales")
	outputFile := filepath.Join(root, "i18n.d.ts")

	writeLocales(t, localesDir, map[string]string{"common.json": `{"a": {"b": "x"}, "c": "y"}`})
	require.NoError(t, os.WriteFile(outputFile, []byte("stale"), 0644))

	_, err := Generate(localesDir, outputFile, Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, commonOnlyOutput, string(data))
}

func TestRender_EmptyDirectory(t *testing.T) {
	_, err := Render(t.TempDir(), Options{})
	require.Error(t, err)
	assert.True(t, errors.IsNoLocales(err))
}
