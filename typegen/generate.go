package typegen

import (
	"os"
	"path/filepath"
	"time"

	"github.com/teranos/i18ntypes/errors"
	"github.com/teranos/i18ntypes/locale"
	"github.com/teranos/i18ntypes/logger"
)

// OutputPermissions for the declaration file
const OutputPermissions = 0644

// Render loads localesDir and assembles the declaration file without writing it.
// A directory with no translation files yields ErrNoLocales.
func Render(localesDir string, opts Options) (*Result, error) {
	docs, err := locale.LoadDir(localesDir, opts.Order)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrNoLocales, "%s", localesDir),
			"add at least one %s file to %s", locale.FileSuffix, localesDir,
		)
	}

	result, err := Emit(docs, opts)
	if err != nil {
		return nil, err
	}
	result.LocalesDir = localesDir
	return result, nil
}

// Generate writes the declaration file for localesDir to outputFile.
//
// An empty locale directory logs a warning and writes nothing; the returned
// Result then has Written unset. Parse and file system errors abort before the
// destination is touched.
func Generate(localesDir, outputFile string, opts Options) (*Result, error) {
	start := time.Now()
	log := logger.ComponentLogger("typegen")

	localesDir, outputFile, err := absPaths(localesDir, outputFile)
	if err != nil {
		return nil, err
	}

	result, err := Render(localesDir, opts)
	if errors.IsNoLocales(err) {
		log.Warnw("No locale files found for type generation.", logger.FieldDir, localesDir)
		return &Result{LocalesDir: localesDir, OutputFile: outputFile}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := writeAtomic(outputFile, []byte(result.Content)); err != nil {
		return nil, err
	}
	result.OutputFile = outputFile
	result.Written = true

	log.Infow("Generated i18n types",
		logger.FieldOutput, outputFile,
		logger.FieldNamespaces, result.Namespaces,
		logger.FieldSize, len(result.Content),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return result, nil
}

func absPaths(localesDir, outputFile string) (string, string, error) {
	dir, err := filepath.Abs(localesDir)
	if err != nil {
		return "", "", errors.FileSystem(err, "failed to resolve %s", localesDir)
	}
	out, err := filepath.Abs(outputFile)
	if err != nil {
		return "", "", errors.FileSystem(err, "failed to resolve %s", outputFile)
	}
	return dir, out, nil
}

// writeAtomic replaces path with data via a temp file in the same directory,
// creating parent directories as needed
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.FileSystem(err, "failed to create output directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.FileSystem(err, "failed to create temp file in %s", dir)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.FileSystem(err, "failed to write %s", tmpName)
	}
	if err := tmp.Chmod(OutputPermissions); err != nil {
		tmp.Close()
		return errors.FileSystem(err, "failed to set permissions on %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.FileSystem(err, "failed to close %s", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.FileSystem(err, "failed to replace %s", path)
	}
	return nil
}
