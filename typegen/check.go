package typegen

import (
	"bytes"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/teranos/i18ntypes/errors"
	"github.com/teranos/i18ntypes/logger"
)

// CheckResult holds the result of comparing a declaration file with its locales
type CheckResult struct {
	UpToDate   bool
	Missing    bool // output file does not exist yet
	OutputFile string
	Diff       string // unified diff, existing -> generated
}

// Check renders the declarations for localesDir and compares them with
// outputFile without writing anything.
//
// An empty locale directory counts as up to date, since Generate would not
// write either.
func Check(localesDir, outputFile string, opts Options) (*CheckResult, error) {
	localesDir, outputFile, err := absPaths(localesDir, outputFile)
	if err != nil {
		return nil, err
	}

	result, err := Render(localesDir, opts)
	if errors.IsNoLocales(err) {
		logger.Warnw("No locale files found for type generation.", logger.FieldDir, localesDir)
		return &CheckResult{UpToDate: true, OutputFile: outputFile}, nil
	}
	if err != nil {
		return nil, err
	}

	existing, err := os.ReadFile(outputFile)
	if errors.Is(err, os.ErrNotExist) {
		return &CheckResult{Missing: true, OutputFile: outputFile}, nil
	}
	if err != nil {
		return nil, errors.FileSystem(err, "failed to read %s", outputFile)
	}

	generated := []byte(result.Content)
	if bytes.Equal(existing, generated) {
		return &CheckResult{UpToDate: true, OutputFile: outputFile}, nil
	}

	diff, err := unifiedDiff(outputFile, string(existing), result.Content)
	if err != nil {
		return nil, err
	}

	return &CheckResult{OutputFile: outputFile, Diff: diff}, nil
}

func unifiedDiff(name, existing, generated string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(existing),
		B:        difflib.SplitLines(generated),
		FromFile: name,
		ToFile:   name + " (generated)",
		Context:  3,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to diff declarations")
	}
	return diff, nil
}
