package locale

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teranos/i18ntypes/errors"
	"github.com/teranos/i18ntypes/logger"
)

// FileSuffix marks translation files inside a locale directory
const FileSuffix = ".json"

// Order decides the sequence of documents, and with it the declaration
// order and the default namespace.
type Order string

const (
	// OrderSorted processes files by name, so output is stable across filesystems
	OrderSorted Order = "sorted"
	// OrderListing keeps whatever order the directory listing yields
	OrderListing Order = "listing"
)

// ParseOrder validates an order name
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case OrderSorted, OrderListing:
		return Order(s), nil
	case "":
		return OrderSorted, nil
	default:
		return "", errors.NewInvalidRequestError("unknown locale order %q (want %q or %q)", s, OrderSorted, OrderListing)
	}
}

// Document is one namespace: a translation file and its key tree
type Document struct {
	Namespace string
	File      string
	Root      *Node
}

// IsLocaleFile reports whether a file name is a translation file
func IsLocaleFile(name string) bool {
	return strings.HasSuffix(name, FileSuffix)
}

// NamespaceName derives the namespace from a translation file name
func NamespaceName(fileName string) string {
	return strings.TrimSuffix(filepath.Base(fileName), FileSuffix)
}

// ListFiles returns the translation file names in dir, in the requested order.
func ListFiles(dir string, order Order) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, errors.FileSystem(err, "failed to open locale directory %s", dir)
	}
	defer f.Close()

	// File.ReadDir keeps listing order; os.ReadDir would sort
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, errors.FileSystem(err, "failed to read locale directory %s", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !IsLocaleFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	if order != OrderListing {
		sort.Strings(names)
	}
	return names, nil
}

// LoadFile reads and parses one translation file
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FileSystem(err, "failed to read %s", path)
	}

	root, err := Parse(data)
	if err != nil {
		return nil, errors.WithHintf(
			errors.Wrapf(err, "failed to parse %s", path),
			"%s must contain a single JSON object", filepath.Base(path),
		)
	}

	return &Document{
		Namespace: NamespaceName(path),
		File:      path,
		Root:      root,
	}, nil
}

// LoadDir loads every translation file in dir.
//
// A directory without translation files yields no documents and no error;
// callers decide how to report that. Any unreadable or malformed file aborts
// the whole load.
func LoadDir(dir string, order Order) ([]*Document, error) {
	names, err := ListFiles(dir, order)
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, 0, len(names))
	for _, name := range names {
		doc, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		logger.Debugw("Parsed locale file",
			logger.FieldFile, name,
			logger.FieldNamespace, doc.Namespace,
			logger.FieldKeys, doc.Root.LeafCount(),
			logger.FieldDepth, doc.Root.Depth())

		docs = append(docs, doc)
	}

	return docs, nil
}
