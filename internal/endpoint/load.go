package endpoint

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

//go:embed endpoints/*.json
var bundled embed.FS

// Load reads one descriptor document from disk and returns its operations.
func Load(file string) ([]Operation, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "endpoint: reading descriptor")
	}
	return parseOperations(file, data)
}

// LoadDir loads every .json, .yaml and .yml document in dir, in file-name
// order.
func LoadDir(dir string) ([]Operation, error) {
	return loadFS(os.DirFS(dir), ".")
}

// Bundled returns the operations of the descriptor set compiled into the
// binary.
func Bundled() ([]Operation, error) {
	return loadFS(bundled, "endpoints")
}

func loadFS(fsys fs.FS, dir string) ([]Operation, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "endpoint: reading %s", dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !isDescriptorFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, errors.Errorf("endpoint: no descriptor documents in %s", dir)
	}

	var ops []Operation
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "endpoint: reading %s", name)
		}
		fileOps, err := parseOperations(name, data)
		if err != nil {
			return nil, err
		}
		ops = append(ops, fileOps...)
	}
	return ops, nil
}

func parseOperations(name string, data []byte) ([]Operation, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, filepath.Base(name))
	}
	ops, err := doc.Operations()
	if err != nil {
		return nil, errors.Wrap(err, filepath.Base(name))
	}
	return ops, nil
}

func isDescriptorFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
