package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Dir is a Source reading <dir>/<kind>.json, each file holding a JSON
// array of records.
type Dir struct {
	Path string
}

// NewDir creates a Dir source rooted at path.
func NewDir(path string) Dir {
	return Dir{Path: path}
}

// File returns the path of the file holding kind.
func (d Dir) File(kind Kind) string {
	return filepath.Join(d.Path, string(kind)+".json")
}

// Records reads the records of kind. A missing file yields no records.
func (d Dir) Records(ctx context.Context, kind Kind) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file := d.File(kind)
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", file)
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, errors.Wrapf(err, "parse %s", file)
	}
	return recs, nil
}

// Files returns the data files of every kind that exists in the
// directory.
func (d Dir) Files() []string {
	var files []string
	for _, k := range Kinds {
		file := d.File(k)
		if _, err := os.Stat(file); err == nil {
			files = append(files, file)
		}
	}
	return files
}
