package root

import (
	"os"
	"path/filepath"
)

// A Root is the tree root for the bot's configuration and data directories.
type Root string

// New creates a root defaulting to defroot, overridden by the values of any
// of the given envVars, where the first-non-empty var wins. An empty result
// falls back to the working directory.
func New(defroot string, envVars ...string) Root {
	root := defroot
	for _, env := range envVars {
		if value := os.Getenv(env); value != "" {
			root = value
			break
		}
	}
	if root == "" {
		var err error
		if root, err = os.Getwd(); err != nil {
			panic(err)
		}
	}
	return Root(root)
}

// Root gets the root directory path
func (r Root) Root() string { return string(r) }

// Path converts path to a path under r. Absolute paths are returned as-is.
func (r Root) Path(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(string(r), path)
}

// Bytes reads the file at path in r as a []byte
func (r Root) Bytes(path string) ([]byte, error) {
	return os.ReadFile(r.Path(path))
}

// Exists checks if path exists under r.
func (r Root) Exists(path string) bool {
	_, err := os.Stat(r.Path(path))
	return err == nil
}
