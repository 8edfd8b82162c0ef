// Package resource locates and parses files under the bot's root directory.
package resource

import (
	"github.com/cquest/bagelbot/qyaml"
	"github.com/cquest/bagelbot/root"
	"github.com/pkg/errors"
)

// Root is the bot root, from $BAGELBOT_ROOT or the working directory.
var Root = root.New("", "BAGELBOT_ROOT")

// ParseYAML reads and parses the YAML file at path relative to Root.
func ParseYAML(path string) (qyaml.YAML, error) {
	return ParseYAMLIn(Root, path)
}

// ParseYAMLIn reads and parses the YAML file at path relative to r.
func ParseYAMLIn(r root.Root, path string) (qyaml.YAML, error) {
	b, err := r.Bytes(path)
	if err != nil {
		return qyaml.YAML{}, errors.Wrapf(err, "read %s", r.Path(path))
	}
	y, err := qyaml.Parse(b)
	if err != nil {
		return qyaml.YAML{}, errors.Wrapf(err, "parse %s", r.Path(path))
	}
	return y, nil
}

// MustParseYAML parses the YAML file at path, panicking on error.
func MustParseYAML(path string) qyaml.YAML {
	y, err := ParseYAML(path)
	if err != nil {
		panic(err)
	}
	return y
}
