// Package qyaml provides path-style queries over decoded YAML documents.
package qyaml

import (
	"strconv"
	"strings"

	"github.com/cquest/bagelbot/conv"
	"github.com/cquest/bagelbot/text"
	"gopkg.in/yaml.v2"
)

// YAML wraps a decoded YAML value. Keys may be nested paths separated by
// " > ", as in "irc > identify > password".
type YAML struct {
	YAML interface{}
}

// Parse decodes YAML text.
func Parse(b []byte) (YAML, error) {
	var res interface{}
	err := yaml.Unmarshal(b, &res)
	return YAML{res}, err
}

func splitPath(key string) []string {
	parts := strings.Split(key, ">")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Key looks up the value at the key path, or nil if any part is missing.
func (y YAML) Key(key string) interface{} {
	node := y.YAML
	for _, part := range splitPath(key) {
		m, ok := node.(map[interface{}]interface{})
		if !ok {
			return nil
		}
		node = m[part]
	}
	return node
}

// Has returns true if the key path exists.
func (y YAML) Has(key string) bool {
	return y.Key(key) != nil
}

// Sub returns the YAML rooted at key.
func (y YAML) Sub(key string) YAML {
	return YAML{y.Key(key)}
}

// String gets the value at key as a string, "" if absent.
func (y YAML) String(key string) string {
	return text.Str(y.Key(key))
}

// StringDefault gets the string at key, or def if absent or empty.
func (y YAML) StringDefault(key, def string) string {
	return text.FirstNotEmpty(y.String(key), def)
}

// Int gets the value at key as an int, or def if absent or not numeric.
func (y YAML) Int(key string, def int) int {
	switch v := y.Key(key).(type) {
	case int:
		return v
	case string:
		return text.ParseInt(v, def)
	}
	return def
}

// Bool gets the value at key as a bool, or def if absent.
func (y YAML) Bool(key string, def bool) bool {
	switch v := y.Key(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// StringSlice gets the list at key as a []string. A scalar value is treated
// as a list of one.
func (y YAML) StringSlice(key string) []string {
	return conv.IStringSlice(y.Key(key))
}

// StringMap gets the map at key as a map[string]string.
func (y YAML) StringMap(key string) map[string]string {
	return conv.IStringMap(y.Key(key))
}

// StringSliceMap gets the map at key as a map[string][]string.
func (y YAML) StringSliceMap(key string) map[string][]string {
	return conv.IStringSliceMap(y.Key(key))
}
