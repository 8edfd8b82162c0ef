// Package conv converts the loosely typed values produced by the YAML decoder
// into plain Go maps and slices.
package conv

import "github.com/cquest/bagelbot/text"

// IStringMap converts v into a map[string]string, provided v is really a
// map[interface{}]interface{}. If not, returns an empty string map.
func IStringMap(v interface{}) map[string]string {
	res := map[string]string{}
	if keyMap, ok := v.(map[interface{}]interface{}); ok {
		for key, value := range keyMap {
			res[text.Str(key)] = text.Str(value)
		}
	}
	return res
}

// IStringSlice converts islice into a []string, provided islice is a
// []interface{}. A lone scalar is treated as a one-element slice.
func IStringSlice(islice interface{}) []string {
	switch v := islice.(type) {
	case nil:
		return nil
	case []interface{}:
		sarr := make([]string, len(v))
		for i, item := range v {
			sarr[i] = text.Str(item)
		}
		return sarr
	case map[interface{}]interface{}:
		return nil
	default:
		return []string{text.Str(v)}
	}
}

// IStringSliceMap converts a YAML map whose values are strings or lists of
// strings into a map[string][]string.
func IStringSliceMap(v interface{}) map[string][]string {
	res := map[string][]string{}
	if keyMap, ok := v.(map[interface{}]interface{}); ok {
		for key, value := range keyMap {
			res[text.Str(key)] = IStringSlice(value)
		}
	}
	return res
}

// StringSliceSet converts a []string into a map[string]bool where the keys
// in the map are values in the []string mapped to true.
func StringSliceSet(slice []string) map[string]bool {
	res := make(map[string]bool)
	for _, val := range slice {
		res[val] = true
	}
	return res
}
