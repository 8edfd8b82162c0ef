package stringnorm

import "strings"

// An AliasMapper maps alternate names onto a canonical name. It is built
// from a canonical -> aliases map, as found in configuration.
type AliasMapper map[string]string

// NewAliasMapper inverts canonical -> aliases into alias -> canonical.
// Keys are case-insensitive.
func NewAliasMapper(aliases map[string][]string) AliasMapper {
	m := AliasMapper{}
	for canonical, names := range aliases {
		for _, name := range names {
			m[strings.ToLower(name)] = canonical
		}
	}
	return m
}

// Merge adds the aliases in other that m does not already define.
func (m AliasMapper) Merge(other AliasMapper) AliasMapper {
	for k, v := range other {
		if _, exists := m[k]; !exists {
			m[k] = v
		}
	}
	return m
}

// Map returns the canonical name for text, or text lower-cased if it is
// not an alias.
func (m AliasMapper) Map(text string) string {
	res, _ := m.Normalize(text)
	return res
}

// Normalize implements Normalizer.
func (m AliasMapper) Normalize(text string) (string, error) {
	key := strings.ToLower(text)
	if canonical, ok := m[key]; ok {
		return canonical, nil
	}
	return key, nil
}
