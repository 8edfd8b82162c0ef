package gamedata

// A TextEntry is one localized string.
type TextEntry struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// Texts is the localized text table. Entity display fields hold keys into
// this table; they are resolved when a reply is built. A Texts is immutable
// once built.
type Texts struct {
	entries []TextEntry
	index   map[string]int
}

// NewTexts builds a text table. Later entries with a duplicate id replace
// the content of earlier ones but keep the earlier position.
func NewTexts(entries []TextEntry) *Texts {
	t := &Texts{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if i, ok := t.index[e.ID]; ok {
			t.entries[i].Content = e.Content
			continue
		}
		t.index[e.ID] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t
}

// Resolve returns the text for key, or "" if key is unknown.
func (t *Texts) Resolve(key string) string {
	if t == nil {
		return ""
	}
	if i, ok := t.index[key]; ok {
		return t.entries[i].Content
	}
	return ""
}

// Lookup returns the text for key and whether the key exists.
func (t *Texts) Lookup(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	i, ok := t.index[key]
	if !ok {
		return "", false
	}
	return t.entries[i].Content, true
}

// Entries returns every entry in load order. The slice must not be modified.
func (t *Texts) Entries() []TextEntry {
	if t == nil {
		return nil
	}
	return t.entries
}

// Len returns the number of entries.
func (t *Texts) Len() int {
	return len(t.Entries())
}
