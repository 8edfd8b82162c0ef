package stringnorm

// An ExactReplacer will substitute the text After if given the text Before,
// and will return other text unmodified. A match is final.
type ExactReplacer struct {
	Before, After string
}

// Normalize returns e.After if text==e.Before, or text otherwise.
func (e *ExactReplacer) Normalize(text string) (string, error) {
	if text == e.Before {
		return e.After, ErrNormalizeComplete
	}
	return text, nil
}

// Exact returns an ExactReplacer for before -> after.
func Exact(before, after string) Normalizer {
	return &ExactReplacer{Before: before, After: after}
}
