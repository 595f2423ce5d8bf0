package tokens

// requiredKeys lists the top-level keys each category document must carry,
// checked in order. Categories not listed have no structural requirement.
var requiredKeys = map[string][]string{
	CategoryColors:     {"colors"},
	CategoryTypography: {"fontFamilies", "fontSizes"},
	CategorySpacing:    {"spacing"},
}

// Validate checks every document for its required keys. The batch fails as a
// whole on the first missing key; documents are not modified.
func Validate(docs []Document) error {
	for _, doc := range docs {
		for _, key := range requiredKeys[doc.Category] {
			if _, ok := doc.Root.Get(key); !ok {
				return &MissingKeyError{Category: doc.Category, Key: key}
			}
		}
	}
	return nil
}

// RequiredKeys returns the keys Validate enforces for category.
func RequiredKeys(category string) []string {
	return append([]string(nil), requiredKeys[category]...)
}
