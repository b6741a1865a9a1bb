package enum

// SearchMode selects between the index-backed prefix scan and the
// in-memory fuzzy scan of the product matcher.
type SearchMode string

const (
	SearchModeFast     SearchMode = "FAST"
	SearchModeAccurate SearchMode = "ACCURATE"
)

// ParseSearchMode maps a query-string value to a SearchMode, defaulting to FAST.
func ParseSearchMode(s string) SearchMode {
	if s == string(SearchModeAccurate) {
		return SearchModeAccurate
	}
	return SearchModeFast
}
