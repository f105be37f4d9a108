package models

// Category is the closed set of content categories.
type Category string

const (
	CategoryDaily Category = "Daily"
	CategoryDev   Category = "Dev"
)

// CategoryInfo carries display metadata for a category. Immutable reference
// data; never created or mutated at runtime.
type CategoryInfo struct {
	Value       Category `json:"value"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
}

var Categories = map[Category]CategoryInfo{
	CategoryDaily: {
		Value:       CategoryDaily,
		Label:       "Daily",
		Description: "Daily life stories and personal reflections",
		Slug:        "daily-life",
	},
	CategoryDev: {
		Value:       CategoryDev,
		Label:       "Dev",
		Description: "Development tutorials and technical insights",
		Slug:        "development",
	},
}

// NormalizeCategory maps either spelling of a category (the localized Korean
// token or the English one) to the canonical English value. The canonical
// spelling is what gets persisted; the Korean spelling is accepted on input
// only.
func NormalizeCategory(raw string) (Category, bool) {
	switch raw {
	case "일상", string(CategoryDaily):
		return CategoryDaily, true
	case "개발", string(CategoryDev):
		return CategoryDev, true
	}
	return "", false
}

// CategoryBySlug resolves a category from its URL slug.
func CategoryBySlug(slug string) (Category, bool) {
	for value, info := range Categories {
		if info.Slug == slug {
			return value, true
		}
	}
	return "", false
}

func (c Category) Valid() bool {
	_, ok := Categories[c]
	return ok
}
