package model

// CategoryIcon is a closed enumeration of the icons a category can carry.
//
// A typed constant set instead of a free-form icon name means an unknown
// icon is a seed-load error, not a render-time fallback.
type CategoryIcon string

const (
	IconGamepad  CategoryIcon = "gamepad"
	IconFilm     CategoryIcon = "film"
	IconDumbbell CategoryIcon = "dumbbell"
	IconMusic    CategoryIcon = "music"
	IconUtensils CategoryIcon = "utensils"
	IconMapPin   CategoryIcon = "map-pin"
	IconBookOpen CategoryIcon = "book-open"
	IconSparkles CategoryIcon = "sparkles"
)

// Valid reports whether the icon is one of the known identifiers.
func (i CategoryIcon) Valid() bool {
	switch i {
	case IconGamepad, IconFilm, IconDumbbell, IconMusic,
		IconUtensils, IconMapPin, IconBookOpen, IconSparkles:
		return true
	}
	return false
}

// Category is static reference data: the fixed set of activity categories an
// advertisement can belong to. Categories are seeded once at store
// construction and never change at runtime.
type Category struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Icon  CategoryIcon `json:"icon"`
	Color string       `json:"color"`
}
