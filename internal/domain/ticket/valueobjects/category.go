package valueobjects

import (
	"fmt"
	"strings"
)

// Category is the closed ticket classification. It drives which fields a
// ticket carries and what kind of assignee it takes: Demo and Service route
// to a service center, Third Party and In Store route to a technician.
type Category string

const (
	CategoryDemo       Category = "Demo"
	CategoryService    Category = "Service"
	CategoryThirdParty Category = "Third Party"
	CategoryInStore    Category = "In Store"
)

var validCategories = map[Category]bool{
	CategoryDemo:       true,
	CategoryService:    true,
	CategoryThirdParty: true,
	CategoryInStore:    true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

// UsesServiceCenter reports whether the category assigns to a service center.
func (c Category) UsesServiceCenter() bool {
	return c == CategoryDemo || c == CategoryService
}

// UsesTechnician reports whether the category assigns to a technician and
// carries financial fields.
func (c Category) UsesTechnician() bool {
	return c == CategoryThirdParty || c == CategoryInStore
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// NormalizeCategory resolves a case/space-insensitive category spelling to
// its display name ("third  party" -> "Third Party"). Returns false when the
// input matches no category.
func NormalizeCategory(s string) (Category, bool) {
	key := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
	switch key {
	case "demo":
		return CategoryDemo, true
	case "service":
		return CategoryService, true
	case "third party":
		return CategoryThirdParty, true
	case "in store":
		return CategoryInStore, true
	}
	return "", false
}
