package ledger

import "fmt"

// Category classifies expenses, budgets, and recurring templates.
// The set is closed; free-text categories are rejected at the boundary.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryRent          Category = "Rent"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealthcare    Category = "Healthcare"
	CategoryShopping      Category = "Shopping"
	CategoryUtilities     Category = "Utilities"
	CategoryOther         Category = "Other"
)

// Categories returns all known categories in display order
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryRent,
		CategoryTransport,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryShopping,
		CategoryUtilities,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryRent, CategoryTransport, CategoryEntertainment,
		CategoryHealthcare, CategoryShopping, CategoryUtilities, CategoryOther:
		return true
	}
	return false
}

// String returns the display name
func (c Category) String() string { return string(c) }

// ParseCategory converts a raw string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}
