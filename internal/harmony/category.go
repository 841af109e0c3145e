// Package harmony computes colour harmonies from a base hue and renders them
// as CSS colour strings in the OKLCH or HSL colour spaces.
package harmony

import (
	"slices"
	"strings"
)

// Category is a harmony relationship between hues.
type Category string

const (
	// CategoryPrimary is the base hue itself.
	CategoryPrimary Category = "primary"
	// CategoryComplementary is the hue opposite the base.
	CategoryComplementary Category = "complementary"
	// CategoryAnalogous covers the neighbouring hues either side of the base.
	CategoryAnalogous Category = "analogous"
	// CategoryTriadic splits the wheel into thirds.
	CategoryTriadic Category = "triadic"
	// CategorySplit flanks the complementary hue.
	CategorySplit Category = "split"
	// CategoryTetradic splits the wheel into quarters.
	CategoryTetradic Category = "tetradic"
)

// legacyAnalogous is the spelling used by older palette files and URLs.
const legacyAnalogous = "analagous"

// Categories returns every harmony category in catalog order.
func Categories() []Category {
	return []Category{
		CategoryPrimary,
		CategoryAnalogous,
		CategoryTetradic,
		CategoryTriadic,
		CategorySplit,
		CategoryComplementary,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// ParseCategory parses a category name. Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == legacyAnalogous {
		return CategoryAnalogous, nil
	}
	c := Category(name)
	if !c.Valid() {
		return "", &InvalidEnumError{Kind: "harmony category", Value: s}
	}
	return c, nil
}

// CategorySet is an unordered set of categories.
type CategorySet map[Category]struct{}

// NewCategorySet returns a set holding the given categories.
func NewCategorySet(categories ...Category) CategorySet {
	set := make(CategorySet, len(categories))
	for _, c := range categories {
		set.Add(c)
	}
	return set
}

// ParseCategorySet parses category names into a set. Each value may itself
// be a comma-separated list. Parsing stops at the first unknown name.
func ParseCategorySet(values []string) (CategorySet, error) {
	set := make(CategorySet)
	for _, value := range values {
		for _, token := range strings.Split(value, ",") {
			if strings.TrimSpace(token) == "" {
				continue
			}
			c, err := ParseCategory(token)
			if err != nil {
				return nil, err
			}
			set.Add(c)
		}
	}
	return set, nil
}

// Add inserts c into the set.
func (s CategorySet) Add(c Category) {
	s[c] = struct{}{}
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of categories in the set.
func (s CategorySet) Len() int {
	return len(s)
}

// Sorted returns the members in catalog order, followed by any unknown
// members in lexical order.
func (s CategorySet) Sorted() []Category {
	out := make([]Category, 0, len(s))
	for _, c := range Categories() {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	var unknown []Category
	for c := range s {
		if !c.Valid() {
			unknown = append(unknown, c)
		}
	}
	slices.Sort(unknown)
	return append(out, unknown...)
}

// validate returns an error for the first member outside the closed set.
func (s CategorySet) validate() error {
	for _, c := range s.Sorted() {
		if !c.Valid() {
			return &InvalidEnumError{Kind: "harmony category", Value: string(c)}
		}
	}
	return nil
}
