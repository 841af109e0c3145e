package harmony

import (
	"fmt"
	"slices"
)

// Entry is a single row of the harmony catalog: a fixed hue offset from the
// base hue and the categories it belongs to.
type Entry struct {
	Categories  []Category
	Identifiers []string
	Label       string
	AngleOffset int
}

// In reports whether any of the entry's categories is in set.
func (e Entry) In(set CategorySet) bool {
	for _, c := range e.Categories {
		if set.Has(c) {
			return true
		}
	}
	return false
}

// Entries is an ordered sequence of catalog entries.
type Entries []Entry

// catalog is declared in hue-ascending order. The two 270 degree rows differ in
// category membership and must stay separate.
var catalog = Entries{
	{
		Categories:  []Category{CategoryPrimary},
		Identifiers: []string{"primary"},
		Label:       "Primary",
		AngleOffset: 0,
	},
	{
		Categories:  []Category{CategoryAnalogous},
		Identifiers: []string{"analagous-1"},
		Label:       "Analogous 1",
		AngleOffset: 30,
	},
	{
		Categories:  []Category{CategoryAnalogous},
		Identifiers: []string{"analagous-2"},
		Label:       "Analogous 2",
		AngleOffset: 60,
	},
	{
		Categories:  []Category{CategoryAnalogous, CategoryTetradic},
		Identifiers: []string{"analagous-3", "tetradic-1"},
		Label:       "Analogous 3 / Tetradic 1",
		AngleOffset: 90,
	},
	{
		Categories:  []Category{CategoryTriadic},
		Identifiers: []string{"triadic-1"},
		Label:       "Triadic 1",
		AngleOffset: 120,
	},
	{
		Categories:  []Category{CategorySplit},
		Identifiers: []string{"split-1"},
		Label:       "Split Complementary 1",
		AngleOffset: 150,
	},
	{
		Categories:  []Category{CategoryComplementary, CategoryTetradic},
		Identifiers: []string{"complementary", "tetradic-2"},
		Label:       "Complementary / Tetradic 2",
		AngleOffset: 180,
	},
	{
		Categories:  []Category{CategorySplit},
		Identifiers: []string{"split-2"},
		Label:       "Split Complementary 2",
		AngleOffset: 210,
	},
	{
		Categories:  []Category{CategoryTriadic},
		Identifiers: []string{"triadic-2"},
		Label:       "Triadic 2",
		AngleOffset: 240,
	},
	{
		Categories:  []Category{CategoryTetradic},
		Identifiers: []string{"tetradic-3"},
		Label:       "Tetradic 3",
		AngleOffset: 270,
	},
	{
		Categories:  []Category{CategoryAnalogous},
		Identifiers: []string{"analagous-negative-3"},
		Label:       "Analogous -3",
		AngleOffset: 270,
	},
	{
		Categories:  []Category{CategoryAnalogous},
		Identifiers: []string{"analagous-negative-2"},
		Label:       "Analogous -2",
		AngleOffset: 300,
	},
	{
		Categories:  []Category{CategoryAnalogous},
		Identifiers: []string{"analagous-negative-1"},
		Label:       "Analogous -1",
		AngleOffset: 330,
	},
}

// Catalog returns a copy of the built-in harmony catalog in declaration order.
// Callers may modify the result without affecting later calls.
func Catalog() Entries {
	out := make(Entries, len(catalog))
	for i, e := range catalog {
		out[i] = Entry{
			Categories:  slices.Clone(e.Categories),
			Identifiers: slices.Clone(e.Identifiers),
			Label:       e.Label,
			AngleOffset: e.AngleOffset,
		}
	}
	return out
}

// Offsets returns the angle offsets of every entry in category c, in
// declaration order.
func (es Entries) Offsets(c Category) []int {
	var offsets []int
	for _, e := range es {
		if slices.Contains(e.Categories, c) {
			offsets = append(offsets, e.AngleOffset)
		}
	}
	return offsets
}

// Validate checks the structural invariants of a catalog: every entry has at
// least one known category and identifier, offsets lie in [0, 360),
// identifiers are unique and no (category, offset) pair appears twice.
func (es Entries) Validate() error {
	type slot struct {
		category Category
		offset   int
	}
	seenIDs := make(map[string]int)
	seenSlots := make(map[slot]int)

	for i, e := range es {
		if len(e.Categories) == 0 {
			return fmt.Errorf("entry %d (%s): no categories", i, e.Label)
		}
		if len(e.Identifiers) == 0 {
			return fmt.Errorf("entry %d (%s): no identifiers", i, e.Label)
		}
		if e.AngleOffset < 0 || e.AngleOffset >= 360 {
			return fmt.Errorf("entry %d (%s): angle offset %d outside [0, 360)", i, e.Label, e.AngleOffset)
		}
		for _, c := range e.Categories {
			if !c.Valid() {
				return fmt.Errorf("entry %d (%s): %w", i, e.Label,
					&InvalidEnumError{Kind: "harmony category", Value: string(c)})
			}
			key := slot{category: c, offset: e.AngleOffset}
			if prev, ok := seenSlots[key]; ok {
				return fmt.Errorf("entry %d (%s): %s at %d degrees already declared by entry %d",
					i, e.Label, c, e.AngleOffset, prev)
			}
			seenSlots[key] = i
		}
		for _, id := range e.Identifiers {
			if prev, ok := seenIDs[id]; ok {
				return fmt.Errorf("entry %d (%s): identifier %q already used by entry %d", i, e.Label, id, prev)
			}
			seenIDs[id] = i
		}
	}
	return nil
}
