package core

import (
	"fmt"
	"strings"
)

// Category classifies an absorbable object
// Numeric values are grouped by family and stay stable across releases
type Category int

const (
	CategoryNone Category = 0

	// Food
	CategoryApple  Category = 10
	CategoryPear   Category = 11
	CategoryBanana Category = 12

	// Currency
	CategoryCoin Category = 20
	CategoryGem  Category = 21

	// Props
	CategoryBox    Category = 30
	CategoryRock   Category = 31
	CategoryBarrel Category = 32
)

var categoryNames = map[Category]string{
	CategoryNone:   "none",
	CategoryApple:  "apple",
	CategoryPear:   "pear",
	CategoryBanana: "banana",
	CategoryCoin:   "coin",
	CategoryGem:    "gem",
	CategoryBox:    "box",
	CategoryRock:   "rock",
	CategoryBarrel: "barrel",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory resolves a case-insensitive category name
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return CategoryNone, fmt.Errorf("unknown category %q", s)
}

// UnmarshalText lets categories appear by name in config files
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
