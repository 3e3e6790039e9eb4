// Package model defines the core domain types for the tally application.
package model

// Category represents a user-defined expense category. The ID is supplied
// by the caller when the category is created and never changes afterwards.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	// LinkedDescriptions holds free-text fragments used to guess a
	// category from an expense description. Stored case-sensitively,
	// matched case-insensitively.
	LinkedDescriptions []string `json:"linkedDescriptions"`
}

// Clone returns a deep copy of the category.
func (c Category) Clone() Category {
	out := c
	if c.LinkedDescriptions != nil {
		out.LinkedDescriptions = make([]string, len(c.LinkedDescriptions))
		copy(out.LinkedDescriptions, c.LinkedDescriptions)
	}
	return out
}

// CategoryPatch describes a partial update to a category. Nil fields
// preserve the existing value; present fields overwrite it.
type CategoryPatch struct {
	Name  *string
	Color *string
	// A nil slice preserves the existing linked descriptions; a non-nil
	// slice (including an empty one) replaces them.
	LinkedDescriptions []string
}

// Apply merges the patch into the category, patch fields winning.
func (p CategoryPatch) Apply(c Category) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.LinkedDescriptions != nil {
		c.LinkedDescriptions = make([]string, len(p.LinkedDescriptions))
		copy(c.LinkedDescriptions, p.LinkedDescriptions)
	}
	return c
}
