package models

type Category struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image,omitempty"`
	Parent Ref    `json:"parent"`
}

func (c Category) WithDefaults(defaultImage string) Category {
	if c.Image == "" {
		c.Image = defaultImage
	}
	return c
}

// CategoryNode is a top-level category with its subcategories.
type CategoryNode struct {
	Category
	Children []Category `json:"children"`
}
