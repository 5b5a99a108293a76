// Package catalog splits the flat category list the backend returns into the
// two-level tree the category browser drills through.
package catalog

import "github.com/HSouheill/barrim_storefront/models"

// TopLevel returns the categories without a parent, in input order.
func TopLevel(categories []models.Category) []models.Category {
	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if c.Parent.IsZero() {
			out = append(out, c)
		}
	}
	return out
}

// Children returns the categories whose parent reference equals parentID.
// References are compared as strings, whichever JSON shape they came in.
func Children(categories []models.Category, parentID string) []models.Category {
	out := make([]models.Category, 0)
	if parentID == "" {
		return out
	}
	for _, c := range categories {
		if c.Parent.String() == parentID {
			out = append(out, c)
		}
	}
	return out
}

// Tree groups subcategories under their top-level category. A subcategory
// whose parent is missing from the list is an orphan and is left out.
func Tree(categories []models.Category) []models.CategoryNode {
	roots := TopLevel(categories)
	nodes := make([]models.CategoryNode, 0, len(roots))
	for _, root := range roots {
		nodes = append(nodes, models.CategoryNode{
			Category: root,
			Children: Children(categories, root.ID.String()),
		})
	}
	return nodes
}

// Find returns the category with the given id.
func Find(categories []models.Category, id string) (models.Category, bool) {
	for _, c := range categories {
		if c.ID.String() == id {
			return c, true
		}
	}
	return models.Category{}, false
}
