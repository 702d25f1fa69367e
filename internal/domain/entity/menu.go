// Package entity contains the core business objects of the project.
package entity

// MenuTag is a dietary or flavor label attached to a menu item.
type MenuTag string

const (
	TagVegetarian MenuTag = "vegetarian"
	TagVegan      MenuTag = "vegan"
	TagSpicy      MenuTag = "spicy"
	TagHealthy    MenuTag = "healthy"
	TagGlutenFree MenuTag = "glutenfree"
)

// MenuItem is a read-only catalog entry supplied by the static menu data
// file. The catalog itself is never mutated; filtering produces views
// over it.
type MenuItem struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Meal        string    `json:"meal"`
	Station     string    `json:"station"`
	Tags        []MenuTag `json:"tags"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviews"`
}

// HasTag reports whether the item carries the given tag.
func (m *MenuItem) HasTag(tag MenuTag) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}

	return false
}
