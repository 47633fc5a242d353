package domain

import "time"

// MenuItem is a dish offered by the restaurant.
type MenuItem struct {
	ID        string
	Name      string
	Recipe    string
	Image     string
	Category  string
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MenuItemPatch carries the mutable fields of a menu item; nil fields are left untouched.
type MenuItemPatch struct {
	Name     *string
	Recipe   *string
	Image    *string
	Category *string
	Price    *float64
}

// Empty reports whether the patch changes nothing.
func (p MenuItemPatch) Empty() bool {
	return p.Name == nil && p.Recipe == nil && p.Image == nil && p.Category == nil && p.Price == nil
}
