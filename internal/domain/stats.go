package domain

// AdminStats summarizes the store for the dashboard.
type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menu_items"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// CategorySales aggregates sold quantity and revenue per menu category.
type CategorySales struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}
