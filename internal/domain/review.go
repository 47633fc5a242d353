package domain

import "time"

// Review is customer feedback shown on the landing page.
type Review struct {
	ID        string
	UID       string
	Name      string
	Details   string
	Rating    int
	CreatedAt time.Time
}
