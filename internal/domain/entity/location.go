// Package entity contains the core business objects of the project.
package entity

// DiningLocation is a read-only directory entry supplied by the static
// locations data file.
type DiningLocation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Campus      string   `json:"campus"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Latitude    float64  `json:"lat"`
	Longitude   float64  `json:"lng"`
	Hours       string   `json:"hours"`
	Payment     []string `json:"payment"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviews"`
}
