// Package entity contains the core business objects of the project.
package entity

import "time"

// DefaultReviewer is used when a review is submitted without a name.
const DefaultReviewer = "Student"

// LocationReview is a user-submitted review for a dining location.
// Reviews are append-only; the most recently appended one is shown as the
// location's latest review.
type LocationReview struct {
	Author string    `json:"name"`
	Text   string    `json:"text"`
	Time   time.Time `json:"time"`
}

// ReviewsByLocation maps a dining location ID to its ordered review list.
type ReviewsByLocation map[string][]LocationReview

// Latest returns the most recent review for the given location, or nil
// when none exist.
func (r ReviewsByLocation) Latest(locationID string) *LocationReview {
	reviews := r[locationID]
	if len(reviews) == 0 {
		return nil
	}

	return &reviews[len(reviews)-1]
}
