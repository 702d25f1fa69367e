// Package entity contains the core business objects of the project.
package entity

import "regexp"

// LoyaltyPerOrder is the flat discount-score bonus granted per finalized
// order.
const LoyaltyPerOrder = 10

// gwidPattern is the campus ID shape: the letter G followed by eight
// digits, case-insensitive.
var gwidPattern = regexp.MustCompile(`^[Gg]\d{8}$`)

// ValidGWID reports whether the given campus ID matches the required
// pattern (e.g. G34488884).
func ValidGWID(gwid string) bool {
	return gwidPattern.MatchString(gwid)
}

// UserSession is the single optional logged-in user of the app. A new
// login unconditionally replaces any prior session; there is no backend
// identity to check against. The stored credential is opaque and is never
// verified against anything.
type UserSession struct {
	Name          string        `json:"name"`
	GWID          string        `json:"gwid"`
	Credential    string        `json:"password"`
	DiscountScore int           `json:"discountScore"`
	Orders        []OrderRecord `json:"orders"`
}

// RecordOrder appends a completed order to the history and adds the fixed
// per-order loyalty bonus.
func (u *UserSession) RecordOrder(rec OrderRecord) {
	u.Orders = append(u.Orders, rec)
	u.DiscountScore += LoyaltyPerOrder
}
