// Package models contains the client-side domain types: users, articles
// and form drafts.
package models

// User is the authenticated account as returned by the platform API.
// Token is the bearer credential issued on login or registration. The
// client treats it as opaque except for an expiry check at startup.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Token    string `json:"token"`
}
