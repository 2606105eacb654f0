// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an authenticatable principal. PasswordHash is opaque and must
// never be logged or returned to a client.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
