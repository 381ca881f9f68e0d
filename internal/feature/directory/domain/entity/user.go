// Package entity defines the domain models for the directory feature.
package entity

import "time"

// User represents a directory entry identified by its handle.
// Handles are intended to be unique but the store does not enforce it;
// lookups that expect a single match treat duplicates as an integrity error.
type User struct {
	// ID is the surrogate key. Ascending ID is insertion order.
	ID uint `gorm:"primaryKey"`

	// Handle is the user-facing identifier, similar to a username.
	Handle string `gorm:"size:64;not null;index"`

	// FirstName and LastName are optional and stored as '' when absent.
	FirstName string `gorm:"size:255;not null;default:''"`
	LastName  string `gorm:"size:255;not null;default:''"`

	CreatedAt time.Time
}
