package model

import "time"

// User is a Google account that completed the OAuth flow.
type User struct {
	ID                    string
	Email                 string
	RefreshTokenEncrypted string // encrypted OAuth token JSON
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
