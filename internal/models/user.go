package models

// User is one row in the user listing.
type User struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}

// UserDetail is the full user record.
type UserDetail struct {
	ID        int64  `json:"id"`
	Nickname  string `json:"nickname"`
	CreatedAt string `json:"createdAt,omitempty"`
}
