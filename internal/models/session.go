package models

// Session is the authenticated admin identity. It is created on successful
// sign-in and persisted as JSON; a rendered authenticated view never exists
// without a valid Session.
type Session struct {
	// ID is the admin account's server-assigned identifier.
	ID int64 `json:"id"`

	// Nickname is the admin's display name, also the sign-in credential.
	Nickname string `json:"nickname"`
}

// Valid reports whether the session is structurally usable. Deserialized
// blobs failing this check are discarded rather than trusted.
func (s Session) Valid() bool {
	return s.ID > 0 && s.Nickname != ""
}
