package models

// User is the account the session is logged in as, or a message sender
// resolved through the transport.
type User struct {
	// UserID is the transport identifier of the account.
	UserID int64

	// Name is the display (first) name. May be empty.
	Name string

	// Username is the public handle without the leading "@".
	// Empty when the account has no handle set.
	Username string
}

// Handle returns "@username" or an empty string when no handle is set.
func (u User) Handle() string {
	if u.Username == "" {
		return ""
	}
	return "@" + u.Username
}
