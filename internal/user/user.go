package user

import "time"

// User is a single account record. Every record has at least one
// identity path populated: local credentials (Username/PasswordHash)
// or an external Google identity (GoogleID), never neither.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	HashVersion  string
	GoogleID     string
	CreatedAt    time.Time
}

// Local reports whether the account was created by local registration.
func (u *User) Local() bool {
	return u.PasswordHash != ""
}
