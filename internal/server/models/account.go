package models

import "time"

// DOBLayout is the date format used for the date of birth both in the API
// and in the persisted account document.
const DOBLayout = "2006-01-02"

// Account is a registered user's stored identity and credential. Email is
// the primary lookup key; Name is unique as well because it doubles as the
// user's record-store namespace.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	DateOfBirth  string    `json:"dob"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
