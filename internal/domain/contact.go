package domain

import "time"

// Contact is a stored directory entry. FirstName, LastName and PhoneNumber are
// the trimmed values of the submission that created it.
type Contact struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// Submission holds the raw, untrimmed values of a new-contact form.
type Submission struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

// Field names used to key validation errors.
const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldPhoneNumber = "phoneNumber"
	FieldContact     = "contact"
)
