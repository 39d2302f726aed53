package contact

import "github.com/ignite/contact-directory/internal/domain"

// Reader is the read side of the contact store. All returns a snapshot in
// insertion order; callers may not rely on it aliasing the store.
type Reader interface {
	All() []domain.Contact
}

// Repository defines the data access contract for the contact store.
type Repository interface {
	Reader

	// Append stores c, assigning its ID and CreatedAt. Contacts are never
	// updated or removed once appended.
	Append(c *domain.Contact) error

	// Exists reports whether a contact with the given names is stored,
	// comparing both names case-insensitively.
	Exists(firstName, lastName string) bool

	// Count returns the number of stored contacts.
	Count() int
}
