package contact

import (
	"slices"
	"strings"

	"github.com/ignite/contact-directory/internal/domain"
)

// compareContacts orders by last name, then first name, using byte-wise
// string comparison.
func compareContacts(a, b domain.Contact) int {
	if c := strings.Compare(a.LastName, b.LastName); c != 0 {
		return c
	}
	return strings.Compare(a.FirstName, b.FirstName)
}

// SortContacts returns a sorted copy of in. Contacts with equal names keep
// their relative order. in is not modified.
func SortContacts(in []domain.Contact) []domain.Contact {
	out := make([]domain.Contact, len(in))
	copy(out, in)
	slices.SortStableFunc(out, compareContacts)
	return out
}

// Sorted returns the contents of store in display order.
func Sorted(store Reader) []domain.Contact {
	return SortContacts(store.All())
}
