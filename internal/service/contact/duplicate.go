package contact

import "strings"

// existenceChecker is implemented by stores that can answer the duplicate
// question without handing out a full snapshot.
type existenceChecker interface {
	Exists(firstName, lastName string) bool
}

// Exists reports whether store holds a contact whose first and last names
// both equal the given names, ignoring case. Names are compared as given;
// the pipeline passes trimmed values.
func Exists(firstName, lastName string, store Reader) bool {
	if ec, ok := store.(existenceChecker); ok {
		return ec.Exists(firstName, lastName)
	}
	for _, c := range store.All() {
		if strings.EqualFold(c.FirstName, firstName) && strings.EqualFold(c.LastName, lastName) {
			return true
		}
	}
	return false
}
