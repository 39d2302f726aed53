package contact

import (
	"strings"

	"github.com/ignite/contact-directory/internal/domain"
)

// DuplicateMessage is reported when a submission names an existing contact.
const DuplicateMessage = "Contact already exist. Each contact must be unique."

// Result is the outcome of a submission: either Errors is non-empty and the
// submission was rejected, or Contact holds the validated record.
type Result struct {
	Errors  []ValidationError `json:"errors,omitempty"`
	Contact *domain.Contact   `json:"contact,omitempty"`
}

// Rejected builds a rejected result carrying errs in order.
func Rejected(errs ...ValidationError) Result { return Result{Errors: errs} }

// Accepted builds an accepted result for c.
func Accepted(c domain.Contact) Result { return Result{Contact: &c} }

// Accepted reports whether the submission passed every check.
func (r Result) Accepted() bool { return len(r.Errors) == 0 && r.Contact != nil }

// Submit validates sub against the store snapshot. Every field is checked
// even when an earlier one fails; errors are ordered first name, last name,
// phone number, duplicate. The duplicate check only runs when both names are
// individually valid. Submit never writes to store.
func Submit(sub domain.Submission, store Reader) Result {
	var errs []ValidationError

	firstErr, firstBad := ValidateFirstName(sub.FirstName)
	if firstBad {
		errs = append(errs, firstErr)
	}
	lastErr, lastBad := ValidateLastName(sub.LastName)
	if lastBad {
		errs = append(errs, lastErr)
	}
	if phoneErr, bad := ValidatePhoneNumber(sub.PhoneNumber); bad {
		errs = append(errs, phoneErr)
	}

	c := domain.Contact{
		FirstName:   strings.TrimSpace(sub.FirstName),
		LastName:    strings.TrimSpace(sub.LastName),
		PhoneNumber: strings.TrimSpace(sub.PhoneNumber),
	}

	if !firstBad && !lastBad && Exists(c.FirstName, c.LastName, store) {
		errs = append(errs, ValidationError{
			Field:   domain.FieldContact,
			Kind:    DuplicateContact,
			Message: DuplicateMessage,
		})
	}

	if len(errs) > 0 {
		return Rejected(errs...)
	}
	return Accepted(c)
}
