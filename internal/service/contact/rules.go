package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ignite/contact-directory/internal/domain"
)

// MaxNameLength is the longest first or last name accepted, in characters.
const MaxNameLength = 25

var (
	alphaPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
	phonePattern = regexp.MustCompile(`^\(?([0-9]{3})\)?-?([0-9]{3})-?([0-9]{4})$`)
)

// Rule is a single predicate over a trimmed field value. Check returns true
// when the value passes.
type Rule struct {
	Kind    Kind
	Message string
	Check   func(value string) bool
}

// FieldRules is the ordered rule chain for one field. Rules are evaluated in
// order and the first failure is the only error reported for the field.
type FieldRules struct {
	Field string
	Rules []Rule
}

// Validate trims raw and runs the chain, returning the first failure.
func (f FieldRules) Validate(raw string) (ValidationError, bool) {
	value := strings.TrimSpace(raw)
	for _, r := range f.Rules {
		if !r.Check(value) {
			return ValidationError{Field: f.Field, Kind: r.Kind, Message: r.Message}, true
		}
	}
	return ValidationError{}, false
}

func notEmpty(v string) bool { return v != "" }

func withinNameLength(v string) bool { return utf8.RuneCountInString(v) <= MaxNameLength }

func nameRules(field, label string) FieldRules {
	return FieldRules{
		Field: field,
		Rules: []Rule{
			{Kind: FieldRequired, Message: label + " is required.", Check: notEmpty},
			{Kind: FieldTooLong, Message: label + " cannot be more than 25 characters.", Check: withinNameLength},
			{Kind: FieldInvalidCharacters, Message: label + " can only contain alphabetic characters.", Check: alphaPattern.MatchString},
		},
	}
}

var (
	firstNameRules = nameRules(domain.FieldFirstName, "First name")
	lastNameRules  = nameRules(domain.FieldLastName, "Last name")

	phoneNumberRules = FieldRules{
		Field: domain.FieldPhoneNumber,
		Rules: []Rule{
			{Kind: FieldRequired, Message: "Phone number is required.", Check: notEmpty},
			{Kind: FieldInvalidFormat, Message: "Please enter a valid phone number with the pattern: ###-###-####", Check: phonePattern.MatchString},
		},
	}
)

// ValidateFirstName returns the highest-priority violation for a first name.
func ValidateFirstName(raw string) (ValidationError, bool) { return firstNameRules.Validate(raw) }

// ValidateLastName returns the highest-priority violation for a last name.
func ValidateLastName(raw string) (ValidationError, bool) { return lastNameRules.Validate(raw) }

// ValidatePhoneNumber returns the highest-priority violation for a phone number.
func ValidatePhoneNumber(raw string) (ValidationError, bool) { return phoneNumberRules.Validate(raw) }

// FormatPhone rewrites a valid phone number as ###-###-####. Values that do
// not match the accepted shape are returned trimmed but otherwise unchanged.
func FormatPhone(raw string) string {
	value := strings.TrimSpace(raw)
	m := phonePattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	return m[1] + "-" + m[2] + "-" + m[3]
}
