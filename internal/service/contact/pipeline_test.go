package contact

import (
	"strings"
	"testing"

	"github.com/ignite/contact-directory/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_AcceptsValidSubmission(t *testing.T) {
	store := snapshot(seedContacts())

	res := Submit(domain.Submission{FirstName: "Max", LastName: "Entiger", PhoneNumber: "214-748-3647"}, store)

	require.True(t, res.Accepted())
	assert.Empty(t, res.Errors)
	assert.Equal(t, "Max", res.Contact.FirstName)
	assert.Equal(t, "Entiger", res.Contact.LastName)
	assert.Equal(t, "214-748-3647", res.Contact.PhoneNumber)
	assert.Len(t, store, 2, "Submit must not write to the store")
}

func TestSubmit_StoresTrimmedInputs(t *testing.T) {
	phones := []string{"281-330-8004", "2813308004", "(281)330-8004"}
	for _, phone := range phones {
		t.Run(phone, func(t *testing.T) {
			res := Submit(domain.Submission{FirstName: "  Alicia ", LastName: "\tKeys", PhoneNumber: " " + phone + " "}, snapshot(nil))

			require.True(t, res.Accepted())
			assert.Equal(t, domain.Contact{FirstName: "Alicia", LastName: "Keys", PhoneNumber: phone}, *res.Contact)
		})
	}
}

func TestSubmit_EmptyFirstNameIsFirstError(t *testing.T) {
	tests := []domain.Submission{
		{FirstName: "", LastName: "Smith", PhoneNumber: "555-555-5555"},
		{FirstName: "  ", LastName: "", PhoneNumber: ""},
		{FirstName: "", LastName: "Sm1th", PhoneNumber: "bad"},
		{FirstName: "\t", LastName: strings.Repeat("x", 40), PhoneNumber: "555-555-5555"},
	}
	for _, sub := range tests {
		res := Submit(sub, snapshot(seedContacts()))
		require.False(t, res.Accepted())
		assert.Equal(t, "First name is required.", res.Errors[0].Message)
	}
}

func TestSubmit_OnlyFirstNameMissing(t *testing.T) {
	res := Submit(domain.Submission{FirstName: "", LastName: "Smith", PhoneNumber: "555-555-5555"}, snapshot(seedContacts()))

	require.False(t, res.Accepted())
	assert.Nil(t, res.Contact)
	assert.Equal(t, []string{"First name is required."}, Messages(res.Errors))
}

func TestSubmit_AccumulatesAcrossFieldsInOrder(t *testing.T) {
	res := Submit(domain.Submission{FirstName: "J3nny", LastName: "", PhoneNumber: "281-33-8004"}, snapshot(seedContacts()))

	require.False(t, res.Accepted())
	assert.Equal(t, []string{
		"First name can only contain alphabetic characters.",
		"Last name is required.",
		"Please enter a valid phone number with the pattern: ###-###-####",
	}, Messages(res.Errors))

	fields := make([]string, len(res.Errors))
	for i, e := range res.Errors {
		fields[i] = e.Field
	}
	assert.Equal(t, []string{domain.FieldFirstName, domain.FieldLastName, domain.FieldPhoneNumber}, fields)
}

func TestSubmit_DuplicateIgnoresCase(t *testing.T) {
	for _, names := range [][2]string{{"mike", "jones"}, {"MIKE", "JONES"}, {"Mike", "Jones"}, {" mIkE ", "jOnEs "}} {
		res := Submit(domain.Submission{FirstName: names[0], LastName: names[1], PhoneNumber: "123-456-7890"}, snapshot(seedContacts()))

		require.False(t, res.Accepted(), "%v", names)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, DuplicateContact, res.Errors[0].Kind)
		assert.Equal(t, DuplicateMessage, res.Errors[0].Message)
	}
}

func TestSubmit_DuplicateRequiresBothNames(t *testing.T) {
	res := Submit(domain.Submission{FirstName: "Mike", LastName: "Keys", PhoneNumber: "123-456-7890"}, snapshot(seedContacts()))
	assert.True(t, res.Accepted())
}

func TestSubmit_DuplicateAfterPhoneError(t *testing.T) {
	res := Submit(domain.Submission{FirstName: "Jenny", LastName: "Keys", PhoneNumber: ""}, snapshot(seedContacts()))

	require.False(t, res.Accepted())
	assert.Equal(t, []Kind{FieldRequired, DuplicateContact}, []Kind{res.Errors[0].Kind, res.Errors[1].Kind})
}

func TestSubmit_InvalidNameSkipsDuplicateCheck(t *testing.T) {
	long := strings.Repeat("a", 26)
	store := snapshot{{FirstName: long, LastName: "Keys"}}

	res := Submit(domain.Submission{FirstName: long, LastName: "Keys", PhoneNumber: "123-456-7890"}, store)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, FieldTooLong, res.Errors[0].Kind)
}

func TestSubmit_UsesStoreExistsWhenAvailable(t *testing.T) {
	repo := newMockRepo(seedContacts()...)

	res := Submit(domain.Submission{FirstName: "jenny", LastName: "KEYS", PhoneNumber: "123-456-7890"}, repo)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, DuplicateContact, res.Errors[0].Kind)
}

func TestResult_Constructors(t *testing.T) {
	assert.False(t, Result{}.Accepted())
	assert.False(t, Rejected(ValidationError{Message: "x"}).Accepted())
	assert.True(t, Accepted(domain.Contact{FirstName: "A"}).Accepted())
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Field: domain.FieldPhoneNumber, Kind: FieldRequired, Message: "Phone number is required."}
	assert.Equal(t, "phoneNumber: Phone number is required.", e.Error())
}
