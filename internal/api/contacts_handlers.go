package api

import (
	"net/http"

	"github.com/ignite/contact-directory/internal/domain"
	"github.com/ignite/contact-directory/internal/pkg/httputil"
	"github.com/ignite/contact-directory/internal/service/contact"
)

// ListContacts renders every contact sorted by last then first name.
//
//	GET /contacts
func (h *Handlers) ListContacts(w http.ResponseWriter, r *http.Request) {
	body, err := h.views.Contacts(h.contacts.List(r.Context()))
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	writeHTML(w, http.StatusOK, body)
}

// NewContactForm renders an empty submission form.
//
//	GET /contacts/new
func (h *Handlers) NewContactForm(w http.ResponseWriter, r *http.Request) {
	body, err := h.views.NewContact(domain.Submission{}, nil)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	writeHTML(w, http.StatusOK, body)
}

// CreateContact handles a form submission. A rejected submission re-renders
// the form with the errors and the values as entered; an accepted one
// redirects to the listing.
//
//	POST /contacts/new
func (h *Handlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	sub := domain.Submission{
		FirstName:   r.PostForm.Get("firstName"),
		LastName:    r.PostForm.Get("lastName"),
		PhoneNumber: r.PostForm.Get("phoneNumber"),
	}

	res, err := h.contacts.Create(r.Context(), sub)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	if !res.Accepted() {
		body, err := h.views.NewContact(sub, contact.Messages(res.Errors))
		if err != nil {
			httputil.InternalError(w, err)
			return
		}
		writeHTML(w, http.StatusOK, body)
		return
	}

	http.Redirect(w, r, "/contacts", http.StatusFound)
}

// ContactList is the JSON listing envelope.
type ContactList struct {
	Contacts []domain.Contact `json:"contacts"`
	Total    int              `json:"total"`
}

// APIListContacts returns the sorted contacts as JSON.
//
//	GET /api/contacts
func (h *Handlers) APIListContacts(w http.ResponseWriter, r *http.Request) {
	list := h.contacts.List(r.Context())
	httputil.OK(w, ContactList{Contacts: list, Total: len(list)})
}

// APICreateContact accepts a JSON submission. Validation failures return 422
// with every error, in order, under "details".
//
//	POST /api/contacts
func (h *Handlers) APICreateContact(w http.ResponseWriter, r *http.Request) {
	var sub domain.Submission
	if !httputil.Decode(w, r, &sub) {
		return
	}

	res, err := h.contacts.Create(r.Context(), sub)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	if !res.Accepted() {
		httputil.Unprocessable(w, "validation failed", "validation_failed", res.Errors)
		return
	}
	httputil.Created(w, res.Contact)
}
