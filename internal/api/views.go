package api

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/ignite/contact-directory/internal/domain"
	"github.com/ignite/contact-directory/internal/service/contact"
	"github.com/osteele/liquid"
)

//go:embed templates/*.liquid
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Views renders the HTML pages from embedded Liquid templates. Templates are
// parsed once at construction and are safe for concurrent rendering.
type Views struct {
	layout     *liquid.Template
	contacts   *liquid.Template
	newContact *liquid.Template
}

// NewViews parses the embedded templates.
func NewViews() (*Views, error) {
	engine := liquid.NewEngine()
	engine.RegisterFilter("phone", func(value string) string {
		return contact.FormatPhone(value)
	})

	parse := func(name string) (*liquid.Template, error) {
		src, err := templateFS.ReadFile("templates/" + name)
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
		tpl, perr := engine.ParseTemplate(src)
		if perr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, perr)
		}
		return tpl, nil
	}

	v := &Views{}
	var err error
	if v.layout, err = parse("layout.liquid"); err != nil {
		return nil, err
	}
	if v.contacts, err = parse("contacts.liquid"); err != nil {
		return nil, err
	}
	if v.newContact, err = parse("new_contact.liquid"); err != nil {
		return nil, err
	}
	return v, nil
}

// Contacts renders the listing page for an already sorted slice.
func (v *Views) Contacts(contacts []domain.Contact) ([]byte, error) {
	rows := make([]map[string]any, len(contacts))
	for i, c := range contacts {
		rows[i] = map[string]any{
			"first_name":   c.FirstName,
			"last_name":    c.LastName,
			"phone_number": c.PhoneNumber,
		}
	}
	return v.page("Contacts", v.contacts, liquid.Bindings{"contacts": rows})
}

// NewContact renders the submission form. sub carries the values to refill
// and errs the messages to list above the form, both possibly empty.
func (v *Views) NewContact(sub domain.Submission, errs []string) ([]byte, error) {
	if errs == nil {
		errs = []string{}
	}
	return v.page("New contact", v.newContact, liquid.Bindings{
		"errors":      errs,
		"firstName":   sub.FirstName,
		"lastName":    sub.LastName,
		"phoneNumber": sub.PhoneNumber,
	})
}

func (v *Views) page(title string, body *liquid.Template, b liquid.Bindings) ([]byte, error) {
	content, err := body.Render(b)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", title, err)
	}
	out, err := v.layout.Render(liquid.Bindings{"title": title, "content": string(content)})
	if err != nil {
		return nil, fmt.Errorf("render layout: %w", err)
	}
	return out, nil
}

// StaticHandler serves the embedded static assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
