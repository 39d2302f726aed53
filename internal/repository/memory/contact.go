// Package memory provides process-lifetime repositories backed by slices.
package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ignite/contact-directory/internal/domain"
	"github.com/ignite/contact-directory/internal/service/contact"
)

// ContactRepo implements contact.Repository in memory. Contacts are kept in
// insertion order and are lost when the process exits.
type ContactRepo struct {
	mu       sync.RWMutex
	contacts []domain.Contact
	now      func() time.Time
}

var _ contact.Repository = (*ContactRepo)(nil)

// NewContactRepo creates a repository pre-loaded with seed. Seeded contacts
// are appended in order and receive IDs the same way submissions do.
func NewContactRepo(seed ...domain.Contact) *ContactRepo {
	r := &ContactRepo{now: time.Now}
	for i := range seed {
		c := seed[i]
		_ = r.Append(&c)
	}
	return r
}

func (r *ContactRepo) All() []domain.Contact {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Contact, len(r.contacts))
	copy(out, r.contacts)
	return out
}

func (r *ContactRepo) Append(c *domain.Contact) error {
	if c == nil {
		return contact.ErrNilContact
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.now().UTC()
	}
	r.mu.Lock()
	r.contacts = append(r.contacts, *c)
	r.mu.Unlock()
	return nil
}

func (r *ContactRepo) Exists(firstName, lastName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.contacts {
		if strings.EqualFold(c.FirstName, firstName) && strings.EqualFold(c.LastName, lastName) {
			return true
		}
	}
	return false
}

func (r *ContactRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contacts)
}
