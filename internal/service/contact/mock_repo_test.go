package contact

import (
	"fmt"
	"sync"

	"github.com/ignite/contact-directory/internal/domain"
)

// mockRepo is an in-memory repository for testing.
type mockRepo struct {
	mu        sync.RWMutex
	contacts  []domain.Contact
	appendErr error
	nextID    int
}

func newMockRepo(seed ...domain.Contact) *mockRepo {
	return &mockRepo{contacts: append([]domain.Contact(nil), seed...)}
}

func (m *mockRepo) All() []domain.Contact {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Contact(nil), m.contacts...)
}

func (m *mockRepo) Append(c *domain.Contact) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = fmt.Sprintf("c-%d", m.nextID)
	m.contacts = append(m.contacts, *c)
	return nil
}

func (m *mockRepo) Exists(firstName, lastName string) bool {
	return Exists(firstName, lastName, snapshot(m.All()))
}

func (m *mockRepo) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.contacts)
}

// snapshot is a bare Reader, used to exercise the linear-scan path.
type snapshot []domain.Contact

func (s snapshot) All() []domain.Contact { return s }

func seedContacts() []domain.Contact {
	return []domain.Contact{
		{FirstName: "Mike", LastName: "Jones", PhoneNumber: "281-330-8004"},
		{FirstName: "Jenny", LastName: "Keys", PhoneNumber: "768-867-5309"},
	}
}
