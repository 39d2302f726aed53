package api

import (
	"time"

	"github.com/ignite/contact-directory/internal/service/contact"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	contacts  *contact.Service
	views     *Views
	startTime time.Time
}

// NewHandlers creates a new Handlers instance
func NewHandlers(svc *contact.Service, views *Views) *Handlers {
	return &Handlers{
		contacts:  svc,
		views:     views,
		startTime: time.Now(),
	}
}
