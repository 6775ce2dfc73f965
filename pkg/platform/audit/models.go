package audit

import (
	"context"
	"time"

	id "github.com/tfalohun/olera-sub001/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose so sinks
// can route and retain them differently.
type EventCategory string

const (
	// CategoryCompliance covers events with regulatory significance.
	CategoryCompliance EventCategory = "compliance"
	// CategoryOperations covers routine activity that may be sampled.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	// UserID is zero for anonymous requests (the eligibility intake).
	UserID    id.UserID
	Action    string
	Region    string
	RequestID string
	// Outcome is a short machine label, e.g. the best tier or "broadened".
	Outcome string
	Count   int
}

type AuditEvent string

const (
	EventEligibilityMatched AuditEvent = "eligibility_matched"
	EventProvidersMatched   AuditEvent = "providers_matched"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventEligibilityMatched: CategoryOperations,
	EventProvidersMatched:   CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists or forwards audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Lister is implemented by stores that can read events back.
type Lister interface {
	ListByUser(ctx context.Context, userID id.UserID) ([]Event, error)
}

// Emitter is the port services depend on.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// NopEmitter discards every event.
type NopEmitter struct{}

func (NopEmitter) Emit(context.Context, Event) error { return nil }
