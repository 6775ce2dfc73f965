package ports

import (
	"context"

	"github.com/tfalohun/olera-sub001/pkg/platform/audit"
)

// AuditPort defines the interface for emitting audit events.
// This matches the audit.Emitter interface but is defined here
// to maintain hexagonal boundaries.
type AuditPort interface {
	Emit(ctx context.Context, event audit.Event) error
}
