package repositories

import (
	"context"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
)

// AuditWriter defines the append-only audit log.
type AuditWriter interface {
	// AppendEvent records one side effect of a batch run.
	AppendEvent(ctx context.Context, event domain.AuditEvent) error
}
