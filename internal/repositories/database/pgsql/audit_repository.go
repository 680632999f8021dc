package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkhandel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/nkhandel/personal_finance_app/internal/core/ports/repositories"
)

type PgxAuditRepository struct {
	pool *pgxpool.Pool
}

// newPgxAuditRepository creates a new repository for the append-only
// audit log.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditWriter {
	return &PgxAuditRepository{pool: pool}
}

// Ensure PgxAuditRepository implements portsrepo.AuditWriter
var _ portsrepo.AuditWriter = (*PgxAuditRepository)(nil)

// AppendEvent records one side effect of a batch run.
func (r *PgxAuditRepository) AppendEvent(ctx context.Context, event domain.AuditEvent) error {
	details, err := json.Marshal(event.Details)
	if err != nil {
		return fmt.Errorf("failed to encode audit details for event %s: %w", event.EventID, err)
	}

	query := `
		INSERT INTO audit_events (event_id, owner_id, event_type, details, timestamp)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = r.pool.Exec(ctx, query,
		event.EventID,
		event.OwnerID,
		event.EventType,
		details,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit event %s: %w", event.EventID, err)
	}
	return nil
}
