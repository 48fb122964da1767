// Package repository implements audit trail persistence for PostgreSQL and
// MySQL. The trail is append-only.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	auditDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/audit/domain"
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/database"
	apperrors "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/errors"
)

// PostgreSQLAuditRepository implements audit Entry persistence for PostgreSQL databases.
type PostgreSQLAuditRepository struct {
	db *sql.DB
}

// NewPostgreSQLAuditRepository creates a new PostgreSQL audit repository instance.
func NewPostgreSQLAuditRepository(db *sql.DB) *PostgreSQLAuditRepository {
	return &PostgreSQLAuditRepository{db: db}
}

// Create inserts a new audit entry into the PostgreSQL database.
func (p *PostgreSQLAuditRepository) Create(ctx context.Context, entry *auditDomain.Entry) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO audit_entries (id, document_id, action, detail, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.DocumentID,
		entry.Action,
		entry.Detail,
		entry.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create audit entry")
	}
	return nil
}

// ListByDocument retrieves audit entries for a document, newest first.
func (p *PostgreSQLAuditRepository) ListByDocument(
	ctx context.Context,
	documentID uuid.UUID,
	offset, limit int,
) ([]*auditDomain.Entry, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, document_id, action, detail, created_at
			  FROM audit_entries
			  WHERE document_id = $1
			  ORDER BY created_at DESC
			  OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, documentID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit entries")
	}
	defer rows.Close()

	var entries []*auditDomain.Entry
	for rows.Next() {
		var entry auditDomain.Entry
		err := rows.Scan(
			&entry.ID,
			&entry.DocumentID,
			&entry.Action,
			&entry.Detail,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan audit entry")
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate audit entries")
	}

	return entries, nil
}
