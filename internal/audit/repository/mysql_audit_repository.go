package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	auditDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/audit/domain"
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/database"
	apperrors "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/errors"
)

// MySQLAuditRepository implements audit Entry persistence for MySQL databases.
type MySQLAuditRepository struct {
	db *sql.DB
}

// NewMySQLAuditRepository creates a new MySQL audit repository instance.
func NewMySQLAuditRepository(db *sql.DB) *MySQLAuditRepository {
	return &MySQLAuditRepository{db: db}
}

// Create inserts a new audit entry into the MySQL database.
func (m *MySQLAuditRepository) Create(ctx context.Context, entry *auditDomain.Entry) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO audit_entries (id, document_id, action, detail, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := entry.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal entry id")
	}

	documentID, err := entry.DocumentID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal document id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		documentID,
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
func (m *MySQLAuditRepository) ListByDocument(
	ctx context.Context,
	documentID uuid.UUID,
	offset, limit int,
) ([]*auditDomain.Entry, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, document_id, action, detail, created_at
			  FROM audit_entries
			  WHERE document_id = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	id, err := documentID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal document id")
	}

	rows, err := querier.QueryContext(ctx, query, id, limit, offset)
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
