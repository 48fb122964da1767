package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/database"
	documentsDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/domain"
	apperrors "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/errors"
)

// MySQLDocumentRepository implements Document persistence for MySQL databases.
type MySQLDocumentRepository struct {
	db *sql.DB
}

// NewMySQLDocumentRepository creates a new MySQL Document repository instance.
func NewMySQLDocumentRepository(db *sql.DB) *MySQLDocumentRepository {
	return &MySQLDocumentRepository{db: db}
}

// Create inserts a new document into the MySQL database.
func (m *MySQLDocumentRepository) Create(
	ctx context.Context,
	document *documentsDomain.Document,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO documents (id, filename, tier, status, content, match_count,
				  encrypted_count, risk_score, key_fingerprint, algorithm, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := document.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal document id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		document.Filename,
		document.Tier,
		document.Status,
		document.Content,
		document.MatchCount,
		document.EncryptedCount,
		document.RiskScore,
		document.KeyFingerprint,
		document.Algorithm,
		document.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create document")
	}

	return nil
}

// Get retrieves a document by its ID.
func (m *MySQLDocumentRepository) Get(
	ctx context.Context,
	documentID uuid.UUID,
) (*documentsDomain.Document, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, filename, tier, status, content, match_count, encrypted_count,
				  risk_score, key_fingerprint, algorithm, created_at
			  FROM documents
			  WHERE id = ?
			  LIMIT 1`

	id, err := documentID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal document id")
	}

	var document documentsDomain.Document
	err = querier.QueryRowContext(ctx, query, id).Scan(
		&document.ID,
		&document.Filename,
		&document.Tier,
		&document.Status,
		&document.Content,
		&document.MatchCount,
		&document.EncryptedCount,
		&document.RiskScore,
		&document.KeyFingerprint,
		&document.Algorithm,
		&document.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, documentsDomain.ErrDocumentNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get document")
	}

	return &document, nil
}

// List retrieves documents ordered by creation time descending, without content.
func (m *MySQLDocumentRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*documentsDomain.Document, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, filename, tier, status, match_count, encrypted_count,
				  risk_score, key_fingerprint, algorithm, created_at
			  FROM documents
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list documents")
	}
	defer rows.Close()

	var documents []*documentsDomain.Document
	for rows.Next() {
		var document documentsDomain.Document
		err := rows.Scan(
			&document.ID,
			&document.Filename,
			&document.Tier,
			&document.Status,
			&document.MatchCount,
			&document.EncryptedCount,
			&document.RiskScore,
			&document.KeyFingerprint,
			&document.Algorithm,
			&document.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan document")
		}
		documents = append(documents, &document)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate documents")
	}

	return documents, nil
}
