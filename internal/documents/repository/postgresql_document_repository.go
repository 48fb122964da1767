// Package repository implements document persistence for PostgreSQL and
// MySQL. Only tokenized content is stored; raw PII never reaches these
// queries.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/database"
	documentsDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/domain"
	apperrors "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/errors"
)

// PostgreSQLDocumentRepository implements Document persistence for PostgreSQL databases.
type PostgreSQLDocumentRepository struct {
	db *sql.DB
}

// NewPostgreSQLDocumentRepository creates a new PostgreSQL Document repository instance.
func NewPostgreSQLDocumentRepository(db *sql.DB) *PostgreSQLDocumentRepository {
	return &PostgreSQLDocumentRepository{db: db}
}

// Create inserts a new document into the PostgreSQL database.
func (p *PostgreSQLDocumentRepository) Create(
	ctx context.Context,
	document *documentsDomain.Document,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO documents (id, filename, tier, status, content, match_count,
				  encrypted_count, risk_score, key_fingerprint, algorithm, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := querier.ExecContext(
		ctx,
		query,
		document.ID,
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
func (p *PostgreSQLDocumentRepository) Get(
	ctx context.Context,
	documentID uuid.UUID,
) (*documentsDomain.Document, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, filename, tier, status, content, match_count, encrypted_count,
				  risk_score, key_fingerprint, algorithm, created_at
			  FROM documents
			  WHERE id = $1
			  LIMIT 1`

	var document documentsDomain.Document
	err := querier.QueryRowContext(ctx, query, documentID).Scan(
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
func (p *PostgreSQLDocumentRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*documentsDomain.Document, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, filename, tier, status, match_count, encrypted_count,
				  risk_score, key_fingerprint, algorithm, created_at
			  FROM documents
			  ORDER BY created_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
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
