// Package repository implements wrapped key persistence for PostgreSQL and
// MySQL. Keys are stored only in wrapped form.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/database"
	apperrors "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/errors"
	keysDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/domain"
)

// PostgreSQLKeyRepository implements WrappedKey persistence for PostgreSQL databases.
type PostgreSQLKeyRepository struct {
	db *sql.DB
}

// NewPostgreSQLKeyRepository creates a new PostgreSQL WrappedKey repository instance.
func NewPostgreSQLKeyRepository(db *sql.DB) *PostgreSQLKeyRepository {
	return &PostgreSQLKeyRepository{db: db}
}

// Create inserts a new wrapped key into the PostgreSQL database.
func (p *PostgreSQLKeyRepository) Create(ctx context.Context, key *keysDomain.WrappedKey) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO wrapped_keys (id, document_id, fingerprint, ciphertext, nonce,
				  provider, created_at, downloaded_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		key.ID,
		key.DocumentID,
		key.Fingerprint,
		key.Ciphertext,
		key.Nonce,
		key.Provider,
		key.CreatedAt,
		key.DownloadedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create wrapped key")
	}
	return nil
}

// GetByDocumentID retrieves the wrapped key for a document.
func (p *PostgreSQLKeyRepository) GetByDocumentID(
	ctx context.Context,
	documentID uuid.UUID,
) (*keysDomain.WrappedKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, document_id, fingerprint, ciphertext, nonce, provider,
				  created_at, downloaded_at
			  FROM wrapped_keys
			  WHERE document_id = $1
			  LIMIT 1`

	var key keysDomain.WrappedKey
	err := querier.QueryRowContext(ctx, query, documentID).Scan(
		&key.ID,
		&key.DocumentID,
		&key.Fingerprint,
		&key.Ciphertext,
		&key.Nonce,
		&key.Provider,
		&key.CreatedAt,
		&key.DownloadedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, keysDomain.ErrKeyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get wrapped key")
	}

	return &key, nil
}

// MarkDownloaded records the first download time of a wrapped key.
// Subsequent downloads keep the original timestamp.
func (p *PostgreSQLKeyRepository) MarkDownloaded(ctx context.Context, keyID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE wrapped_keys
			  SET downloaded_at = $1
			  WHERE id = $2 AND downloaded_at IS NULL`

	_, err := querier.ExecContext(ctx, query, time.Now().UTC(), keyID)
	if err != nil {
		return apperrors.Wrap(err, "failed to mark wrapped key downloaded")
	}
	return nil
}
