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

// MySQLKeyRepository implements WrappedKey persistence for MySQL databases.
type MySQLKeyRepository struct {
	db *sql.DB
}

// NewMySQLKeyRepository creates a new MySQL WrappedKey repository instance.
func NewMySQLKeyRepository(db *sql.DB) *MySQLKeyRepository {
	return &MySQLKeyRepository{db: db}
}

// Create inserts a new wrapped key into the MySQL database.
func (m *MySQLKeyRepository) Create(ctx context.Context, key *keysDomain.WrappedKey) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO wrapped_keys (id, document_id, fingerprint, ciphertext, nonce,
				  provider, created_at, downloaded_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := key.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal key id")
	}

	documentID, err := key.DocumentID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal document id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		documentID,
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
func (m *MySQLKeyRepository) GetByDocumentID(
	ctx context.Context,
	documentID uuid.UUID,
) (*keysDomain.WrappedKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, document_id, fingerprint, ciphertext, nonce, provider,
				  created_at, downloaded_at
			  FROM wrapped_keys
			  WHERE document_id = ?
			  LIMIT 1`

	id, err := documentID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal document id")
	}

	var key keysDomain.WrappedKey
	err = querier.QueryRowContext(ctx, query, id).Scan(
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
func (m *MySQLKeyRepository) MarkDownloaded(ctx context.Context, keyID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE wrapped_keys
			  SET downloaded_at = ?
			  WHERE id = ? AND downloaded_at IS NULL`

	id, err := keyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal key id")
	}

	_, err = querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to mark wrapped key downloaded")
	}
	return nil
}
