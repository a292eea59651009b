package secrets

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/duckycart/companion/internal/common"
	"github.com/duckycart/companion/internal/cryptox"
	"github.com/duckycart/companion/internal/dbx"
)

// SQLiteRepository stores secrets in a local SQLite table, sealing every
// value with AES-GCM under the vault key before it touches disk.
type SQLiteRepository struct {
	db  *sql.DB
	key []byte
}

// NewSQLiteRepository binds a repository to a database handle and a vault
// key produced by cryptox.DeriveVaultKey.
func NewSQLiteRepository(db *sql.DB, key []byte) *SQLiteRepository {
	return &SQLiteRepository{db: db, key: key}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, error) {
	var sealed []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM secrets WHERE key = ?`, key).Scan(&sealed)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: get secrets[%s]: %v", common.ErrStorage, key, err)
	}

	plain, err := cryptox.Open(sealed, r.key)
	if err != nil {
		return "", fmt.Errorf("%w: unseal secrets[%s]: %v", common.ErrStorage, key, err)
	}
	return string(plain), nil
}

// setOne seals and upserts a single key on the given handle, which may be a
// transaction.
func (r *SQLiteRepository) setOne(ctx context.Context, q dbx.DBTX, key string, value string) error {
	sealed, err := cryptox.Seal([]byte(value), r.key)
	if err != nil {
		return fmt.Errorf("%w: seal secrets[%s]: %v", common.ErrStorage, key, err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO secrets (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, sealed)
	if err != nil {
		return fmt.Errorf("%w: set secrets[%s]: %v", common.ErrStorage, key, err)
	}
	return nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value string) error {
	return r.setOne(ctx, r.db, key, value)
}

// SetMany writes all values in one transaction.
func (r *SQLiteRepository) SetMany(ctx context.Context, values map[string]string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for key, value := range values {
			if err := r.setOne(ctx, tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM secrets WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("%w: delete secrets[%s]: %v", common.ErrStorage, key, err)
	}
	return nil
}

// DeleteMany removes all keys in one transaction. Absent keys are not an
// error.
func (r *SQLiteRepository) DeleteMany(ctx context.Context, keys ...string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM secrets WHERE key = ?`, key); err != nil {
				return fmt.Errorf("%w: delete secrets[%s]: %v", common.ErrStorage, key, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM secrets`)
	if err != nil {
		return fmt.Errorf("%w: clear secrets: %v", common.ErrStorage, err)
	}
	return nil
}
