package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// errNoSuchTable is MySQL error ER_NO_SUCH_TABLE.
const errNoSuchTable = 1146

// ErrSchemaMissing is returned when the kv_store table has not been created.
var ErrSchemaMissing = errors.New("kv_store table does not exist")

const createKVTable = `
	CREATE TABLE IF NOT EXISTS kv_store (
		item_key   VARCHAR(191) NOT NULL PRIMARY KEY,
		item_value LONGTEXT     NOT NULL,
		updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) CHARACTER SET utf8mb4`

// MySQLStore keeps values in the kv_store table of a MySQL database.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore creates a new MySQLStore. Call EnsureSchema before first use.
func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// EnsureSchema creates the kv_store table if it does not exist.
func (s *MySQLStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createKVTable); err != nil {
		return fmt.Errorf("create kv_store: %w", err)
	}
	return nil
}

func (s *MySQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT item_value FROM kv_store WHERE item_key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %q: %w", key, mapMySQLError(err))
	}
	return value, true, nil
}

func (s *MySQLStore) Set(ctx context.Context, key, value string) error {
	const query = `INSERT INTO kv_store (item_key, item_value) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE item_value = VALUES(item_value)`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, mapMySQLError(err))
	}
	return nil
}

func (s *MySQLStore) Close() error {
	return s.db.Close()
}

// mapMySQLError turns a missing-table error into ErrSchemaMissing.
func mapMySQLError(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == errNoSuchTable {
		return ErrSchemaMissing
	}
	return err
}
