package kv

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/dentalcare360/storefront/internal/domain/repository"
)

// PostgresStore backs the key-value port with a single kv_records table
// (see db/migrations).
type PostgresStore struct {
	pool   *pgxpool.Pool
	prefix string
	logger *logrus.Logger
}

func NewPostgresStore(pool *pgxpool.Pool, prefix string, logger *logrus.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, prefix: prefix, logger: logger}
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool) {
	var val string
	row := s.pool.QueryRow(ctx, `
		SELECT value FROM kv_records WHERE key = $1
	`, s.prefix+key)
	if err := row.Scan(&val); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) && s.logger != nil {
			s.logger.WithError(err).WithField("key", key).Warn("kv select failed")
		}
		return "", false
	}
	return val, true
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv_records (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, s.prefix+key, value)
	return err
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM kv_records WHERE key = $1`, s.prefix+key)
	return err
}

var _ repository.KVStore = (*PostgresStore)(nil)
