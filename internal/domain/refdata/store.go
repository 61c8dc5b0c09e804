package refdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"onboard/internal/domain/apperr"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) Exists(ctx context.Context, kind Kind, id int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	var count int
	err = s.DB.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(1) FROM %s WHERE id = $1", table), id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) ExistsActive(ctx context.Context, kind Kind, id int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	var count int
	err = s.DB.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(1) FROM %s WHERE id = $1 AND is_active = 1", table), id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Name(ctx context.Context, kind Kind, id int64) (string, error) {
	table, err := tableFor(kind)
	if err != nil {
		return "", err
	}
	var name string
	err = s.DB.QueryRow(ctx, fmt.Sprintf("SELECT name FROM %s WHERE id = $1", table), id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperr.NotFoundf("%s %d", kind, id)
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

func (s *Store) IDByName(ctx context.Context, kind Kind, name string) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}
	var id int64
	err = s.DB.QueryRow(ctx, fmt.Sprintf("SELECT id FROM %s WHERE name = $1 AND is_active = 1", table), name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperr.NotFoundf("%s %q", kind, name)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}
