package status

import (
	"context"
	"errors"

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

func (s *Store) ByName(ctx context.Context, name string) (Status, error) {
	var st Status
	err := s.DB.QueryRow(ctx, "SELECT id, name FROM statuses WHERE name = $1", name).Scan(&st.ID, &st.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return Status{}, apperr.NotFoundf("status %q", name)
	}
	if err != nil {
		return Status{}, err
	}
	return st, nil
}

func (s *Store) ByID(ctx context.Context, id int64) (Status, error) {
	var st Status
	err := s.DB.QueryRow(ctx, "SELECT id, name FROM statuses WHERE id = $1", id).Scan(&st.ID, &st.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return Status{}, apperr.NotFoundf("status %d", id)
	}
	if err != nil {
		return Status{}, err
	}
	return st, nil
}
