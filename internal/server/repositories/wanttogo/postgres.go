package wanttogo

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wanttogo/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]string, error) {
	query :=
		`SELECT destination FROM want_to_go
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return names, nil
}

func (r *PostgresRepository) Contains(ctx context.Context, userID, destination string) (bool, error) {
	query :=
		`SELECT EXISTS (
		   SELECT 1 FROM want_to_go WHERE user_id = $1 AND destination = $2
		 )
		 `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, destination).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

// Add relies on the (user_id, destination) unique constraint; zero affected
// rows means a concurrent or earlier add already recorded it.
func (r *PostgresRepository) Add(ctx context.Context, userID, destination string) (bool, error) {
	query :=
		`INSERT INTO want_to_go (user_id, destination)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, destination) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, userID, destination)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n == 1, nil
}
