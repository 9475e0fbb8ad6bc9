package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = `id, user_id, title, description, completed, priority, due_date, created_at, updated_at`

type PostgresTaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

func (r *PostgresTaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (user_id, title, description, priority, due_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, completed, created_at, updated_at`,
		t.UserID, t.Title, t.Description, t.Priority, t.DueDate,
	).Scan(&t.ID, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
}

func (r *PostgresTaskRepository) List(ctx context.Context, userID int64, f domain.TaskFilter) ([]*domain.Task, error) {
	conds := []string{"user_id = $1"}
	args := []any{userID}

	if f.Completed != nil {
		args = append(args, *f.Completed)
		conds = append(conds, fmt.Sprintf("completed = $%d", len(args)))
	}
	if f.Priority != nil {
		args = append(args, *f.Priority)
		conds = append(conds, fmt.Sprintf("priority = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY id`,
		taskColumns, strings.Join(conds, " AND "))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

// Update modifies only the fields present in upd, always refreshing
// updated_at, in one statement keyed by id and owner so the ownership
// check and the mutation cannot race.
func (r *PostgresTaskRepository) Update(ctx context.Context, id, userID int64, upd domain.TaskUpdate) (*domain.Task, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id, userID}

	if upd.Title != nil {
		args = append(args, *upd.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if upd.Description.Set {
		args = append(args, upd.Description.Ptr())
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if upd.Completed != nil {
		args = append(args, *upd.Completed)
		sets = append(sets, fmt.Sprintf("completed = $%d", len(args)))
	}
	if upd.Priority != nil {
		args = append(args, *upd.Priority)
		sets = append(sets, fmt.Sprintf("priority = $%d", len(args)))
	}
	if upd.DueDate.Set {
		args = append(args, upd.DueDate.Ptr())
		sets = append(sets, fmt.Sprintf("due_date = $%d", len(args)))
	}

	query := fmt.Sprintf(
		`UPDATE tasks SET %s WHERE id = $1 AND user_id = $2 RETURNING %s`,
		strings.Join(sets, ", "), taskColumns)

	t, err := scanTask(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed,
		&t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
