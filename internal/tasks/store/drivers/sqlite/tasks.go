package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
)

type tasksRepo struct {
	db DBTX
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) (int64, error) {
	created := nowOr(t.CreatedAt)
	updated := created
	if !t.UpdatedAt.IsZero() {
		updated = t.UpdatedAt.UTC()
	}

	var id int64
	err := r.db.QueryRowContext(ctx, createTask,
		t.Title,
		mapOptionalString(t.Description),
		t.Priority,
		t.Complete,
		t.OwnerID,
		created,
		updated,
	).Scan(&id)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return id, nil
}

func (r *tasksRepo) ListTasks(ctx context.Context, f store.TaskFilter) ([]domain.Task, error) {
	complete := mapOptionalBool(f.Complete)

	rows, err := r.db.QueryContext(ctx, listTasks, f.OwnerID, complete, complete)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) GetTask(ctx context.Context, id int64, ownerID string) (domain.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, getTask, id, ownerID))
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	res, err := r.db.ExecContext(ctx, updateTask,
		t.Title,
		mapOptionalString(t.Description),
		t.Priority,
		t.Complete,
		nowOr(t.UpdatedAt),
		t.ID,
		t.OwnerID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return expectAffected(res)
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id int64, ownerID string) error {
	res, err := r.db.ExecContext(ctx, deleteTask, id, ownerID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		t    domain.Task
		desc sql.NullString
	)
	err := row.Scan(
		&t.ID,
		&t.Title,
		&desc,
		&t.Priority,
		&t.Complete,
		&t.OwnerID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}
	t.Description = mapNullStringPtr(desc)
	return t, nil
}
