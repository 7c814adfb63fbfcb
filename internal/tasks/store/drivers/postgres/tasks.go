package postgres

import (
	"context"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/jackc/pgx/v5"
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
	err := r.db.QueryRow(ctx, createTask,
		t.Title,
		t.Description,
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
	rows, err := r.db.Query(ctx, listTasks, f.OwnerID, f.Complete)
	if err != nil {
		return nil, err
	}

	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Task, error) {
		return scanTask(row)
	})
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = make([]domain.Task, 0)
	}
	return tasks, nil
}

func (r *tasksRepo) GetTask(ctx context.Context, id int64, ownerID string) (domain.Task, error) {
	t, err := scanTask(r.db.QueryRow(ctx, getTask, id, ownerID))
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	tag, err := r.db.Exec(ctx, updateTask,
		t.Title,
		t.Description,
		t.Priority,
		t.Complete,
		nowOr(t.UpdatedAt),
		t.ID,
		t.OwnerID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return expectAffected(tag)
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id int64, ownerID string) error {
	tag, err := r.db.Exec(ctx, deleteTask, id, ownerID)
	if err != nil {
		return err
	}
	return expectAffected(tag)
}

func scanTask(row pgx.Row) (domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Priority,
		&t.Complete,
		&t.OwnerID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}
