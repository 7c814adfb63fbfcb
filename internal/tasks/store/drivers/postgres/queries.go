package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	userColumns = `id, username, email, first_name, last_name, password_hash, is_active, created_at, updated_at`
	taskColumns = `id, title, description, priority, complete, owner_id, created_at, updated_at`

	getUserByID       = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	createUser        = `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	updateUserHash    = `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`

	createTask = `INSERT INTO tasks (title, description, priority, complete, owner_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`
	listTasks = `SELECT ` + taskColumns + ` FROM tasks
WHERE owner_id = $1 AND ($2::boolean IS NULL OR complete = $2)
ORDER BY id`
	getTask    = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND owner_id = $2`
	updateTask = `UPDATE tasks
SET title = $1, description = $2, priority = $3, complete = $4, updated_at = $5
WHERE id = $6 AND owner_id = $7`
	deleteTask = `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`
)
