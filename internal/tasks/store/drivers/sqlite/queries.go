package sqlite

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so the same queries run
// inside and outside a transaction.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

const (
	userColumns = `id, username, email, first_name, last_name, password_hash, is_active, created_at, updated_at`
	taskColumns = `id, title, description, priority, complete, owner_id, created_at, updated_at`

	getUserByID       = `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	getUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	createUser        = `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	updateUserHash    = `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`

	createTask = `INSERT INTO tasks (title, description, priority, complete, owner_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id`
	listTasks = `SELECT ` + taskColumns + ` FROM tasks
WHERE owner_id = ? AND (? IS NULL OR complete = ?)
ORDER BY id`
	getTask    = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND owner_id = ?`
	updateTask = `UPDATE tasks
SET title = ?, description = ?, priority = ?, complete = ?, updated_at = ?
WHERE id = ? AND owner_id = ?`
	deleteTask = `DELETE FROM tasks WHERE id = ? AND owner_id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}
