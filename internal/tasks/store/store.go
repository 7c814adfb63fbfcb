package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInvalidReference is returned when a row points at a parent that
	// does not exist (e.g. a task whose owner was removed).
	ErrInvalidReference = errors.New("store: invalid reference")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and so a Tx can hand out the same repos bound to the transaction.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
// Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash replaces the stored hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error
}

// TaskFilter narrows ListTasks. OwnerID is mandatory.
type TaskFilter struct {
	OwnerID  string
	Complete *bool
}

type Tasks interface {
	// CreateTask inserts a task and returns the store-assigned id.
	// Returns ErrInvalidReference when the owner does not exist.
	CreateTask(ctx context.Context, t domain.Task) (int64, error)

	// ListTasks returns the owner's tasks ordered by id.
	ListTasks(ctx context.Context, f TaskFilter) ([]domain.Task, error)

	// GetTask returns a task only if it belongs to ownerID.
	GetTask(ctx context.Context, id int64, ownerID string) (domain.Task, error)

	// UpdateTask overwrites title, description, priority and complete of the
	// task matching both t.ID and t.OwnerID. Returns ErrNotFound otherwise.
	UpdateTask(ctx context.Context, t domain.Task) error

	// DeleteTask removes the task matching both id and ownerID.
	// Returns ErrNotFound otherwise.
	DeleteTask(ctx context.Context, id int64, ownerID string) error
}
