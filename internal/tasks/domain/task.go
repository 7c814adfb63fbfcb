package domain

import "time"

// Priority bounds, inclusive.
const (
	MinPriority = 1
	MaxPriority = 5
)

type Task struct {
	ID          int64
	Title       string
	Description *string
	Priority    int
	Complete    bool
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
