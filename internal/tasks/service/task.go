package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
)

type TaskService struct {
	Store store.Store

	// Now is the clock used for timestamps. Nil uses time.Now.
	Now func() time.Time
}

// TaskParams are the writable fields of a task.
type TaskParams struct {
	Title       string
	Description *string
	Priority    int
	Complete    bool
}

func (s *TaskService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// ListTasks returns the caller's tasks ordered by id. A non-nil complete
// restricts the result to tasks with that state.
func (s *TaskService) ListTasks(ctx context.Context, id domain.Identity, complete *bool) ([]domain.Task, error) {
	if id.IsZero() {
		return nil, ErrInvalidToken
	}
	return s.Store.Tasks().ListTasks(ctx, store.TaskFilter{OwnerID: id.UserID, Complete: complete})
}

// GetTask returns a task owned by the caller. Tasks owned by someone else
// are reported as ErrTaskNotFound.
func (s *TaskService) GetTask(ctx context.Context, id domain.Identity, taskID int64) (domain.Task, error) {
	if id.IsZero() {
		return domain.Task{}, ErrInvalidToken
	}

	task, err := s.Store.Tasks().GetTask(ctx, taskID, id.UserID)
	if err != nil {
		return domain.Task{}, mapTaskErr(err)
	}
	return task, nil
}

// CreateTask validates p and stores a task owned by the caller.
func (s *TaskService) CreateTask(ctx context.Context, id domain.Identity, p TaskParams) (domain.Task, error) {
	if id.IsZero() {
		return domain.Task{}, ErrInvalidToken
	}
	p, err := validateTask(p)
	if err != nil {
		return domain.Task{}, err
	}

	now := s.now()
	task := domain.Task{
		Title:       p.Title,
		Description: p.Description,
		Priority:    p.Priority,
		Complete:    p.Complete,
		OwnerID:     id.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	taskID, err := s.Store.Tasks().CreateTask(ctx, task)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			// The token is valid but its user no longer exists.
			return domain.Task{}, ErrInvalidToken
		}
		return domain.Task{}, err
	}
	task.ID = taskID

	slogx.FromContext(ctx).Info("task created", slog.Int64("task_id", taskID))
	return task, nil
}

// UpdateTask overwrites every writable field of a task owned by the caller.
// The lookup and write happen in one transaction.
func (s *TaskService) UpdateTask(ctx context.Context, id domain.Identity, taskID int64, p TaskParams) (domain.Task, error) {
	if id.IsZero() {
		return domain.Task{}, ErrInvalidToken
	}
	p, err := validateTask(p)
	if err != nil {
		return domain.Task{}, err
	}

	var updated domain.Task
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		task, err := tx.Tasks().GetTask(ctx, taskID, id.UserID)
		if err != nil {
			return err
		}

		task.Title = p.Title
		task.Description = p.Description
		task.Priority = p.Priority
		task.Complete = p.Complete
		task.UpdatedAt = s.now()

		if err := tx.Tasks().UpdateTask(ctx, task); err != nil {
			return err
		}
		updated = task
		return nil
	})
	if err != nil {
		return domain.Task{}, mapTaskErr(err)
	}

	slogx.FromContext(ctx).Info("task updated", slog.Int64("task_id", taskID))
	return updated, nil
}

// DeleteTask removes a task owned by the caller.
func (s *TaskService) DeleteTask(ctx context.Context, id domain.Identity, taskID int64) error {
	if id.IsZero() {
		return ErrInvalidToken
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Tasks().GetTask(ctx, taskID, id.UserID); err != nil {
			return err
		}
		return tx.Tasks().DeleteTask(ctx, taskID, id.UserID)
	})
	if err != nil {
		return mapTaskErr(err)
	}

	slogx.FromContext(ctx).Info("task deleted", slog.Int64("task_id", taskID))
	return nil
}

func mapTaskErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}

func validateTask(p TaskParams) (TaskParams, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return p, invalid("title", "title is required")
	}
	if utf8.RuneCountInString(p.Title) > maxTitleLen {
		return p, invalid("title", "title must be at most %d characters", maxTitleLen)
	}

	if p.Description != nil {
		desc := strings.TrimSpace(*p.Description)
		if desc == "" {
			p.Description = nil
		} else {
			if utf8.RuneCountInString(desc) > maxDescriptionLen {
				return p, invalid("description", "description must be at most %d characters", maxDescriptionLen)
			}
			p.Description = &desc
		}
	}

	if p.Priority < domain.MinPriority || p.Priority > domain.MaxPriority {
		return p, invalid("priority", "priority must be between %d and %d", domain.MinPriority, domain.MaxPriority)
	}
	return p, nil
}
