package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/internal/tasks/store/drivers/sqlite"
	"github.com/aussiebroadwan/tasks/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "tasks.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func createUser(t *testing.T, st store.Store, username string) domain.User {
	t.Helper()

	email := username + "@example.com"
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        &email,
		FirstName:    "First",
		LastName:     "Last",
		PasswordHash: "$argon2id$placeholder",
		Active:       true,
	}
	require.NoError(t, st.Users().CreateUser(t.Context(), u))
	return u
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(t.Context()))
}

func TestUsers(t *testing.T) {
	st := newTestStore(t)
	ctx := t.Context()

	alice := createUser(t, st, "alice")

	t.Run("get by id and username", func(t *testing.T) {
		byID, err := st.Users().GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "alice", byID.Username)
		require.Equal(t, "alice@example.com", *byID.Email)
		require.True(t, byID.Active)
		require.False(t, byID.CreatedAt.IsZero())

		byName, err := st.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, alice.ID, byName.ID)
	})

	t.Run("nil email round trips", func(t *testing.T) {
		u := domain.User{ID: idx.New().String(), Username: "noemail", PasswordHash: "h", Active: true}
		require.NoError(t, st.Users().CreateUser(ctx, u))

		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Nil(t, got.Email)
	})

	t.Run("duplicate username", func(t *testing.T) {
		dup := domain.User{ID: idx.New().String(), Username: "alice", PasswordHash: "h"}
		err := st.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := st.Users().GetUserByUsername(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update password hash", func(t *testing.T) {
		require.NoError(t, st.Users().UpdatePasswordHash(ctx, alice.ID, "$argon2id$new"))

		got, err := st.Users().GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "$argon2id$new", got.PasswordHash)

		err = st.Users().UpdatePasswordHash(ctx, idx.New().String(), "x")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestTasks(t *testing.T) {
	st := newTestStore(t)
	ctx := t.Context()

	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")

	desc := "two litres"
	id1, err := st.Tasks().CreateTask(ctx, domain.Task{Title: "t1", Description: &desc, Priority: 3, OwnerID: alice.ID})
	require.NoError(t, err)
	id2, err := st.Tasks().CreateTask(ctx, domain.Task{Title: "t2", Priority: 1, Complete: true, OwnerID: alice.ID})
	require.NoError(t, err)
	bobTask, err := st.Tasks().CreateTask(ctx, domain.Task{Title: "b1", Priority: 5, OwnerID: bob.ID})
	require.NoError(t, err)
	require.Less(t, id1, id2)

	t.Run("list is owner scoped and ordered", func(t *testing.T) {
		tasks, err := st.Tasks().ListTasks(ctx, store.TaskFilter{OwnerID: alice.ID})
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		require.Equal(t, id1, tasks[0].ID)
		require.Equal(t, id2, tasks[1].ID)
		require.Equal(t, "two litres", *tasks[0].Description)
		require.Nil(t, tasks[1].Description)
	})

	t.Run("list filters on complete", func(t *testing.T) {
		done := true
		tasks, err := st.Tasks().ListTasks(ctx, store.TaskFilter{OwnerID: alice.ID, Complete: &done})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Equal(t, id2, tasks[0].ID)

		open := false
		tasks, err = st.Tasks().ListTasks(ctx, store.TaskFilter{OwnerID: alice.ID, Complete: &open})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		require.Equal(t, id1, tasks[0].ID)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		carol := createUser(t, st, "carol")
		tasks, err := st.Tasks().ListTasks(ctx, store.TaskFilter{OwnerID: carol.ID})
		require.NoError(t, err)
		require.NotNil(t, tasks)
		require.Empty(t, tasks)
	})

	t.Run("get respects owner", func(t *testing.T) {
		got, err := st.Tasks().GetTask(ctx, id1, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "t1", got.Title)
		require.Equal(t, 3, got.Priority)

		_, err = st.Tasks().GetTask(ctx, id1, bob.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Tasks().GetTask(ctx, 9999, alice.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update respects owner", func(t *testing.T) {
		err := st.Tasks().UpdateTask(ctx, domain.Task{ID: bobTask, Title: "hijack", Priority: 1, OwnerID: alice.ID})
		require.ErrorIs(t, err, store.ErrNotFound)

		later := time.Now().Add(time.Minute)
		err = st.Tasks().UpdateTask(ctx, domain.Task{ID: id1, Title: "t1 edited", Priority: 4, Complete: true, OwnerID: alice.ID, UpdatedAt: later})
		require.NoError(t, err)

		got, err := st.Tasks().GetTask(ctx, id1, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "t1 edited", got.Title)
		require.Nil(t, got.Description)
		require.Equal(t, 4, got.Priority)
		require.True(t, got.Complete)
		require.True(t, got.UpdatedAt.After(got.CreatedAt))
	})

	t.Run("delete respects owner", func(t *testing.T) {
		err := st.Tasks().DeleteTask(ctx, bobTask, alice.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		require.NoError(t, st.Tasks().DeleteTask(ctx, bobTask, bob.ID))
		err = st.Tasks().DeleteTask(ctx, bobTask, bob.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown owner is rejected", func(t *testing.T) {
		_, err := st.Tasks().CreateTask(ctx, domain.Task{Title: "orphan", Priority: 2, OwnerID: idx.New().String()})
		require.ErrorIs(t, err, store.ErrInvalidReference)
	})

	t.Run("priority outside range is rejected by schema", func(t *testing.T) {
		_, err := st.Tasks().CreateTask(ctx, domain.Task{Title: "bad", Priority: 6, OwnerID: alice.ID})
		require.Error(t, err)
	})
}

func TestWithTx(t *testing.T) {
	st := newTestStore(t)
	ctx := t.Context()
	alice := createUser(t, st, "alice")

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := st.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Tasks().CreateTask(ctx, domain.Task{Title: "rolled back", Priority: 2, OwnerID: alice.ID})
			require.NoError(t, err)
			return boom
		})
		require.ErrorIs(t, err, boom)

		tasks, err := st.Tasks().ListTasks(ctx, store.TaskFilter{OwnerID: alice.ID})
		require.NoError(t, err)
		require.Empty(t, tasks)
	})

	t.Run("commit on success", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Tasks().CreateTask(ctx, domain.Task{Title: "kept", Priority: 2, OwnerID: alice.ID})
			return err
		})
		require.NoError(t, err)

		tasks, err := st.Tasks().ListTasks(ctx, store.TaskFilter{OwnerID: alice.ID})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
	})

	t.Run("nested transactions are refused", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.Error(t, err)
	})
}

func TestConcurrentCreates(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.Tasks().CreateTask(ctx, domain.Task{Title: "c", Priority: 3, OwnerID: alice.ID})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	tasks, err := st.Tasks().ListTasks(ctx, store.TaskFilter{OwnerID: alice.ID})
	require.NoError(t, err)
	require.Len(t, tasks, n)
}
