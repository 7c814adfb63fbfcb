package http_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	httpapi "github.com/aussiebroadwan/tasks/internal/tasks/http"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/internal/tasks/store/drivers/sqlite"
	"github.com/aussiebroadwan/tasks/pkg/cryptox"
	"github.com/aussiebroadwan/tasks/pkg/jwtx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "router-test-secret-0123456789abcdef"
	testIssuer = "tasks-api"
)

type testServer struct {
	client *tasksdk.SDKClient
	url    string
	clock  *atomic.Int64
}

// advance moves the server clock forward.
func (s *testServer) advance(d time.Duration) { s.clock.Add(int64(d)) }

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "tasks.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	clock := &atomic.Int64{}
	clock.Store(time.Now().UTC().Truncate(time.Second).UnixNano())
	now := func() time.Time { return time.Unix(0, clock.Load()).UTC() }

	signer, err := jwtx.NewHMACSigner("HS256", []byte(testSecret))
	require.NoError(t, err)
	verifier, err := jwtx.NewHMACVerifier("HS256", []byte(testSecret), testIssuer, jwtx.WithClock(now))
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := httpapi.NewRouter(signer, "test", st, logger, nil)
	router.AuthService = &service.AuthService{
		Store:    st,
		Hasher:   cryptox.NewHasher("test-pepper"),
		Signer:   signer,
		Verifier: verifier,
		Issuer:   testIssuer,
		Now:      now,
	}
	router.TaskService = &service.TaskService{Store: st, Now: now}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{client: tasksdk.NewSDKClient(srv.URL), url: srv.URL, clock: clock}
}

func (s *testServer) signup(t *testing.T, username, password string) *tasksdk.Session {
	t.Helper()
	_, err := s.client.Register(t.Context(), tasksdk.RegisterRequest{
		Username:  username,
		FirstName: "First",
		LastName:  "Last",
		Password:  password,
	})
	require.NoError(t, err)

	session, err := s.client.Login(t.Context(), username, password)
	require.NoError(t, err)
	return session
}

func requireAPIError(t *testing.T, err error, want *tasksdk.APIError) {
	t.Helper()
	require.Error(t, err)
	var apiErr *tasksdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *tasksdk.APIError, got %T: %v", err, err)
	require.Equal(t, want.StatusCode, apiErr.StatusCode, apiErr.Detail)
	if want.Field == "" {
		require.Equal(t, want.Detail, apiErr.Detail)
	}
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var apiErr *tasksdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *tasksdk.APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode, apiErr.Detail)
}

func TestTaskLifecycle(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()

	alice := srv.signup(t, "alice", "pw123")
	bob := srv.signup(t, "bob", "hunter2")

	created, err := alice.CreateTask(ctx, tasksdk.TaskRequest{Title: "t1", Priority: 3})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, created.Status)
	require.Equal(t, tasksdk.TransactionSuccessful, created.Transaction)
	require.NotNil(t, created.Task)
	taskID := created.Task.ID

	tasks, err := alice.ListTasks(ctx, tasksdk.ListOptions{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "t1", tasks[0].Title)
	require.Equal(t, 3, tasks[0].Priority)
	require.False(t, tasks[0].Complete)

	_, err = bob.GetTask(ctx, taskID)
	requireAPIError(t, err, tasksdk.ErrTaskNotFound)

	bobTasks, err := bob.ListTasks(ctx, tasksdk.ListOptions{})
	require.NoError(t, err)
	require.Empty(t, bobTasks)

	deleted, err := alice.DeleteTask(ctx, taskID)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, deleted.Status)
	require.Nil(t, deleted.Task)

	tasks, err = alice.ListTasks(ctx, tasksdk.ListOptions{})
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestUpdateTask(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()

	alice := srv.signup(t, "alice", "pw123")
	bob := srv.signup(t, "bob", "hunter2")

	created, err := alice.CreateTask(ctx, tasksdk.TaskRequest{Title: "draft", Priority: 1})
	require.NoError(t, err)
	taskID := created.Task.ID

	desc := "finished"
	updated, err := alice.UpdateTask(ctx, taskID, tasksdk.TaskRequest{
		Title:       "final",
		Description: &desc,
		Priority:    5,
		Complete:    true,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, updated.Status)
	require.Equal(t, "final", updated.Task.Title)

	got, err := alice.GetTask(ctx, taskID)
	require.NoError(t, err)
	require.Equal(t, "final", got.Title)
	require.NotNil(t, got.Description)
	require.Equal(t, "finished", *got.Description)
	require.Equal(t, 5, got.Priority)
	require.True(t, got.Complete)

	_, err = bob.UpdateTask(ctx, taskID, tasksdk.TaskRequest{Title: "stolen", Priority: 2})
	requireAPIError(t, err, tasksdk.ErrTaskNotFound)

	_, err = bob.DeleteTask(ctx, taskID)
	requireAPIError(t, err, tasksdk.ErrTaskNotFound)

	got, err = alice.GetTask(ctx, taskID)
	require.NoError(t, err)
	require.Equal(t, "final", got.Title)
}

func TestListTasksCompleteFilter(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()
	alice := srv.signup(t, "alice", "pw123")

	_, err := alice.CreateTask(ctx, tasksdk.TaskRequest{Title: "open", Priority: 2})
	require.NoError(t, err)
	_, err = alice.CreateTask(ctx, tasksdk.TaskRequest{Title: "done", Priority: 2, Complete: true})
	require.NoError(t, err)

	done := true
	tasks, err := alice.ListTasks(ctx, tasksdk.ListOptions{Complete: &done})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "done", tasks[0].Title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.url+"/?complete=maybe", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+alice.AccessToken())
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateTaskPriorityBounds(t *testing.T) {
	srv := newTestServer(t)
	alice := srv.signup(t, "alice", "pw123")

	tests := []struct {
		priority int
		ok       bool
	}{
		{0, false},
		{1, true},
		{5, true},
		{6, false},
	}

	for _, tt := range tests {
		_, err := alice.CreateTask(t.Context(), tasksdk.TaskRequest{Title: "t", Priority: tt.priority})
		if tt.ok {
			require.NoError(t, err, "priority %d", tt.priority)
			continue
		}
		requireStatus(t, err, http.StatusUnprocessableEntity)
		var apiErr *tasksdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "priority", apiErr.Field)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	srv := newTestServer(t)
	srv.signup(t, "alice", "pw123")

	_, wrongPassword := srv.client.Login(t.Context(), "alice", "wrong")
	_, unknownUser := srv.client.Login(t.Context(), "mallory", "anything")

	requireAPIError(t, wrongPassword, tasksdk.ErrInvalidCredentials)
	requireAPIError(t, unknownUser, tasksdk.ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestRegister(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()

	email := "alice@example.com"
	user, err := srv.client.Register(ctx, tasksdk.RegisterRequest{
		Username:  "alice",
		Email:     &email,
		FirstName: "Alice",
		LastName:  "Liddell",
		Password:  "pw123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.True(t, user.IsActive)
	require.Equal(t, &email, user.Email)

	_, err = srv.client.Register(ctx, tasksdk.RegisterRequest{Username: "alice", Password: "other"})
	requireAPIError(t, err, tasksdk.ErrUsernameTaken)

	_, err = srv.client.Register(ctx, tasksdk.RegisterRequest{Username: "bob"})
	requireStatus(t, err, http.StatusUnprocessableEntity)

	_, err = srv.client.Register(ctx, tasksdk.RegisterRequest{Password: "pw"})
	requireStatus(t, err, http.StatusUnprocessableEntity)
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.url+"/create/user", "application/json", strings.NewReader(`{"username":`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTokenRequiresFormFields(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.url+"/token", "application/x-www-form-urlencoded", strings.NewReader("username=alice"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAuthenticationRequired(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()

	resp, err := http.Get(srv.url + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))

	_, err = srv.client.NewSessionFromToken("not-a-jwt").ListTasks(ctx, tasksdk.ListOptions{})
	requireAPIError(t, err, tasksdk.ErrUnauthorized)

	other, err := jwtx.NewHMACSigner("HS256", []byte("some-other-secret"))
	require.NoError(t, err)
	forged, err := other.Sign(jwtx.NewAccessClaims("alice", "01J0000000000000000000000", testIssuer, time.Minute, time.Now()))
	require.NoError(t, err)
	_, err = srv.client.NewSessionFromToken(forged).ListTasks(ctx, tasksdk.ListOptions{})
	requireAPIError(t, err, tasksdk.ErrUnauthorized)
}

func TestExpiredToken(t *testing.T) {
	srv := newTestServer(t)
	ctx := t.Context()
	alice := srv.signup(t, "alice", "pw123")

	srv.advance(jwtx.DefaultAccessTokenTTL - time.Second)
	_, err := alice.ListTasks(ctx, tasksdk.ListOptions{})
	require.NoError(t, err)

	srv.advance(2 * time.Second)
	_, err = alice.ListTasks(ctx, tasksdk.ListOptions{})
	requireAPIError(t, err, tasksdk.ErrTokenExpired)
}

func TestMalformedTaskID(t *testing.T) {
	srv := newTestServer(t)
	alice := srv.signup(t, "alice", "pw123")

	for _, path := range []string{"/task/abc", "/task/0", "/task/-1"} {
		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.url+path, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+alice.AccessToken())

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	live, err := srv.client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := srv.client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)
}

func TestRequestIDEchoed(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.url+"/livez", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "req-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))
}
