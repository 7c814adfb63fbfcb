package tasksdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Session represents an authenticated caller. It holds a single access
// token and never refreshes it.
type Session struct {
	client      *SDKClient
	accessToken string
	expiresAt   time.Time
}

// newSession creates a new authenticated session from a token response.
func newSession(client *SDKClient, tokenResp *TokenResponse) *Session {
	return &Session{
		client:      client,
		accessToken: tokenResp.Token,
		expiresAt:   time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
	}
}

// AccessToken returns the bearer token used by this session.
func (s *Session) AccessToken() string { return s.accessToken }

// ExpiresAt returns the approximate expiry of the access token. It is zero
// for sessions built from a bare token.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// ListTasks returns the caller's tasks ordered by id.
func (s *Session) ListTasks(ctx context.Context, opts ListOptions) ([]Task, error) {
	path := "/"
	if opts.Complete != nil {
		path += "?" + url.Values{"complete": {strconv.FormatBool(*opts.Complete)}}.Encode()
	}

	var tasks []Task
	if err := s.client.doJSON(ctx, http.MethodGet, path, s.accessToken, nil, &tasks, http.StatusOK); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask returns a single task owned by the caller.
func (s *Session) GetTask(ctx context.Context, id int64) (*Task, error) {
	var task Task
	if err := s.client.doJSON(ctx, http.MethodGet, "/task/"+strconv.FormatInt(id, 10), s.accessToken, nil, &task, http.StatusOK); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task owned by the caller.
func (s *Session) CreateTask(ctx context.Context, req TaskRequest) (*TransactionResponse, error) {
	var out TransactionResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/", s.accessToken, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask overwrites a task owned by the caller.
func (s *Session) UpdateTask(ctx context.Context, id int64, req TaskRequest) (*TransactionResponse, error) {
	var out TransactionResponse
	if err := s.client.doJSON(ctx, http.MethodPut, "/"+strconv.FormatInt(id, 10), s.accessToken, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task owned by the caller.
func (s *Session) DeleteTask(ctx context.Context, id int64) (*TransactionResponse, error) {
	var out TransactionResponse
	if err := s.client.doJSON(ctx, http.MethodDelete, "/"+strconv.FormatInt(id, 10), s.accessToken, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
