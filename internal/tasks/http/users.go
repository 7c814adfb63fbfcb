package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

// RegisterHandler serves POST /create/user.
type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register a user
//	@Description	Creates an active user. Usernames are unique and the password is stored hashed.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.RegisterRequest	true	"username, email, first_name, last_name, password"
//	@Success		200		{object}	tasksdk.UserResponse	"Registered user"
//	@Failure		400		{object}	tasksdk.APIError		"Malformed request body"
//	@Failure		409		{object}	tasksdk.APIError		"Username already registered"
//	@Failure		422		{object}	tasksdk.APIError		"Validation failed"
//	@Failure		500		{object}	tasksdk.APIError		"Internal server error"
//	@Router			/create/user [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		tasksdk.ErrBadRequest.WriteError(w)
		return
	}

	user, err := h.AuthService.RegisterUser(r.Context(), service.RegisterParams{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// TokenHandler serves POST /token. Credentials arrive as
// application/x-www-form-urlencoded fields.
type TokenHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Issue an access token
//	@Description	Exchanges a username and password for a signed JWT. Unknown users and wrong passwords are indistinguishable.
//	@Tags			Users
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string					true	"Username"
//	@Param			password	formData	string					true	"Password"
//	@Success		200			{object}	tasksdk.TokenResponse	"token, token_type, expires_in"
//	@Failure		400			{object}	tasksdk.APIError		"Malformed form body"
//	@Failure		401			{object}	tasksdk.APIError		"Incorrect username or password"
//	@Failure		422			{object}	tasksdk.APIError		"Missing username or password"
//	@Failure		500			{object}	tasksdk.APIError		"Internal server error"
//	@Header			200			{string}	Cache-Control			"no-store"
//	@Router			/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		tasksdk.ErrBadRequest.WriteError(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, httpx.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		tasksdk.ErrBadRequest.WriteError(w)
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if strings.TrimSpace(username) == "" {
		tasksdk.ErrValidation.WithField("username", "username is required").WriteError(w)
		return
	}
	if password == "" {
		tasksdk.ErrValidation.WithField("password", "password is required").WriteError(w)
		return
	}

	tok, err := h.AuthService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			tasksdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.TokenResponse{
		Token:     tok.Token,
		TokenType: "bearer",
		ExpiresIn: int(tok.TTL.Seconds()),
	})
}

func toUserResponse(u domain.User) tasksdk.UserResponse {
	return tasksdk.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.Active,
	}
}
