package tasksdk

import "time"

// TransactionSuccessful is the "transaction" value of every mutation response.
const TransactionSuccessful = "Successful"

// ============================================================================
// User Types
// ============================================================================

// RegisterRequest is the body of POST /create/user.
type RegisterRequest struct {
	Username  string  `json:"username" example:"alice"`
	Email     *string `json:"email,omitempty" example:"alice@example.com"`
	FirstName string  `json:"first_name" example:"Alice"`
	LastName  string  `json:"last_name" example:"Liddell"`
	Password  string  `json:"password" example:"pw123"`
}

// UserResponse describes a registered user. The password hash is never
// included.
type UserResponse struct {
	ID        string  `json:"id" example:"01HZX3J6Q9V2T8K4M5N7P0R1S2"`
	Username  string  `json:"username" example:"alice"`
	Email     *string `json:"email,omitempty" example:"alice@example.com"`
	FirstName string  `json:"first_name" example:"Alice"`
	LastName  string  `json:"last_name" example:"Liddell"`
	IsActive  bool    `json:"is_active" example:"true"`
}

// ============================================================================
// Token Types
// ============================================================================

// TokenResponse is the body returned by POST /token.
type TokenResponse struct {
	// Token is the signed JWT access token
	Token string `json:"token"`

	// TokenType is always "bearer"
	TokenType string `json:"token_type" example:"bearer"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in" example:"1200"`
}

// ============================================================================
// Task Types
// ============================================================================

// TaskRequest is the body of POST / and PUT /{id}.
type TaskRequest struct {
	Title       string  `json:"title" example:"Buy milk"`
	Description *string `json:"description,omitempty" example:"Two litres, full cream"`
	Priority    int     `json:"priority" example:"3" minimum:"1" maximum:"5"`
	Complete    bool    `json:"complete" example:"false"`
}

// Task is a task as returned by the API.
type Task struct {
	ID          int64     `json:"id" example:"1"`
	Title       string    `json:"title" example:"Buy milk"`
	Description *string   `json:"description,omitempty" example:"Two litres, full cream"`
	Priority    int       `json:"priority" example:"3"`
	Complete    bool      `json:"complete" example:"false"`
	OwnerID     string    `json:"owner_id" example:"01HZX3J6Q9V2T8K4M5N7P0R1S2"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionResponse is returned by the mutating task endpoints.
type TransactionResponse struct {
	Status      int    `json:"status" example:"201"`
	Transaction string `json:"transaction" example:"Successful"`
	Task        *Task  `json:"task,omitempty"`
}

// ListOptions filters GET /.
type ListOptions struct {
	// Complete restricts the result to complete or incomplete tasks when set
	Complete *bool
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the JWT signing capability status
	Signer string `json:"signer"`
}
