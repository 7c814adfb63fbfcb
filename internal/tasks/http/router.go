package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/jwtx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
	"github.com/go-chi/cors"

	_ "github.com/aussiebroadwan/tasks/api/tasks" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	TaskService *service.TaskService
}

// NewRouter builds a router with request logging installed. CORS is only
// enabled when allowedOrigins is non-empty.
func NewRouter(
	signer jwtx.Signer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	allowedOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	if len(allowedOrigins) > 0 {
		r.middlewares = append(r.middlewares, cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", slogx.RequestIDHeader},
			ExposedHeaders:   []string{slogx.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerTasks()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Tasks API
//	@version		0.1.0
//	@description	Task management API. Users register with a username and password, exchange
//	@description	them for a short-lived HMAC-signed JWT at /token and manage their own tasks.
//	@description
//	@description				Tasks owned by other users are reported as not found.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/tasks
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /create/user", registerHandler)

	tokenHandler := &TokenHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /token", tokenHandler)
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}
	authn := Authenticate(r.AuthService)

	r.Mux.Handle("GET /{$}", httpx.Chain(http.HandlerFunc(h.HandleList), authn))
	r.Mux.Handle("POST /{$}", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn))
	r.Mux.Handle("GET /task/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), authn))
	r.Mux.Handle("PUT /{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), authn))
	r.Mux.Handle("DELETE /{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), authn))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer))
}
