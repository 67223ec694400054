// Package rest exposes the CareKeeper REST gateway: one endpoint family
// per resource (auth, profile, tasks, appointments), each request
// authenticated independently via the bearer token. Endpoints are
// stateless aside from the shared in-memory stores; there is no
// transactional multi-resource operation.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/carekeeper/internal/logging"
	"github.com/dmitrijs2005/carekeeper/internal/server/auth"
	"github.com/dmitrijs2005/carekeeper/internal/server/userdata"
	"github.com/dmitrijs2005/carekeeper/internal/server/users"
	"github.com/gorilla/mux"
)

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     *users.Service
	data      *userdata.Service
	jwtSecret []byte
}

func NewHTTPServer(address string, l logging.Logger, us *users.Service, ds *userdata.Service, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		data:      ds,
		jwtSecret: []byte(secretKey),
	}
}

func (s *HTTPServer) verifyToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

// Router assembles all routes. Split out from Run so tests can drive the
// gateway through httptest without binding a socket.
func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/auth/signup", s.handleSignup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	private := api.PathPrefix("").Subrouter()
	private.Use(s.bearerMiddleware)

	private.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)

	private.HandleFunc("/user/profile", s.handleGetProfile).Methods(http.MethodGet)
	private.HandleFunc("/user/profile", s.handleUpdateProfile).Methods(http.MethodPut)

	private.HandleFunc("/user/tasks", s.handleListTasks).Methods(http.MethodGet)
	private.HandleFunc("/user/tasks", s.handleCreateTask).Methods(http.MethodPost)
	private.HandleFunc("/user/tasks/{id}", s.handleUpdateTask).Methods(http.MethodPut)
	private.HandleFunc("/user/tasks/{id}", s.handleDeleteTask).Methods(http.MethodDelete)

	private.HandleFunc("/user/appointments", s.handleListAppointments).Methods(http.MethodGet)
	private.HandleFunc("/user/appointments", s.handleCreateAppointment).Methods(http.MethodPost)
	private.HandleFunc("/user/appointments/{id}", s.handleUpdateAppointment).Methods(http.MethodPut)
	private.HandleFunc("/user/appointments/{id}", s.handleDeleteAppointment).Methods(http.MethodDelete)

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
