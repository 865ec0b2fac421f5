package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-console/internal/middleware"
	"task-console/internal/model"
	"task-console/internal/task"
	"task-console/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Task domain
	browser task.Browser
	editor  task.Editor
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	RequestsPerMin int

	// Task domain
	Browser task.Browser
	Editor  task.Editor
}

// New creates a new HTTPServer instance. The production environment always
// runs gin in release mode.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	mode := cfg.Mode
	if model.Environment(cfg.Environment) == model.EnvironmentProduction {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        mode,
		environment: cfg.Environment,
		mw:          middleware.New(logger, cfg.RequestsPerMin),
		browser:     cfg.Browser,
		editor:      cfg.Editor,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.browser == nil || srv.editor == nil {
		return errors.New("task browser and editor are required")
	}
	return nil
}

func (srv HTTPServer) production() bool {
	return model.Environment(srv.environment) == model.EnvironmentProduction
}
