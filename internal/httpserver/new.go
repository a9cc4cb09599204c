package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"enrollment-assistant/internal/chat"
	"enrollment-assistant/internal/conversation"
	"enrollment-assistant/internal/task"
	"enrollment-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	allowedOrigins []string

	// Domains
	conversations  conversation.Store
	chatUC         chat.UseCase
	taskUC         task.UseCase
	observerBuffer int

	shutdownTimeout time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	Conversations  conversation.Store
	Chat           chat.UseCase
	Task           task.UseCase
	ObserverBuffer int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		conversations:   cfg.Conversations,
		chatUC:          cfg.Chat,
		taskUC:          cfg.Task,
		observerBuffer:  cfg.ObserverBuffer,
		shutdownTimeout: defaultShutdownTimeout,
	}

	if err := srv.validate(); err != nil {
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
	if srv.conversations == nil {
		return errors.New("conversation store is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	return nil
}
