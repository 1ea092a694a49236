// Package web serves the single-screen UI and the describe API.
package web

import (
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/echosight/echosight/pkg/cycle"
	"github.com/echosight/echosight/pkg/hub"
)

// Status is the app state shown on screen and pushed over the websocket.
type Status struct {
	State           string `json:"state"`
	DepthSensing    bool   `json:"depth_sensing"`
	LastDescription string `json:"last_description"`
	LastError       string `json:"last_error"`
}

// Server is the single-screen web server.
type Server struct {
	app    *fiber.App
	addr   string
	runner *cycle.Runner
	logger *slog.Logger

	statusHub *hub.Hub

	mu     sync.RWMutex
	status Status
}

// NewServer creates the web server around a cycle runner.
func NewServer(addr string, runner *cycle.Runner, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		addr:      addr,
		runner:    runner,
		logger:    logger.With("component", "web"),
		statusHub: hub.New("status", logger),
		status: Status{
			State:        cycle.StateIdle.String(),
			DepthSensing: runner.DepthAvailable(),
		},
	}

	runner.OnTransition = s.onTransition

	app := fiber.New(fiber.Config{
		AppName:               "EchoSight",
		DisableStartupMessage: true,
		BodyLimit:             16 * 1024 * 1024, // browser photos
	})

	// CORS for local development
	app.Use(cors.New())

	app.Static("/", "./web")

	api := app.Group("/api")
	api.Post("/describe", s.handleDescribe)
	api.Get("/status", s.handleStatus)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/status", websocket.New(s.handleStatusWS))

	s.app = app
	return s
}

// Start runs the hub loop and listens on the configured address.
// Blocks until Shutdown.
func (s *Server) Start() error {
	go s.statusHub.Run()
	s.logger.Info("web server listening", "addr", s.addr)
	return s.app.Listen(s.addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// onTransition records and broadcasts every cycle state change.
func (s *Server) onTransition(state cycle.State) {
	s.mu.Lock()
	s.status.State = state.String()
	snapshot := s.status
	s.mu.Unlock()

	s.statusHub.BroadcastJSON(snapshot)
}

// setOutcome records the result of the latest cycle.
func (s *Server) setOutcome(description, errText string) {
	s.mu.Lock()
	if description != "" {
		s.status.LastDescription = description
		s.status.LastError = ""
	}
	if errText != "" {
		s.status.LastError = errText
	}
	snapshot := s.status
	s.mu.Unlock()

	s.statusHub.BroadcastJSON(snapshot)
}

// currentStatus returns a copy of the status.
func (s *Server) currentStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
