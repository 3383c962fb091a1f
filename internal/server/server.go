// Package server exposes the session registry over HTTP and websockets.
package server

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// Server is the HTTP host for a session.Manager.
type Server struct {
	app   *fiber.App
	cfg   *config.Config
	games *session.Manager
	log   *log.Logger
}

// New builds the fiber app and mounts all routes.
func New(cfg *config.Config, games *session.Manager) *Server {
	s := &Server{
		cfg:   cfg,
		games: games,
		log:   log.New(cfg.LogFile, "chess-server: ", log.LstdFlags),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "chess-server",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		BodyLimit:             cfg.Server.BodyLimit,
		ErrorHandler:          s.handleError,
		DisableStartupMessage: cfg.Verbosity < 2,
	})

	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET, POST, DELETE, OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	if cfg.Server.AccessLog {
		s.app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")
	games := api.Group("/games")
	games.Get("/", s.listGames)
	games.Post("/", s.createGame)
	games.Get("/:id", s.getGame)
	games.Delete("/:id", s.deleteGame)
	games.Get("/:id/fen", s.getFEN)
	games.Post("/:id/fen", s.loadFEN)
	games.Get("/:id/moves", s.legalMoves)
	games.Post("/:id/move", s.makeMove)
	games.Post("/:id/undo", s.undo)
	games.Post("/:id/reset", s.reset)
	games.Get("/:id/perft", s.perft)
	games.Get("/:id/analysis", s.analysis)

	if s.cfg.Server.EnableWebsocket {
		s.app.Get("/ws/games/:id", s.upgrade, s.socketHandler())
	}
}

// App returns the underlying fiber app, for tests and embedding.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	if s.cfg.Verbosity > 0 {
		s.log.Printf("listening on %s", s.cfg.Server.Addr)
	}
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown stops the server, waiting for active requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
