package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/saeidalz13/battleship-placement/db/sqlc"
	cerr "github.com/saeidalz13/battleship-placement/internal/error"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
	mc "github.com/saeidalz13/battleship-placement/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	PlacementPath = "/placement"

	shutdownTimeout = time.Second * 10
)

var defaultPort int = 9191

type Server struct {
	port            int
	stage           string
	gridSize        int
	allowedOrigins  map[string]bool
	sessionLifetime time.Duration
	analytics       *sqlc.AnalyticsManager

	SessionManager *mc.BattleshipSessionManager
	BoardManager   *mb.BattleshipBoardManager
}

type Option func(*Server) error

func NewServer(optFuncs ...Option) (*Server, error) {
	server := Server{
		port:     defaultPort,
		stage:    StageDev,
		gridSize: mb.GridSizeDefault,
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			return nil, err
		}
	}

	server.SessionManager = mc.NewBattleshipSessionManager(server.sessionLifetime)
	server.BoardManager = mb.NewBattleshipBoardManager(server.gridSize)

	return &server, nil
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return cerr.ErrInvalidStage(stage)
		}
		s.stage = stage
		return nil
	}
}

func WithGridSize(gridSize int) Option {
	return func(s *Server) error {
		if gridSize <= 0 {
			return cerr.ErrInvalidGridSize(gridSize)
		}
		s.gridSize = gridSize
		return nil
	}
}

// Only enforced in prod.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) error {
		s.allowedOrigins = make(map[string]bool, len(origins))
		for _, origin := range origins {
			s.allowedOrigins[origin] = true
		}
		return nil
	}
}

func WithSessionLifetime(lifetime time.Duration) Option {
	return func(s *Server) error {
		s.sessionLifetime = lifetime
		return nil
	}
}

func WithAnalytics(analytics *sqlc.AnalyticsManager) Option {
	return func(s *Server) error {
		s.analytics = analytics
		return nil
	}
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if s.stage == StageDev || len(s.allowedOrigins) == 0 {
		return true
	}
	return s.allowedOrigins[r.Header.Get("Origin")]
}

func (s *Server) Handler() http.Handler {
	rp := NewRequestProcessor(s.SessionManager, s.BoardManager, s.analytics).WithCheckOrigin(s.checkOrigin)

	mux := http.NewServeMux()
	mux.Handle("GET "+PlacementPath, rp)
	return mux
}

// Run serves until ctx is cancelled and then shuts the http server down.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler: s.Handler(),
	}

	go s.SessionManager.CleanupPeriodically(ctx)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Listening to port %d\n", s.port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Println("shutting down the server...")
		return httpServer.Shutdown(shutdownCtx)
	}
}
