package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"go.uber.org/zap"

	"machikoro/internal/config"
	"machikoro/internal/engine"
	"machikoro/internal/lobby"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers *Handlers
	port     int
	static   fs.FS
	logger   *zap.Logger
}

// New builds a server. static must hold the page files at its root.
func New(cfg config.Config, catalog *engine.Catalog, rules engine.Rules, static fs.FS, logger *zap.Logger) *Server {
	mgr := lobby.NewManager(cfg.MinPlayers, cfg.MaxPlayers)
	h := NewHandlers(mgr, catalog, rules, logger)
	h.leaveGrace = cfg.LeaveGrace
	return &Server{
		handlers: h,
		port:     cfg.Port,
		static:   static,
		logger:   logger,
	}
}

// Routes returns the HTTP handler for the static pages and the API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", http.FileServer(http.FS(s.static)))

	mux.HandleFunc("/api/create", s.handlers.HandleCreateGame)
	mux.HandleFunc("/api/qr", s.handlers.HandleQR)
	mux.HandleFunc("/api/player-id", s.handlers.HandlePlayerID)
	mux.HandleFunc("/ws", s.handlers.HandleWS)
	return mux
}

// Start serves until ctx is cancelled, then closes every room.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	srv := &http.Server{Addr: addr, Handler: s.Routes()}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", "http://localhost"+addr))
		s.logger.Info("open /api/create to create a new game")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.handlers.CloseAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
