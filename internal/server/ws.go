package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"exec-planner/internal/domain"
)

// WSConfig configures quote stream session behavior.
type WSConfig struct {
	// PingInterval is interval for sending ping frames.
	PingInterval time.Duration
	// ReadTimeout is timeout for reading requests.
	ReadTimeout time.Duration
	// WriteTimeout is timeout for writing results.
	WriteTimeout time.Duration
	// ReadLimit bounds the size of one inbound request frame.
	ReadLimit int64
}

// DefaultWSConfig returns default stream configuration.
func DefaultWSConfig() WSConfig {
	return WSConfig{
		PingInterval: 30 * time.Second,
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 10 * time.Second,
		ReadLimit:    64 * 1024,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

type streamError struct {
	Error string `json:"error"`
}

// handleQuoteStream serves an interactive quote session: the client
// sends an OrderRequest per edit and receives the recomputed result.
// A request error is reported in-band; the session stays open.
func (s *Server) handleQuoteStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	s.metrics.ActiveStreamSessions.Inc()
	defer s.metrics.ActiveStreamSessions.Dec()

	cfg := s.wsConfig
	conn.SetReadLimit(cfg.ReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))
	})

	done := make(chan struct{})
	defer close(done)
	go s.pingLoop(conn, done)

	s.logger.Info("quote stream opened", zap.String("remote", r.RemoteAddr))

	for {
		var req domain.OrderRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("quote stream read failed", zap.Error(err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))

		result, err := s.simulate(req)

		_ = conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout))
		if err != nil {
			if werr := conn.WriteJSON(streamError{Error: err.Error()}); werr != nil {
				return
			}
			continue
		}
		if werr := conn.WriteJSON(result); werr != nil {
			return
		}
		s.metrics.StreamMessagesSent.Inc()
	}
}

func (s *Server) pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(s.wsConfig.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(s.wsConfig.WriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}
