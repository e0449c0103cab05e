// Package ws carries the chat bot over a WebSocket so a front end can
// stream the conversation instead of polling the JSON endpoint.
package ws

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"
	"github.com/nadajinny/AI-Challenge-MVP/internal/service/ratelimit"
	"github.com/nadajinny/AI-Challenge-MVP/internal/usecase"
	xlogger "github.com/nadajinny/AI-Challenge-MVP/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const pingInterval = 30 * time.Second

// lockedConn serializes writes to one connection. gorilla/websocket allows
// at most one concurrent writer, and the ping loop writes alongside the
// reply loop.
type lockedConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (lc *lockedConn) writeJSON(v interface{}) error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.conn.WriteJSON(v)
}

func (lc *lockedConn) ping() error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.conn.WriteMessage(websocket.PingMessage, nil)
}

// inboundFrame is one user message. The last stress result rides along as
// explicit caller context; the socket keeps no conversation state.
type inboundFrame struct {
	Text       string               `json:"text"`
	LastResult *models.StressResult `json:"last_result,omitempty"`
}

// ChatSocket upgrades connections and answers each user message with one
// bot message, after the configured typing delay.
type ChatSocket struct {
	logger   *xlogger.Logger
	agg      *usecase.AdvisorAggregator
	limiter  *ratelimit.Limiter
	burst    float64
	perSec   float64
	upgrader websocket.Upgrader
}

func NewChatSocket(logger *xlogger.Logger, agg *usecase.AdvisorAggregator, limiter *ratelimit.Limiter, burst, perSec float64) *ChatSocket {
	if burst <= 0 {
		burst = 5
	}
	if perSec <= 0 {
		perSec = 1
	}
	return &ChatSocket{
		logger:  logger,
		agg:     agg,
		limiter: limiter,
		burst:   burst,
		perSec:  perSec,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The API is CORS-open; the socket follows the same policy.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handle runs one chat session until the peer disconnects.
func (s *ChatSocket) Handle(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return fmt.Errorf("chat upgrade: %w", err)
	}

	connID := fmt.Sprintf("%s-%p", conn.RemoteAddr(), conn)
	defer func() {
		s.limiter.Forget(connID)
		_ = conn.Close()
	}()

	lc := &lockedConn{conn: conn}

	done := make(chan struct{})
	defer close(done)

	// ping loop
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = lc.ping()
			}
		}
	}()

	seq := 0
	for {
		var in inboundFrame
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("chat socket read", xlogger.Error(err))
			}
			return nil
		}

		if !s.limiter.Allow(connID, s.burst, s.perSec) {
			seq++
			_ = lc.writeJSON(models.ChatMessage{
				ID:        fmt.Sprintf("bot-%d", seq),
				Sender:    models.SenderBot,
				Text:      "잠시만요, 메시지가 너무 빨라요. 천천히 이야기해 주세요.",
				Timestamp: time.Now(),
			})
			continue
		}

		reply := s.agg.ChatReply(c.Request().Context(), in.Text, in.LastResult)

		// simulated typing
		time.Sleep(s.agg.TypingDelay())

		seq++
		msg := models.ChatMessage{
			ID:        fmt.Sprintf("bot-%d", seq),
			Sender:    models.SenderBot,
			Text:      reply.Reply,
			Timestamp: time.Now(),
		}
		if err := lc.writeJSON(msg); err != nil {
			s.logger.Warn("chat socket write", xlogger.Error(err))
			return nil
		}
	}
}
