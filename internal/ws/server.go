package ws

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"horatime-api/internal/config"
	"horatime-api/internal/timezone"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	MessageTypeTick  = "timezone.tick"
	MessageTypeError = "error"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Message struct {
	Type    string             `json:"type"`
	Message string             `json:"message,omitempty"`
	Data    *timezone.Response `json:"data,omitempty"`
}

// Server streams the current time of one location per connection.
type Server struct {
	Service *timezone.Service
	Logger  *zap.Logger
	Config  config.Config
}

func New(svc *timezone.Service, logger *zap.Logger, cfg config.Config) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.WSTickInterval <= 0 {
		cfg.WSTickInterval = time.Second
	}
	if cfg.WSWriteTimeout <= 0 {
		cfg.WSWriteTimeout = 10 * time.Second
	}
	return &Server{Service: svc, Logger: logger, Config: cfg}
}

type wsClient struct {
	conn         *websocket.Conn
	writeTimeout time.Duration
	writeMu      sync.Mutex
}

func (c *wsClient) writeJSON(value any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.writeTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	return c.conn.WriteJSON(value)
}

// ClockWS serves GET /ws/timezone?location=<name>. The first frame is sent
// immediately; later frames follow every WSTickInterval until the client goes
// away.
func (s *Server) ClockWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	client := &wsClient{conn: conn, writeTimeout: s.Config.WSWriteTimeout}

	location := r.URL.Query().Get("location")
	if strings.TrimSpace(location) == "" {
		_ = client.writeJSON(Message{Type: MessageTypeError, Message: timezone.MessageMissingParam})
		return
	}

	resp := s.Service.CurrentTime(location)
	if !resp.Success() {
		_ = client.writeJSON(Message{Type: MessageTypeError, Message: resp.Message, Data: &resp})
		return
	}
	zone := *resp.Timezone
	if err := client.writeJSON(Message{Type: MessageTypeTick, Data: &resp}); err != nil {
		return
	}

	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.Config.WSTickInterval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-clientClosed:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick := s.Service.Refresh(location, zone)
			msg := Message{Type: MessageTypeTick, Data: &tick}
			if !tick.Success() {
				msg = Message{Type: MessageTypeError, Message: tick.Message, Data: &tick}
			}
			if err := client.writeJSON(msg); err != nil {
				s.Logger.Debug("websocket write failed", zap.String("location", location), zap.Error(err))
				return
			}
			if !tick.Success() {
				return
			}
		}
	}
}
