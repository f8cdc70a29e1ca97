package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"car-rental-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Типы сообщений WebSocket
const (
	BookingStatusUpdateType = "BOOKING_STATUS_UPDATE"
	PongType                = "pong"
)

const (
	writeWait   = 10 * time.Second
	pongWait    = 60 * time.Second
	pingPeriod  = (pongWait * 9) / 10
	sendBufSize = 16
)

// Message представляет формат сообщения WebSocket
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// TokenValidator проверяет токен из query и возвращает id аккаунта и роль.
type TokenValidator func(token string) (uint, string, error)

// Manager держит подключения панелей администратора и рассылает им события бронирований.
type Manager struct {
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}
	mutex      sync.RWMutex
	log        *zap.Logger
}

type client struct {
	conn      *websocket.Conn
	accountID uint
	send      chan []byte
	pong      chan struct{}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS проверяется на уровне gin
	},
}

func NewManager(log *zap.Logger) *Manager {
	return &Manager{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		log:        log.Named("websocket"),
	}
}

// Run обрабатывает регистрацию клиентов и рассылку до отмены ctx.
func (m *Manager) Run(ctx context.Context) {
	m.log.Info("websocket manager started")
	defer close(m.done)
	for {
		select {
		case <-ctx.Done():
			m.mutex.Lock()
			for c := range m.clients {
				close(c.send)
				delete(m.clients, c)
			}
			m.mutex.Unlock()
			m.log.Info("websocket manager stopped")
			return

		case c := <-m.register:
			m.mutex.Lock()
			m.clients[c] = struct{}{}
			m.mutex.Unlock()
			m.log.Debug("client registered", zap.Uint("account_id", c.accountID))

		case c := <-m.unregister:
			m.mutex.Lock()
			if _, ok := m.clients[c]; ok {
				delete(m.clients, c)
				close(c.send)
			}
			m.mutex.Unlock()
			m.log.Debug("client unregistered", zap.Uint("account_id", c.accountID))

		case msg := <-m.broadcast:
			m.mutex.Lock()
			for c := range m.clients {
				select {
				case c.send <- msg:
				default:
					// медленный клиент, отключаем
					delete(m.clients, c)
					close(c.send)
				}
			}
			m.mutex.Unlock()
		}
	}
}

// Clients возвращает число активных подключений.
func (m *Manager) Clients() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

// PublishBookingEvent рассылает событие бронирования всем подключенным администраторам.
func (m *Manager) PublishBookingEvent(ctx context.Context, ev models.BookingEvent) error {
	data, err := json.Marshal(Message{Type: BookingStatusUpdateType, Payload: ev})
	if err != nil {
		return err
	}
	select {
	case m.broadcast <- data:
		return nil
	case <-m.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Handler обрабатывает подключения WebSocket: GET /ws?token=<jwt администратора>
func Handler(m *Manager, validate TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, role, err := validate(c.Query("token"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			return
		}
		if role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			m.log.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		cl := &client{
			conn:      conn,
			accountID: accountID,
			send:      make(chan []byte, sendBufSize),
			pong:      make(chan struct{}, 1),
		}
		select {
		case m.register <- cl:
		case <-m.done:
			conn.Close()
			return
		}

		go m.writePump(cl)
		go m.readPump(cl)
	}
}

func (m *Manager) readPump(c *client) {
	defer func() {
		select {
		case m.unregister <- c:
		case <-m.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				m.log.Debug("websocket read failed", zap.Uint("account_id", c.accountID), zap.Error(err))
			}
			return
		}

		// Клиент может присылать {"type":"ping"}
		var data struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(message, &data); err == nil && data.Type == "ping" {
			select {
			case c.pong <- struct{}{}:
			default:
			}
		}
	}
}

func (m *Manager) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-c.pong:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(Message{Type: PongType, Payload: time.Now().Unix()}); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
