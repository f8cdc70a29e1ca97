package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"car-rental-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testValidator(token string) (uint, string, error) {
	switch token {
	case "admin":
		return 1, models.RoleAdmin, nil
	case "client":
		return 2, models.RoleClient, nil
	}
	return 0, "", errors.New("bad token")
}

func newTestServer(t *testing.T) (*Manager, *httptest.Server) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := NewManager(zap.NewNop())
	go m.Run(ctx)

	r := gin.New()
	r.GET("/ws", Handler(m, testValidator))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return m, srv
}

func wsURL(srv *httptest.Server, token string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
}

func TestHandlerRejectsNonAdmin(t *testing.T) {
	_, srv := newTestServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "client"), nil)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	_, resp, err = websocket.DefaultDialer.Dial(wsURL(srv, "nope"), nil)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPublishBookingEvent(t *testing.T) {
	m, srv := newTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "admin"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return m.Clients() == 1 }, time.Second, 10*time.Millisecond)

	ev := models.BookingEvent{Action: models.BookingActionTransition, BookingID: 5, Status: models.BookingStatusApproved}
	require.NoError(t, m.PublishBookingEvent(context.Background(), ev))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Type    string              `json:"type"`
		Payload models.BookingEvent `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, BookingStatusUpdateType, msg.Type)
	require.Equal(t, uint(5), msg.Payload.BookingID)
	require.Equal(t, models.BookingStatusApproved, msg.Payload.Status)
}

func TestPingPong(t *testing.T) {
	_, srv := newTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "admin"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "ping"}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, PongType, msg.Type)
}

func TestHandlerAfterManagerStopped(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager(zap.NewNop())
	stopped := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	r := gin.New()
	r.GET("/ws", Handler(m, testValidator))
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "admin"), nil)
	require.NoError(t, err)
	defer conn.Close()

	// менеджер остановлен: соединение закрывается сервером, а не зависает
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		require.False(t, netErr.Timeout())
	}
	require.NoError(t, m.PublishBookingEvent(context.Background(), models.BookingEvent{BookingID: 1}))
	require.Zero(t, m.Clients())
}
