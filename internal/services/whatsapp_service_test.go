package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"car-rental-backend/internal/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWhatsAppServiceSend(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/waInstance42/sendMessage/tok", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "212612345678@c.us", body["chatId"])
		require.Equal(t, "hello", body["message"])
		_, _ = w.Write([]byte(`{"idMessage":"BAE5"}`))
	}))
	defer srv.Close()

	w := NewWhatsAppService(config.WhatsApp{GreenInstanceID: "42", GreenToken: "tok", GreenBaseURL: srv.URL + "/"}, zap.NewNop())
	require.True(t, w.Enabled())
	require.NoError(t, w.Send(context.Background(), Notification{Kind: NotificationApproved, Phone: "212612345678", Text: "hello"}))
}

func TestWhatsAppServiceSendError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"chatId is invalid"}`))
	}))
	defer srv.Close()

	w := NewWhatsAppService(config.WhatsApp{GreenInstanceID: "42", GreenToken: "tok", GreenBaseURL: srv.URL}, zap.NewNop())
	err := w.Send(context.Background(), Notification{Phone: "212612345678", Text: "hello"})
	require.ErrorContains(t, err, "chatId is invalid")

	err = w.Send(context.Background(), Notification{Phone: "21261x", Text: "hello"})
	require.ErrorContains(t, err, "digits only")
}

func TestWhatsAppServiceDisabled(t *testing.T) {
	t.Parallel()

	w := NewWhatsAppService(config.WhatsApp{}, zap.NewNop())
	require.False(t, w.Enabled())
	require.NoError(t, w.Send(context.Background(), Notification{Phone: "212612345678"}))
}
