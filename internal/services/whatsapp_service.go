package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"car-rental-backend/internal/config"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// WhatsAppService доставляет сообщения клиентам через Green API.
// Без реквизитов инстанса сервис выключен, клиент получает только ссылку.
type WhatsAppService struct {
	idInstance       string
	apiTokenInstance string
	baseURL          string
	client           *http.Client
	log              *zap.Logger
}

func NewWhatsAppService(cfg config.WhatsApp, log *zap.Logger) *WhatsAppService {
	return &WhatsAppService{
		idInstance:       cfg.GreenInstanceID,
		apiTokenInstance: cfg.GreenToken,
		baseURL:          strings.TrimRight(cfg.GreenBaseURL, "/"),
		client: &http.Client{
			Timeout: time.Second * 30,
		},
		log: log.Named("whatsapp"),
	}
}

func (w *WhatsAppService) Enabled() bool {
	return w.idInstance != "" && w.apiTokenInstance != "" && w.baseURL != ""
}

type greenAPIResponse struct {
	IDMessage string `json:"idMessage"`
	Error     string `json:"error"`
	Message   string `json:"message"`
}

// Send отправляет текст уведомления на номер n.Phone.
func (w *WhatsAppService) Send(ctx context.Context, n Notification) error {
	if !w.Enabled() {
		return nil
	}
	chatID := strings.TrimPrefix(strings.TrimSpace(n.Phone), "+")
	for _, r := range chatID {
		if r < '0' || r > '9' {
			return errors.Errorf("phone must contain digits only: %s", n.Phone)
		}
	}

	payload, err := json.Marshal(map[string]string{
		"chatId":  chatID + "@c.us",
		"message": n.Text,
	})
	if err != nil {
		return errors.Wrap(err, "marshal green api payload")
	}

	url := fmt.Sprintf("%s/waInstance%s/sendMessage/%s", w.baseURL, w.idInstance, w.apiTokenInstance)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build green api request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send green api request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read green api response")
	}

	var out greenAPIResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return errors.Wrapf(err, "decode green api response: %s", body)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != "" || out.Message != "" {
			return errors.Errorf("green api: %d %s%s", resp.StatusCode, out.Error, out.Message)
		}
		return errors.Errorf("green api: unexpected status %d", resp.StatusCode)
	}
	if out.IDMessage == "" {
		return errors.New("green api: idMessage missing in response")
	}

	w.log.Info("whatsapp message sent", zap.String("kind", string(n.Kind)), zap.String("id_message", out.IDMessage))
	return nil
}
