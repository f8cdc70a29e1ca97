package services

import (
	"context"
	"fmt"

	"car-rental-backend/internal/config"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// MailService отправляет письма через SMTP.
type MailService struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

func NewMailService(cfg config.SMTP, log *zap.Logger) *MailService {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &MailService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   from,
		log:    log.Named("mail"),
	}
}

func (m *MailService) SendVerificationCode(ctx context.Context, to, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.dialer.Host == "" || m.from == "" {
		return errors.New("smtp relay is not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Code de vérification")
	msg.SetBody("text/plain", fmt.Sprintf("Votre code de vérification est : %s", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "send verification email")
	}
	m.log.Info("verification code sent", zap.String("to", to))
	return nil
}
