package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"car-rental-backend/internal/models"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate mockgen -source=events.go -destination=mocks/events.go -package=mocks

// EventPublisher - получатель событий бронирований (kafka, websocket)
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, ev models.BookingEvent) error
}

// NotificationSender доставляет сообщение клиенту на стороне сервера
type NotificationSender interface {
	Enabled() bool
	Send(ctx context.Context, n Notification) error
}

const notificationSendTimeout = 30 * time.Second

// BookingEvents рассылает событие после записи бронирования. Ошибки получателей
// только логируются: бронирование уже сохранено.
type BookingEvents struct {
	publishers []EventPublisher
	sender     NotificationSender
	log        *zap.Logger
}

func NewBookingEvents(log *zap.Logger, sender NotificationSender, publishers ...EventPublisher) *BookingEvents {
	return &BookingEvents{
		publishers: publishers,
		sender:     sender,
		log:        log.Named("booking_events"),
	}
}

func (e *BookingEvents) BookingChanged(ctx context.Context, action models.BookingAction, b *models.Booking, n *Notification) {
	ev := models.NewBookingEvent(action, b)
	for _, p := range e.publishers {
		if err := p.PublishBookingEvent(ctx, ev); err != nil {
			e.log.Warn("publish booking event failed",
				zap.Uint("booking_id", ev.BookingID), zap.String("action", string(action)), zap.Error(err))
		}
	}

	if n == nil || e.sender == nil || !e.sender.Enabled() {
		return
	}
	notification := *n
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notificationSendTimeout)
		defer cancel()
		if err := e.sender.Send(ctx, notification); err != nil {
			e.log.Warn("whatsapp delivery failed", zap.Uint("booking_id", ev.BookingID), zap.Error(err))
		}
	}()
}

func NewKafkaProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(brokers, cfg)
}

// KafkaPublisher пишет события бронирований в топик, ключ - id бронирования.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) PublishBookingEvent(_ context.Context, ev models.BookingEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "marshal booking event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(uint64(ev.BookingID), 10)),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return errors.Wrap(err, "send booking event")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
