package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

// Publisher отправляет события бронирований в RabbitMQ
// Соединение открывается на каждую публикацию, очереди durable
type Publisher struct {
	url     string
	timeout time.Duration
	now     func() time.Time
	log     Logger
}

// NewPublisher создает новый экземпляр издателя событий
func NewPublisher(url string, timeout time.Duration, log Logger) *Publisher {
	return &Publisher{
		url:     url,
		timeout: timeout,
		now:     time.Now,
		log:     log,
	}
}

// PublishReservationCreated публикует событие о новом бронировании
func (p *Publisher) PublishReservationCreated(ctx context.Context, r *domain.Reservation) error {
	return p.publish(ctx, QueueReservationCreated, NewReservationEvent(r, p.now()))
}

// PublishReservationUpdated публикует событие об изменении бронирования
func (p *Publisher) PublishReservationUpdated(ctx context.Context, r *domain.Reservation) error {
	return p.publish(ctx, QueueReservationUpdated, NewReservationEvent(r, p.now()))
}

// PublishReservationDeleted публикует событие об удалении бронирования
func (p *Publisher) PublishReservationDeleted(ctx context.Context, r *domain.Reservation) error {
	return p.publish(ctx, QueueReservationDeleted, NewReservationEvent(r, p.now()))
}

func (p *Publisher) publish(ctx context.Context, queue string, event ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(p.timeout)})
	if err != nil {
		p.log.Error("RabbitMQ dial failed for queue=%s: %v", queue, err)
		return fmt.Errorf("%w: dial: %v", ErrPublish, err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: channel: %v", ErrPublish, err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: queue declare %s: %v", ErrPublish, queue, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return fmt.Errorf("%w: queue=%s: %v", ErrPublish, queue, err)
	}

	p.log.Info("Published event to queue=%s, reservation_id=%d", queue, event.ReservationID)
	return nil
}

// Noop издатель-заглушка, когда брокер выключен
type Noop struct{}

func (Noop) PublishReservationCreated(context.Context, *domain.Reservation) error { return nil }

func (Noop) PublishReservationUpdated(context.Context, *domain.Reservation) error { return nil }

func (Noop) PublishReservationDeleted(context.Context, *domain.Reservation) error { return nil }
