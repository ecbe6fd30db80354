package notificationqueue

import (
	"context"
	"fmt"
	"sync"

	"prosedur-service/internal/app/contracts"
	"prosedur-service/internal/app/models"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const deadLetterSuffix = "_dlq"

// Service publishes procedure completion notifications to a durable
// RabbitMQ queue so the notification worker can deliver them to clinicians.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	dlqName   string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

// NewService declares the notification queue and its dead-letter queue as
// durable, and enables publisher confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	dlqName := queueName + deadLetterSuffix

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		dlqName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Qos(1, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		dlqName:   dlqName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}
	return svc, nil
}

var _ contracts.NotificationPublisher = (*Service)(nil)

// Publish sends a notification message to the standard queue with
// persistence and waits for the broker to confirm it.
func (s *Service) Publish(ctx context.Context, message *models.NotificationMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("NotificationQueue.Publish called", zap.String(constvars.LoggingRequestIDKey, requestID))

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	return s.publish(ctx, s.queueName, body)
}

// PublishToDeadQueue parks a message that exhausted its delivery attempts.
func (s *Service) PublishToDeadQueue(ctx context.Context, message *models.NotificationMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publish(ctx, s.dlqName, body)
}

// Consume returns the delivery channel for the notification worker.
func (s *Service) Consume() (<-chan amqp.Delivery, error) {
	return s.ch.Consume(
		s.queueName, // queue
		"",          // consumer
		false,       // autoAck
		false,       // exclusive
		false,       // noLocal
		false,       // noWait
		nil,         // args
	)
}

func (s *Service) publish(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueueConfirm(fmt.Errorf("message not confirmed by broker"))
		}
	case <-ctx.Done():
		return exceptions.ErrQueueConfirm(ctx.Err())
	}
	return nil
}
