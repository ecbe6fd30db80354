package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"prosedur-service/internal/app/config"
	"prosedur-service/internal/app/drivers/logger"
	"prosedur-service/internal/app/drivers/messaging"
	"prosedur-service/internal/app/models"
	"prosedur-service/internal/app/services/shared/notificationqueue"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

const maxDeliveryAttempts = 3

// The worker drains the notification queue and hands each notice to the
// delivery channel. Poison or repeatedly failing messages end up on the
// dead-letter queue instead of looping forever.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	workerLog := logger.NewLogrusLogger(internalConfig)

	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	defer rabbitMQConn.Close()

	queue, err := notificationqueue.NewService(rabbitMQConn, zap.NewNop(), internalConfig.App.NotificationQueue)
	if err != nil {
		log.Fatalf("Error declaring notification queue: %v", err)
	}

	deliveries, err := queue.Consume()
	if err != nil {
		log.Fatalf("Error starting consumer: %v", err)
	}

	workerLog.WithField("queue", internalConfig.App.NotificationQueue).Info("Notification worker started")

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-c:
			workerLog.Info("Notification worker shutting down")
			return
		case delivery, ok := <-deliveries:
			if !ok {
				workerLog.Warn("Delivery channel closed, stopping worker")
				return
			}
			handleDelivery(workerLog, queue, delivery)
		}
	}
}

func handleDelivery(workerLog *logrus.Logger, queue *notificationqueue.Service, delivery amqp.Delivery) {
	var message models.NotificationMessage
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		workerLog.WithError(err).Error("Dropping poison notification message to DLQ")
		_ = queue.PublishToDeadQueue(context.Background(), &models.NotificationMessage{
			FailedCount: maxDeliveryAttempts,
		})
		_ = delivery.Ack(false)
		return
	}

	if err := deliverNotification(workerLog, &message); err != nil {
		message.FailedCount++
		if message.FailedCount >= maxDeliveryAttempts {
			workerLog.WithField("notification_id", message.ID).Error("Notification exhausted delivery attempts, moving to DLQ")
			_ = queue.PublishToDeadQueue(context.Background(), &message)
			_ = delivery.Ack(false)
			return
		}
		_ = queue.Publish(context.Background(), &message)
		_ = delivery.Ack(false)
		return
	}

	_ = delivery.Ack(false)
}

// deliverNotification is the delivery hook. The current channel is the
// worker log itself; clinician-facing transports plug in here.
func deliverNotification(workerLog *logrus.Logger, message *models.NotificationMessage) error {
	workerLog.WithFields(logrus.Fields{
		"notification_id": message.ID,
		"title":           message.Title,
		"subtitle":        message.Subtitle,
		"kind":            message.Kind,
		"order_uuid":      message.OrderUUID,
		"timeout_ms":      message.TimeoutInMilliseconds,
	}).Info("Notification delivered")
	return nil
}
