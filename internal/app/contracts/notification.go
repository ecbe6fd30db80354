package contracts

import (
	"context"
	"prosedur-service/internal/app/models"
)

type NotificationPublisher interface {
	Publish(ctx context.Context, message *models.NotificationMessage) error
}
