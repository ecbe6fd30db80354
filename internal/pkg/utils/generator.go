package utils

import (
	"prosedur-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateSelectionID() string {
	return uuid.NewString()
}

func GenerateSubmissionID() string {
	return uuid.NewString()
}

func GenerateNotificationID() string {
	return uuid.NewString()
}
