package utils

import (
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/exceptions"
	"time"
)

// ParseFormDatetime accepts the RFC3339 timestamps the form client sends.
func ParseFormDatetime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDatetime(err)
	}
	return parsed, nil
}

// FormatEmrDatetime serializes a timestamp into the EMR wire layout with an
// explicit UTC offset.
func FormatEmrDatetime(t time.Time) string {
	return t.Format(constvars.EmrDatetimeFormat)
}
