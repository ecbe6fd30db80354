package reportarchive

import (
	"context"
	"fmt"
	"strings"
	"time"

	"prosedur-service/internal/app/contracts"
	"prosedur-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioReportArchive struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioReportArchive(minioClient *minio.Client, bucketName string) contracts.ReportArchive {
	return &minioReportArchive{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

// ArchiveReport stores the free-text procedure report as a plain-text
// object keyed by order so audits can retrieve it later.
func (m *minioReportArchive) ArchiveReport(ctx context.Context, orderUUID string, report string) (string, error) {
	objectName := fmt.Sprintf("reports/%s/%d.txt", orderUUID, time.Now().UnixNano())

	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		strings.NewReader(report),
		int64(len(report)),
		minio.PutObjectOptions{
			ContentType: "text/plain",
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return objectName, nil
}
