package contracts

import "context"

type ReportArchive interface {
	ArchiveReport(ctx context.Context, orderUUID string, report string) (objectName string, err error)
}
