package processor

import (
	"context"

	"github.com/wakahq/momo-sms-importer/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package processor_test -source=interfaces.go

type Repo interface {
	SaveRecord(ctx context.Context, record database.Record) (int64, error)
	UpsertSyncStatus(ctx context.Context, status database.SyncStatus) error
}

type Parser interface {
	Categorize(body string) (database.Category, bool)
	ParseCategory(
		ctx context.Context,
		category database.Category,
		body string,
	) (database.Record, error)
}

type Printer interface {
	Describe(record database.Record) string
	Summary(persisted []database.Record, discarded int) string
}
