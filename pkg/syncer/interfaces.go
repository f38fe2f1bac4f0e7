package syncer

import (
	"context"
	"time"

	"github.com/wakahq/momo-sms-importer/pkg/database"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package syncer_test -source=interfaces.go

type Repo interface {
	GetUnsynced(ctx context.Context) ([]database.SyncStatus, error)
	GetByID(ctx context.Context, category database.Category, id int64) (database.Record, error)
	MarkSynced(ctx context.Context, transactionID string, timestamp time.Time) error
}
