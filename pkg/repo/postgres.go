package repo

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gammazero/workerpool"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wakahq/momo-sms-importer/pkg/database"
)

const defaultPoolSize = 50

type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{
		db: db,
	}
}

// SaveRecord inserts a record and returns the assigned local id. For
// categories that carry a transaction id the insert is an upsert keyed on it,
// so re-delivered notifications do not produce duplicate rows.
func (p *Postgres) SaveRecord(
	ctx context.Context,
	record database.Record,
) (int64, error) {
	tx := p.db.WithContext(ctx)

	if record.TxID() != "" {
		// The arbiter has to name the partial index, empty ids are not unique.
		tx = tx.Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "transaction_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{gorm.Expr("transaction_id <> ''")}},
			UpdateAll:   true,
		})
	}

	if err := tx.Create(record).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to save %s record", record.Category())
	}

	return record.RecordID(), nil
}

// SaveRecords inserts a batch concurrently. Each insert is independent, so the
// pool just bounds parallelism against the connection pool.
func (p *Postgres) SaveRecords(
	ctx context.Context,
	records []database.Record,
) error {
	pool := workerpool.New(defaultPoolSize)

	var finalErr error

	for _, r1 := range records {
		recordCopy := r1

		pool.Submit(func() {
			if _, err := p.SaveRecord(ctx, recordCopy); err != nil {
				finalErr = errors.Join(finalErr, err)
			}
		})
	}

	pool.StopWait()

	return finalErr
}

func (p *Postgres) GetByID(
	ctx context.Context,
	category database.Category,
	id int64,
) (database.Record, error) {
	record, ok := database.NewRecord(category)
	if !ok {
		return nil, errors.Newf("unknown category %s", category)
	}

	if err := p.db.WithContext(ctx).First(record, id).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s record %d", category, id)
	}

	return record, nil
}

func (p *Postgres) GetByTransactionID(
	ctx context.Context,
	category database.Category,
	transactionID string,
) (database.Record, error) {
	record, ok := database.NewRecord(category)
	if !ok {
		return nil, errors.Newf("unknown category %s", category)
	}

	err := p.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(record).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s record by transaction id %s",
			category, transactionID)
	}

	return record, nil
}

func (p *Postgres) ListRecords(
	ctx context.Context,
	category database.Category,
) ([]database.Record, error) {
	prototype, ok := database.NewRecord(category)
	if !ok {
		return nil, errors.Newf("unknown category %s", category)
	}

	rows, err := p.db.WithContext(ctx).Table(prototype.TableName()).Order("id").Rows()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s records", category)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []database.Record

	for rows.Next() {
		record, _ := database.NewRecord(category)

		if err = p.db.ScanRows(rows, record); err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

func (p *Postgres) UpsertSyncStatus(
	ctx context.Context,
	status database.SyncStatus,
) error {
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transaction_id"}},
			UpdateAll: true,
		}).
		Create(&status).Error

	return errors.Wrap(err, "failed to upsert sync status")
}

func (p *Postgres) GetUnsynced(ctx context.Context) ([]database.SyncStatus, error) {
	var pending []database.SyncStatus

	err := p.db.WithContext(ctx).
		Where("synced = ?", false).
		Find(&pending).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch unsynced entries")
	}

	return pending, nil
}

func (p *Postgres) MarkSynced(
	ctx context.Context,
	transactionID string,
	timestamp time.Time,
) error {
	err := p.db.WithContext(ctx).
		Model(&database.SyncStatus{}).
		Where("transaction_id = ?", transactionID).
		Updates(map[string]interface{}{
			"synced":         true,
			"sync_timestamp": timestamp,
		}).Error

	return errors.Wrapf(err, "failed to mark %s as synced", transactionID)
}
