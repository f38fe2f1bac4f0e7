package processor

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/wakahq/momo-sms-importer/pkg/common"
	"github.com/wakahq/momo-sms-importer/pkg/database"
)

const excerptLen = 50

type Config struct {
	Repo          Repo
	Parser        Parser
	Printer       Printer
	AllowedSender string
}

// Processor runs the dispatch pipeline: sender filter, classification,
// extraction, persistence. Parse-level failures are absorbed here; only
// storage faults propagate to the caller.
type Processor struct {
	cfg *Config
}

func NewProcessor(cfg *Config) *Processor {
	return &Processor{
		cfg: cfg,
	}
}

func (p *Processor) ProcessMessage(
	ctx context.Context,
	message Message,
) (*Result, error) {
	result := &Result{
		Message: message,
		State:   StateReceived,
	}

	if message.Sender != p.cfg.AllowedSender {
		result.State = StateDiscarded

		zerolog.Ctx(ctx).Debug().
			Str("sender", message.Sender).
			Msg("skipping message from unknown sender")

		return result, nil
	}

	category, ok := p.cfg.Parser.Categorize(message.Content)
	if !ok {
		result.State = StateDiscarded

		zerolog.Ctx(ctx).Info().
			Str("excerpt", excerpt(message.Content)).
			Msg("unmatched category")

		return result, nil
	}

	result.Category = category
	result.State = StateClassified

	record, err := p.cfg.Parser.ParseCategory(ctx, category, message.Content)
	if err != nil {
		result.State = StateDiscarded
		result.Err = err

		zerolog.Ctx(ctx).Warn().Err(err).
			Str("category", string(category)).
			Str("excerpt", excerpt(message.Content)).
			Msg("field extraction failure")

		return result, nil
	}

	recordID, err := p.cfg.Repo.SaveRecord(ctx, record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save record")
	}

	if txID := record.TxID(); txID != "" {
		err = p.cfg.Repo.UpsertSyncStatus(ctx, database.SyncStatus{
			TransactionID: txID,
			SourceTable:   record.TableName(),
			RecordID:      recordID,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to track sync status")
		}
	}

	result.Record = record
	result.State = StatePersisted

	zerolog.Ctx(ctx).Info().
		Str("category", string(category)).
		Str("amount", record.TxAmount().String()).
		Msg("parsed successfully")

	return result, nil
}

// ProcessMessages handles each message independently; the engine is pure, so
// no coordination between messages is needed. The first storage fault aborts
// the batch.
func (p *Processor) ProcessMessages(
	ctx context.Context,
	messages []Message,
) ([]*Result, error) {
	var results []*Result

	for _, message := range messages {
		result, err := p.ProcessMessage(ctx, message)
		if err != nil {
			return results, err
		}

		results = append(results, result)
	}

	return results, nil
}

// ProcessBatch runs ProcessMessages and renders a human-readable summary for
// the webhook reply.
func (p *Processor) ProcessBatch(
	ctx context.Context,
	messages []Message,
) (string, error) {
	results, err := p.ProcessMessages(ctx, messages)
	if err != nil {
		return "", err
	}

	var persisted []database.Record
	discarded := 0

	for _, result := range results {
		if result.State == StatePersisted {
			persisted = append(persisted, result.Record)
			continue
		}

		discarded += 1
	}

	return p.cfg.Printer.Summary(persisted, discarded), nil
}

// Simulate runs classification and extraction on a synthetic message without
// persisting anything, and returns the rendered record.
func (p *Processor) Simulate(
	ctx context.Context,
	message Message,
) (string, error) {
	category, ok := p.cfg.Parser.Categorize(message.Content)
	if !ok {
		return "", errors.Wrapf(common.ErrUnmatchedCategory, "body: %s", excerpt(message.Content))
	}

	record, err := p.cfg.Parser.ParseCategory(ctx, category, message.Content)
	if err != nil {
		return "", err
	}

	return p.cfg.Printer.Describe(record), nil
}

func excerpt(body string) string {
	if len(body) <= excerptLen {
		return body
	}

	return body[:excerptLen] + "..."
}
