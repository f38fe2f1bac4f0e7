package syncer

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"

	"github.com/wakahq/momo-sms-importer/pkg/database"
)

type Syncer struct {
	cl           *req.Client
	repo         Repo
	apiKey       string
	collectorURL string
}

func NewSyncer(
	repo Repo,
	apiKey string,
	collectorURL string,
	cl *req.Client,
) *Syncer {
	return &Syncer{
		cl:           cl,
		repo:         repo,
		apiKey:       apiKey,
		collectorURL: collectorURL,
	}
}

type pushRequest struct {
	Category      string `json:"category"`
	TransactionID string `json:"transaction_id"`
	Record        any    `json:"record"`
}

type pushResponse struct {
	Accepted bool `json:"accepted"`
}

func (s *Syncer) SyncPending(ctx context.Context) error {
	pending, err := s.repo.GetUnsynced(ctx)
	if err != nil {
		return err
	}

	logger := zerolog.Ctx(ctx)

	var finalErr error
	for _, st := range pending {
		category, ok := database.CategoryForTable(st.SourceTable)
		if !ok {
			finalErr = errors.Join(finalErr,
				errors.Newf("sync status %s references unknown table %s", st.TransactionID, st.SourceTable))
			continue
		}

		if err = s.pushOne(ctx, category, st); err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		if err = s.repo.MarkSynced(ctx, st.TransactionID, time.Now().UTC()); err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		logger.Info().
			Str("transaction_id", st.TransactionID).
			Str("category", string(category)).
			Msg("record synced")
	}

	return finalErr
}

func (s *Syncer) pushOne(
	ctx context.Context,
	category database.Category,
	st database.SyncStatus,
) error {
	record, err := s.repo.GetByID(ctx, category, st.RecordID)
	if err != nil {
		return err
	}

	var apiResp pushResponse

	resp, err := s.cl.R().
		SetContext(ctx).
		SetBearerAuthToken(s.apiKey).
		SetBody(pushRequest{
			Category:      string(category),
			TransactionID: st.TransactionID,
			Record:        record,
		}).
		SetSuccessResult(&apiResp).
		Post(s.collectorURL + "/api/v1/records")
	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return errors.Newf("got error response: %s", resp.String())
	}

	if !apiResp.Accepted {
		return errors.Newf("collector rejected transaction %s", st.TransactionID)
	}

	return nil
}
