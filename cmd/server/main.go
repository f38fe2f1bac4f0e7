package main

import (
	"context"
	"net/http"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/gorilla/mux"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wakahq/momo-sms-importer/pkg/parser"
	"github.com/wakahq/momo-sms-importer/pkg/printer"
	"github.com/wakahq/momo-sms-importer/pkg/processor"
	"github.com/wakahq/momo-sms-importer/pkg/repo"
	"github.com/wakahq/momo-sms-importer/pkg/syncer"
)

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresConnectionString), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get postgres")
	}

	m := gormigrate.New(db, &gormigrate.Options{
		TableName:                 "gorm_migrations",
		IDColumnName:              "id",
		IDColumnSize:              255,
		UseTransaction:            false,
		ValidateUnknownMigrations: false,
	}, repo.GetMigrations())

	log.Info().Msg("[Db] start migrations")

	if err = m.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	dataRepo := repo.NewPostgres(db)

	processorSvc := processor.NewProcessor(&processor.Config{
		Repo:          dataRepo,
		Parser:        parser.NewMoMo(),
		Printer:       printer.NewPrinter(),
		AllowedSender: cfg.AllowedSender,
	})

	if cfg.CollectorURL != "" {
		syncSvc := syncer.NewSyncer(
			dataRepo,
			cfg.CollectorApiKey,
			cfg.CollectorURL,
			req.DefaultClient(),
		)

		go runSyncLoop(context.Background(), syncSvc, cfg.SyncInterval)
	}

	r := mux.NewRouter()
	r.Handle("/api/sms/webhook", NewHandler(processorSvc, cfg.ApiKey))
	r.Handle("/api/sms/simulate", NewSimulateHandler(processorSvc, cfg.ApiKey, cfg.AllowedSender))

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.ListenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

func runSyncLoop(
	ctx context.Context,
	syncSvc *syncer.Syncer,
	interval time.Duration,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := syncSvc.SyncPending(ctx); err != nil {
			log.Error().Err(err).Msg("failed to sync pending records")
		}
	}
}
