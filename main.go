package main

import (
	"errors"
	"log"
	"net/http"
	"server/src/api"
	"server/src/api/controllers"
	"server/src/api/handlers"
	"server/src/clients/fx"
	"server/src/clients/providers"
	"server/src/clients/ynab"
	"server/src/config"
	"server/src/database"
	"server/src/repositories"
	"server/src/scheduler"
	"server/src/services"
	"server/src/utils"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	logger := utils.NewLogger(utils.ParseLogLevel(cfg.Service.LogLevel), cfg.Service.LogToFile, cfg.Service.LogFilePath)

	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	assetRepo := repositories.NewAssetRepository(db)
	settingsRepo := repositories.NewUserSettingsRepository(db)
	syncLogRepo := repositories.NewSyncLogRepository(db)

	ynabClient := ynab.NewClient(cfg)
	fxClient := fx.NewClient(cfg)
	providerList := providers.BuildProviders(cfg)

	marketDataService := services.NewMarketDataService(providerList, fxClient)
	exportService := services.NewExportService(assetRepo, marketDataService)
	syncService := services.NewSyncService(assetRepo, settingsRepo, syncLogRepo, marketDataService, ynabClient, cfg.Sync.Payee, cfg.Sync.Memo)

	handler := handlers.NewHandler(
		controllers.NewAssetsController(assetRepo),
		controllers.NewSettingsController(settingsRepo),
		controllers.NewMarketDataController(marketDataService, exportService),
		controllers.NewYNABController(ynabClient, settingsRepo, syncService),
	)

	server := api.NewServer(handler, logger)
	httpServer := api.NewHTTPServer(server, cfg)

	syncJob := scheduler.NewSyncJob(settingsRepo, syncLogRepo, syncService, logger)
	if _, err := syncJob.Start(cfg.Sync.CronSpec); err != nil {
		return nil, err
	}

	go func() {
		logger.WithField("addr", httpServer.Addr).Info("starting server")

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("an error raised while setting up server")
			errC <- err
		}
	}()
	return errC, nil
}
