package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"networth/api"
	"networth/internal"
	"networth/internal/logger"
	"networth/internal/repository"
	"networth/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	positionRepository := repository.NewPositionRepository(dbConn)
	historyRepository := repository.NewNetWorthHistoryRepository(dbConn)
	realizedPnlRepository := repository.NewRealizedPnlRepository(dbConn)
	futuresTransactionRepository := repository.NewFuturesTransactionRepository(dbConn)
	fxRateRepository := repository.NewFxRateRepository()
	marketPriceRepository := repository.NewMarketPriceRepository()

	netWorthService := service.NewNetWorthService(
		dbConn,
		positionRepository,
		fxRateRepository,
		marketPriceRepository,
		historyRepository,
		secrets.FuturesMarginPool,
	)
	pnlService := service.NewPnlService(dbConn, realizedPnlRepository)
	transactionService := service.NewTransactionService(
		dbConn,
		futuresTransactionRepository,
		positionRepository,
		realizedPnlRepository,
	)
	importService := service.NewImportService(
		dbConn,
		futuresTransactionRepository,
		positionRepository,
		realizedPnlRepository,
	)

	return &api.ApiHandler{
		Db:                 dbConn,
		Logger:             logger.New(),
		NetWorthService:    netWorthService,
		PnlService:         pnlService,
		TransactionService: transactionService,
		ImportService:      importService,
		PositionRepository: positionRepository,
	}, nil
}
