package service

import (
	"testing"
	"time"

	"networth/internal/domain"
	mock_repository "networth/internal/repository/mocks"
	"networth/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func Test_normalizeTransaction(t *testing.T) {
	t.Run("fills multiplier and estimated costs for a known contract", func(t *testing.T) {
		normalized, err := normalizeTransaction(domain.FuturesTransaction{
			Date:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Symbol:   "MTX",
			Action:   domain.TransactionAction_OpenLong,
			Price:    17000,
			Quantity: 2,
		})
		require.NoError(t, err)

		require.Equal(t, 50.0, normalized.Multiplier)
		require.Equal(t, 100.0, normalized.Fee)
		// 17000 * 50 * 2 * 0.00002 = 34
		require.Equal(t, 34.0, normalized.Tax)
	})

	t.Run("keeps caller-supplied fee and tax", func(t *testing.T) {
		normalized, err := normalizeTransaction(domain.FuturesTransaction{
			Date:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Symbol:   "MTX",
			Action:   domain.TransactionAction_OpenLong,
			Price:    17000,
			Quantity: 1,
			Fee:      45,
			Tax:      17,
		})
		require.NoError(t, err)

		require.Equal(t, 45.0, normalized.Fee)
		require.Equal(t, 17.0, normalized.Tax)
	})

	t.Run("rejects unknown contracts without a multiplier", func(t *testing.T) {
		_, err := normalizeTransaction(domain.FuturesTransaction{
			Symbol:   "NOPE",
			Action:   domain.TransactionAction_OpenLong,
			Price:    100,
			Quantity: 1,
		})
		require.ErrorContains(t, err, "unknown futures contract")
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := normalizeTransaction(domain.FuturesTransaction{
			Symbol:   "MTX",
			Action:   "BUY",
			Price:    100,
			Quantity: 1,
		})
		require.ErrorContains(t, err, "invalid transaction action")

		_, err = normalizeTransaction(domain.FuturesTransaction{
			Symbol:   "MTX",
			Action:   domain.TransactionAction_OpenLong,
			Price:    -1,
			Quantity: 1,
		})
		require.ErrorContains(t, err, "price must be positive")
	})
}

func Test_applyTransaction(t *testing.T) {
	log := zap.NewNop().Sugar()

	newHandler := func(ctrl *gomock.Controller) (transactionServiceHandler, *mock_repository.MockFuturesTransactionRepository, *mock_repository.MockPositionRepository, *mock_repository.MockRealizedPnlRepository) {
		transactionRepository := mock_repository.NewMockFuturesTransactionRepository(ctrl)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		pnlRepository := mock_repository.NewMockRealizedPnlRepository(ctrl)
		handler := transactionServiceHandler{
			FuturesTransactionRepository: transactionRepository,
			PositionRepository:           positionRepository,
			RealizedPnlRepository:        pnlRepository,
		}
		return handler, transactionRepository, positionRepository, pnlRepository
	}

	t.Run("open creates a new position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, transactionRepository, positionRepository, _ := newHandler(ctrl)

		transaction := domain.FuturesTransaction{
			Date:           time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Symbol:         "MTX",
			Action:         domain.TransactionAction_OpenShort,
			Price:          17000,
			Quantity:       2,
			ContractMonth:  "202603",
			Multiplier:     50,
			AssignedMargin: 96000,
		}

		transactionRepository.EXPECT().Add(gomock.Any(), transaction).Return(&transaction, nil)
		positionRepository.EXPECT().GetByContract(gomock.Any(), "MTX", "202603").Return(nil, nil)

		var added domain.Position
		positionRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, position domain.Position) (*domain.Position, error) {
				added = position
				return &position, nil
			})

		_, err := handler.applyTransaction(log, nil, transaction)
		require.NoError(t, err)

		require.Equal(t, domain.PositionType_TwFuture, added.Type)
		require.Equal(t, -2.0, added.Quantity)
		require.Equal(t, 17000.0, *added.Cost)
		require.Equal(t, "MTX 202603", *added.Name)
		require.Equal(t, 96000.0, *added.AssignedMargin)
	})

	t.Run("open averages cost into an existing position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, transactionRepository, positionRepository, _ := newHandler(ctrl)

		transaction := domain.FuturesTransaction{
			Date:          time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Symbol:        "TX",
			Action:        domain.TransactionAction_OpenLong,
			Price:         18000,
			Quantity:      1,
			ContractMonth: "202603",
			Multiplier:    200,
		}

		transactionRepository.EXPECT().Add(gomock.Any(), transaction).Return(&transaction, nil)
		positionRepository.EXPECT().GetByContract(gomock.Any(), "TX", "202603").Return(&domain.Position{
			PositionID:    uuid.New(),
			Type:          domain.PositionType_TwFuture,
			Symbol:        util.StringPointer("TX"),
			Quantity:      1,
			Cost:          util.FloatPointer(17000),
			ContractMonth: util.StringPointer("202603"),
			Multiplier:    util.FloatPointer(200),
		}, nil)

		var updated domain.Position
		positionRepository.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, position domain.Position) (*domain.Position, error) {
				updated = position
				return &position, nil
			})

		_, err := handler.applyTransaction(log, nil, transaction)
		require.NoError(t, err)

		require.Equal(t, 2.0, updated.Quantity)
		// (17000*1 + 18000*1) / 2
		require.InDelta(t, 17500, *updated.Cost, 1e-9)
	})

	t.Run("close records realized pnl and reduces quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, transactionRepository, positionRepository, pnlRepository := newHandler(ctrl)

		transaction := domain.FuturesTransaction{
			Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			Symbol:        "MTX",
			Action:        domain.TransactionAction_CloseLong,
			Price:         17500,
			Quantity:      1,
			ContractMonth: "202603",
			Multiplier:    50,
			Fee:           50,
			Tax:           18,
		}

		transactionRepository.EXPECT().Add(gomock.Any(), transaction).Return(&transaction, nil)
		positionRepository.EXPECT().GetByContract(gomock.Any(), "MTX", "202603").Return(&domain.Position{
			PositionID:    uuid.New(),
			Type:          domain.PositionType_TwFuture,
			Symbol:        util.StringPointer("MTX"),
			Quantity:      2,
			Cost:          util.FloatPointer(17000),
			ContractMonth: util.StringPointer("202603"),
			Multiplier:    util.FloatPointer(50),
		}, nil)

		var recorded domain.RealizedPnl
		pnlRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, pnl domain.RealizedPnl) (*domain.RealizedPnl, error) {
				recorded = pnl
				return &pnl, nil
			})

		var updated domain.Position
		positionRepository.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, position domain.Position) (*domain.Position, error) {
				updated = position
				return &position, nil
			})

		_, err := handler.applyTransaction(log, nil, transaction)
		require.NoError(t, err)

		// (17500-17000) * 1 * 50 - 50 - 18
		require.InDelta(t, 24932, recorded.Pnl, 1e-9)
		require.Equal(t, 1.0, updated.Quantity)
		require.InDelta(t, 17000, *updated.Cost, 1e-9)
	})

	t.Run("closing a short profits when price drops", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, transactionRepository, positionRepository, pnlRepository := newHandler(ctrl)

		transaction := domain.FuturesTransaction{
			Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			Symbol:        "MTX",
			Action:        domain.TransactionAction_CloseShort,
			Price:         16500,
			Quantity:      1,
			ContractMonth: "202603",
			Multiplier:    50,
		}

		transactionRepository.EXPECT().Add(gomock.Any(), transaction).Return(&transaction, nil)
		position := &domain.Position{
			PositionID:    uuid.New(),
			Type:          domain.PositionType_TwFuture,
			Symbol:        util.StringPointer("MTX"),
			Quantity:      -1,
			Cost:          util.FloatPointer(17000),
			ContractMonth: util.StringPointer("202603"),
			Multiplier:    util.FloatPointer(50),
		}
		positionRepository.EXPECT().GetByContract(gomock.Any(), "MTX", "202603").Return(position, nil)

		var recorded domain.RealizedPnl
		pnlRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, pnl domain.RealizedPnl) (*domain.RealizedPnl, error) {
				recorded = pnl
				return &pnl, nil
			})

		// position fully closed
		positionRepository.EXPECT().Delete(gomock.Any(), position.PositionID).Return(nil)

		_, err := handler.applyTransaction(log, nil, transaction)
		require.NoError(t, err)

		// (17000-16500) * 1 * 50
		require.InDelta(t, 25000, recorded.Pnl, 1e-9)
	})

	t.Run("close without a position fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, transactionRepository, positionRepository, _ := newHandler(ctrl)

		transaction := domain.FuturesTransaction{
			Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			Symbol:        "QSF",
			Action:        domain.TransactionAction_CloseLong,
			Price:         200,
			Quantity:      1,
			ContractMonth: "202604",
			Multiplier:    100,
		}

		transactionRepository.EXPECT().Add(gomock.Any(), transaction).Return(&transaction, nil)
		positionRepository.EXPECT().GetByContract(gomock.Any(), "QSF", "202604").Return(nil, nil)

		_, err := handler.applyTransaction(log, nil, transaction)
		require.ErrorContains(t, err, "no open position")
	})

	t.Run("cannot close more than the position holds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, transactionRepository, positionRepository, _ := newHandler(ctrl)

		transaction := domain.FuturesTransaction{
			Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			Symbol:        "MTX",
			Action:        domain.TransactionAction_CloseLong,
			Price:         17500,
			Quantity:      5,
			ContractMonth: "202603",
			Multiplier:    50,
		}

		transactionRepository.EXPECT().Add(gomock.Any(), transaction).Return(&transaction, nil)
		positionRepository.EXPECT().GetByContract(gomock.Any(), "MTX", "202603").Return(&domain.Position{
			Quantity:   2,
			Cost:       util.FloatPointer(17000),
			Multiplier: util.FloatPointer(50),
		}, nil)

		_, err := handler.applyTransaction(log, nil, transaction)
		require.ErrorContains(t, err, "cannot close")
	})
}

func Test_EstimateCost(t *testing.T) {
	handler := transactionServiceHandler{}

	t.Run("known contract", func(t *testing.T) {
		estimate, err := handler.EstimateCost("small tai", 17000, 2)
		require.NoError(t, err)
		require.Equal(t, 100.0, estimate.Fee)
		require.Equal(t, 34.0, estimate.Tax)
	})

	t.Run("unknown contract", func(t *testing.T) {
		_, err := handler.EstimateCost("SPY", 500, 1)
		require.ErrorContains(t, err, "unknown futures contract")
	})
}
