package api

import (
	"database/sql"
	"fmt"
	"time"

	"networth/internal/domain"
	"networth/internal/logger"
	"networth/internal/repository"
	"networth/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                 *sql.DB
	Logger             *zap.SugaredLogger
	NetWorthService    service.NetWorthService
	PnlService         service.PnlService
	TransactionService service.TransactionService
	ImportService      service.ImportService
	PositionRepository repository.PositionRepository
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to networth"})
	})

	router.GET("/positions", m.listPositions)
	router.POST("/positions", m.createPosition)
	router.PUT("/positions/:id", m.updatePosition)
	router.DELETE("/positions/:id", m.deletePosition)

	router.GET("/net-worth/current", m.getCurrentNetWorth)
	router.GET("/net-worth/history", m.getNetWorthHistory)
	router.GET("/net-worth/breakdown", m.getNetWorthBreakdown)
	router.GET("/net-worth/allocation", m.getAllocation)
	router.GET("/net-worth/metrics", m.getHistoryMetrics)
	router.POST("/net-worth/record", m.recordNetWorth)

	router.POST("/pnl", m.createPnl)
	router.GET("/pnl/history", m.getPnlHistory)
	router.GET("/pnl/cumulative", m.getCumulativePnl)

	router.GET("/transactions/future", m.listFuturesTransactions)
	router.POST("/transactions/future", m.createFuturesTransaction)
	router.POST("/transactions/future/estimate", m.estimateFuturesCost)
	router.POST("/upload/history", m.importFuturesTransactions)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	log := m.Logger
	if log == nil {
		log = logger.New()
	}
	ctx.Set(logger.ContextKey, log)

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", ctx.ClientIP(),
	)
}

// timeRangeFromQuery reads the optional ?range= parameter, defaulting
// to the full history.
func timeRangeFromQuery(c *gin.Context) (domain.TimeRange, error) {
	raw := c.DefaultQuery("range", "ALL")
	timeRange := domain.TimeRange(raw)
	if !timeRange.IsValid() {
		return timeRange, fmt.Errorf("invalid time range %q", raw)
	}
	return timeRange, nil
}
