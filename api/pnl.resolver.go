package api

import (
	"fmt"
	"time"

	"networth/internal/domain"
	"networth/internal/util"

	"github.com/gin-gonic/gin"
)

type CreatePnlRequest struct {
	Date     string  `json:"date"`
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	Pnl      float64 `json:"pnl"`
	Notes    *string `json:"notes"`
}

func (m ApiHandler) createPnl(c *gin.Context) {
	var requestBody CreatePnlRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var date time.Time
	if requestBody.Date != "" {
		parsed, err := util.ParseDate(requestBody.Date)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid date %q: %w", requestBody.Date, err), c, 400)
			return
		}
		date = parsed
	}

	created, err := m.PnlService.Create(domain.RealizedPnl{
		Date:     date,
		Symbol:   requestBody.Symbol,
		Quantity: requestBody.Quantity,
		Pnl:      requestBody.Pnl,
		Notes:    requestBody.Notes,
	})
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	c.JSON(200, created)
}

func (m ApiHandler) getPnlHistory(c *gin.Context) {
	timeRange, err := timeRangeFromQuery(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	rows, err := m.PnlService.GetHistory(timeRange, time.Now().UTC())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, rows)
}

func (m ApiHandler) getCumulativePnl(c *gin.Context) {
	timeRange, err := timeRangeFromQuery(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	series, err := m.PnlService.GetCumulative(timeRange, time.Now().UTC())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, series)
}
