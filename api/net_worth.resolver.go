package api

import (
	"fmt"
	"time"

	"networth/internal/calculator"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getCurrentNetWorth(c *gin.Context) {
	snapshot, err := m.NetWorthService.GetCurrentSnapshot(c)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute net worth: %w", err), c)
		return
	}
	c.JSON(200, snapshot)
}

func (m ApiHandler) getNetWorthHistory(c *gin.Context) {
	timeRange, err := timeRangeFromQuery(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	history, err := m.NetWorthService.GetHistory(timeRange, time.Now().UTC())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, history)
}

func (m ApiHandler) getNetWorthBreakdown(c *gin.Context) {
	timeRange, err := timeRangeFromQuery(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	breakdown, err := m.NetWorthService.GetBreakdownHistory(timeRange, time.Now().UTC())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, breakdown)
}

func (m ApiHandler) getAllocation(c *gin.Context) {
	dataKey := calculator.AllocationDataKey(c.DefaultQuery("data_key", string(calculator.AllocationDataKey_Equity)))
	if !dataKey.IsValid() {
		returnErrorJsonCode(fmt.Errorf("invalid allocation data key %q", dataKey), c, 400)
		return
	}

	groupingMode := calculator.AllocationGroupingMode(c.DefaultQuery("grouping", string(calculator.AllocationGroupingMode_Type)))
	if !groupingMode.IsValid() {
		returnErrorJsonCode(fmt.Errorf("invalid allocation grouping %q", groupingMode), c, 400)
		return
	}

	slices, err := m.NetWorthService.GetAllocation(c, dataKey, groupingMode)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, slices)
}

func (m ApiHandler) getHistoryMetrics(c *gin.Context) {
	timeRange, err := timeRangeFromQuery(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	metrics, err := m.NetWorthService.GetHistoryMetrics(timeRange, time.Now().UTC())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, metrics)
}

func (m ApiHandler) recordNetWorth(c *gin.Context) {
	err := m.NetWorthService.RecordDailySnapshot(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, gin.H{"recorded": true})
}
