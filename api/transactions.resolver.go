package api

import (
	"fmt"
	"time"

	"networth/internal/domain"
	"networth/internal/util"

	"github.com/gin-gonic/gin"
)

type CreateTransactionRequest struct {
	Date           string  `json:"date"`
	Symbol         string  `json:"symbol"`
	Action         string  `json:"action"`
	Price          float64 `json:"price"`
	Quantity       float64 `json:"quantity"`
	ContractMonth  string  `json:"contract_month"`
	Multiplier     float64 `json:"multiplier"`
	Fee            float64 `json:"fee"`
	Tax            float64 `json:"tax"`
	AssignedMargin float64 `json:"assigned_margin"`
}

type EstimateCostRequest struct {
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

func (m ApiHandler) listFuturesTransactions(c *gin.Context) {
	transactions, err := m.TransactionService.ListTransactions()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, transactions)
}

func (m ApiHandler) createFuturesTransaction(c *gin.Context) {
	var requestBody CreateTransactionRequest
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

	created, err := m.TransactionService.CreateTransaction(c, domain.FuturesTransaction{
		Date:           date,
		Symbol:         requestBody.Symbol,
		Action:         domain.TransactionAction(requestBody.Action),
		Price:          requestBody.Price,
		Quantity:       requestBody.Quantity,
		ContractMonth:  requestBody.ContractMonth,
		Multiplier:     requestBody.Multiplier,
		Fee:            requestBody.Fee,
		Tax:            requestBody.Tax,
		AssignedMargin: requestBody.AssignedMargin,
	})
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to create transaction: %w", err), c)
		return
	}
	c.JSON(200, created)
}

func (m ApiHandler) estimateFuturesCost(c *gin.Context) {
	var requestBody EstimateCostRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	estimate, err := m.TransactionService.EstimateCost(requestBody.Symbol, requestBody.Price, requestBody.Quantity)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	c.JSON(200, estimate)
}

func (m ApiHandler) importFuturesTransactions(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("missing csv upload: %w", err), c, 400)
		return
	}

	f, err := file.Open()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to open upload: %w", err), c)
		return
	}
	defer f.Close()

	result, err := m.ImportService.ImportTransactions(c, f)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, result)
}
