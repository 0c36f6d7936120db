package api

import (
	"fmt"

	"networth/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SavePositionRequest struct {
	Type           string   `json:"type"`
	Symbol         *string  `json:"symbol"`
	Name           *string  `json:"name"`
	Quantity       float64  `json:"quantity"`
	Cost           *float64 `json:"cost"`
	Leverage       *float64 `json:"leverage"`
	ContractMonth  *string  `json:"contract_month"`
	Multiplier     *float64 `json:"multiplier"`
	AssignedMargin *float64 `json:"assigned_margin"`
}

func (r SavePositionRequest) toDomain() (*domain.Position, error) {
	positionType := domain.PositionType(r.Type)
	if !positionType.IsValid() {
		return nil, fmt.Errorf("invalid position type %q", r.Type)
	}
	if !positionType.IsCash() && r.Symbol == nil && r.Name == nil {
		return nil, fmt.Errorf("non-cash positions need a symbol or name")
	}

	leverage := 0.0
	if !positionType.IsCash() {
		leverage = 1
		if r.Leverage != nil && *r.Leverage > 0 {
			leverage = *r.Leverage
		}
	}

	return &domain.Position{
		Type:           positionType,
		Symbol:         r.Symbol,
		Name:           r.Name,
		Quantity:       r.Quantity,
		Cost:           r.Cost,
		Currency:       positionType.Currency(),
		Leverage:       leverage,
		ContractMonth:  r.ContractMonth,
		Multiplier:     r.Multiplier,
		AssignedMargin: r.AssignedMargin,
	}, nil
}

func (m ApiHandler) listPositions(c *gin.Context) {
	positions, err := m.PositionRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, positions)
}

func (m ApiHandler) createPosition(c *gin.Context) {
	var requestBody SavePositionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	position, err := requestBody.toDomain()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	created, err := m.PositionRepository.Add(m.Db, *position)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to create position: %w", err), c)
		return
	}
	c.JSON(200, created)
}

func (m ApiHandler) updatePosition(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid position id: %w", err), c, 400)
		return
	}

	var requestBody SavePositionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	position, err := requestBody.toDomain()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	position.PositionID = positionID

	updated, err := m.PositionRepository.Update(m.Db, *position)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to update position: %w", err), c)
		return
	}
	c.JSON(200, updated)
}

func (m ApiHandler) deletePosition(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid position id: %w", err), c, 400)
		return
	}

	err = m.PositionRepository.Delete(m.Db, positionID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, gin.H{"deleted": positionID})
}
